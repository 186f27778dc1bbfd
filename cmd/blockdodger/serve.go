package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/platform/tui"
	"github.com/hsmto25519/block-game/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session. With --record, every
finished run from every connection is stored in the replay database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockdodger/host_key

Examples:
  blockdodger serve                           # Listen on :23234 with auto-generated key
  blockdodger serve --ssh :2222               # Listen on port 2222
  blockdodger serve --host-key ./my_host_key  # Use specific host key
  blockdodger serve --difficulty hard --record

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd, true)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	rec, closeStore := openRecorder(logger)
	defer closeStore()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FrameRate = flagFPS
	cfg.GameID = dodger.GameID
	cfg.GameOptions = gameOptions()
	cfg.Logger = logger.WithPrefix("blockdodger-ssh")
	if rec != nil {
		cfg.OnGameOver = func(sessionID string, g registry.Game) {
			id, err := rec.record(g)
			if err != nil {
				cfg.Logger.Warn("could not record run", "session", sessionID, "error", err)
				return
			}
			cfg.Logger.Info("run recorded", "session", sessionID, "id", id)
		}
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting Block Dodger SSH server on %s\n", server.Addr())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
