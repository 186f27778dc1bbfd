// blockdodger is a small arcade game: dodge the falling blocks for as long
// as you can.
//
// Usage:
//
//	blockdodger list                 - List available games
//	blockdodger play [game]          - Play in the terminal
//	blockdodger window               - Play in a desktop window
//	blockdodger serve                - Start SSH server for remote play
//	blockdodger replays list         - Show recorded runs
//	blockdodger replays show <id>    - Re-simulate a recorded run
//	blockdodger config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockdodger/runs.db)
//	--verbose       - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/hsmto25519/block-game/internal/games/dodger"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockdodger",
	Short: "Block Dodger - dodge the falling blocks",
	Long: `Block Dodger is a minimal arcade game. Move along the bottom row and
dodge the blocks falling from the top. Every tick you survive scores a
point, and the blocks fall faster and thicker as your score grows.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  replays  - Inspect recorded runs
  config   - Print the effective configuration

Examples:
  blockdodger play
  blockdodger play --difficulty hard --record
  blockdodger window --seed 42
  blockdodger serve --ssh :2222
  blockdodger replays list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockdodger/runs.db", "Path to replay database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}
