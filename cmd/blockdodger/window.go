package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/platform/window"
	"github.com/hsmto25519/block-game/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 640x480 window and play there instead of the terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  blockdodger window
  blockdodger window --difficulty normal --record`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd, true)
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	game, err := dodger.NewFromOptions(gameOptions())
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	rec, closeStore := openRecorder(logger)
	defer closeStore()

	opts := window.Options{
		FrameRate: flagFPS,
		Seed:      flagSeed,
		OnGameOver: func(g registry.Game) {
			st := g.State()
			logger.Info("game over", "score", st.Score, "level", st.Level+1)
			if rec == nil {
				return
			}
			if id, err := rec.record(g); err != nil {
				logger.Warn("could not record run", "error", err)
			} else {
				logger.Info("run recorded", "id", id)
			}
		},
	}

	return window.Run(game, opts)
}
