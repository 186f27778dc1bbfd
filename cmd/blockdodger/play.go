package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/platform/tui"
	"github.com/hsmto25519/block-game/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing in the terminal. The game defaults to dodger.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  R          - Restart (after game over)
  ?          - Toggle key help
  Q/Esc      - Quit

Difficulty options:
  easy   - Start at level 1, progresses to max
  normal - Start at level 4, progresses to max
  hard   - Start at level 8, progresses to max
  fixed  - No progression, stays at the config's start level

Examples:
  blockdodger play
  blockdodger play dodger --difficulty hard
  blockdodger play --seed 42 --record
  blockdodger play --config ./my-dodger.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	gameID := dodger.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID, gameOptions())
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w, run 'blockdodger list' to see available games", err)
	}
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	rec, closeStore := openRecorder(logger)
	defer closeStore()

	var opts tui.Options
	if rec != nil {
		opts.OnGameOver = rec.onGameOver
	}

	logger.Debug("starting game", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	outcome, err := tui.Run(game, cfg, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("game finished",
		"score", outcome.Final.Score,
		"level", outcome.Final.Level+1,
		"sessions", outcome.Sessions,
	)
	if rec != nil {
		rec.report(logger)
	}
	return nil
}
