package main

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/registry"
	"github.com/hsmto25519/block-game/internal/storage"
)

// Flags shared by every command that builds a game.
var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
)

// addGameFlags registers the game selection flags on cmd.
func addGameFlags(cmd *cobra.Command, record bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	if record {
		cmd.Flags().BoolVar(&flagRecord, "record", false, "Record finished runs for replay")
	}
}

func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// runFromGame captures a dodger game as a storable run.
func runFromGame(g *dodger.Game, difficulty string) (storage.Run, error) {
	data, err := config.Marshal(g.Config())
	if err != nil {
		return storage.Run{}, err
	}
	snap := g.Snapshot()
	return storage.Run{
		GameID:     g.ID(),
		Seed:       g.Seed(),
		Difficulty: difficulty,
		ConfigYAML: string(data),
		Journal:    g.Journal().String(),
		Score:      snap.Score,
		Level:      snap.Level,
		Ticks:      snap.Tick,
		GameOver:   snap.GameOver(),
	}, nil
}

// runRecorder saves finished games to the replay store. It keeps what it
// did so callers can log it once the terminal is theirs again. Safe for
// concurrent use by SSH sessions.
type runRecorder struct {
	store      *storage.Store
	difficulty string

	mu    sync.Mutex
	saved []string
	errs  []error
}

func newRunRecorder(store *storage.Store, difficulty string) *runRecorder {
	return &runRecorder{store: store, difficulty: difficulty}
}

// record stores one finished game and returns its run ID.
func (r *runRecorder) record(game registry.Game) (string, error) {
	id, err := r.save(game)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.errs = append(r.errs, err)
		return "", err
	}
	r.saved = append(r.saved, id)
	return id, nil
}

func (r *runRecorder) save(game registry.Game) (string, error) {
	g, ok := game.(*dodger.Game)
	if !ok {
		return "", fmt.Errorf("game %q does not support recording", game.ID())
	}

	run, err := runFromGame(g, r.difficulty)
	if err != nil {
		return "", err
	}
	return r.store.SaveRun(run)
}

// onGameOver adapts record to the hosts' callback signature.
func (r *runRecorder) onGameOver(game registry.Game) {
	//nolint:errcheck // Reported later through report
	r.record(game)
}

// report logs every recorded run and failure.
func (r *runRecorder) report(logger *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.saved {
		logger.Info("run recorded", "id", id)
	}
	for _, err := range r.errs {
		logger.Warn("could not record run", "error", err)
	}
}

// openRecorder opens the replay store when --record is set. A store that
// fails to open is logged and recording is skipped.
func openRecorder(logger *log.Logger) (*runRecorder, func()) {
	if !flagRecord {
		return nil, func() {}
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database, runs will not be recorded", "error", err)
		return nil, func() {}
	}
	return newRunRecorder(store, flagDifficulty), func() { store.Close() }
}
