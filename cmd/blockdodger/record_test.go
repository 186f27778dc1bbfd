package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/registry"
	"github.com/hsmto25519/block-game/internal/storage"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

// playGame drives a dodger game frame by frame with a fixed move pattern
// until it ends or the frame limit is hit.
func playGame(t *testing.T, seed int64, frames int) *dodger.Game {
	t.Helper()
	clock := &stepClock{now: time.Unix(0, 0)}
	g, err := dodger.New(config.DefaultDodgerConfig(), clock)
	if err != nil {
		t.Fatalf("dodger.New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed})

	for i := 0; i < frames && !g.State().GameOver; i++ {
		clock.now = clock.now.Add(100 * time.Millisecond)
		in := core.NewInputFrame()
		switch i % 7 {
		case 1, 2:
			in.Set(core.ActionLeft)
		case 4:
			in.Set(core.ActionRight)
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}
	return g
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordedRunReplays(t *testing.T) {
	store := openTestStore(t)
	rec := newRunRecorder(store, "hard")

	g := playGame(t, 1234, 5000)
	id, err := rec.record(g)
	if err != nil {
		t.Fatalf("record() failed: %v", err)
	}

	run, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun() failed: %v", err)
	}
	if run.Seed != 1234 || run.Difficulty != "hard" || run.GameID != dodger.GameID {
		t.Errorf("stored run = %+v", run)
	}
	if run.Journal == "" {
		t.Error("journal should not be empty")
	}

	snap, err := replayRun(*run)
	if err != nil {
		t.Fatalf("replayRun() failed: %v", err)
	}
	if !replayMatches(*run, snap) {
		t.Errorf("replay = score %d ticks %d, stored = score %d ticks %d",
			snap.Score, snap.Tick, run.Score, run.Ticks)
	}

	tampered := *run
	tampered.Score++
	if replayMatches(tampered, snap) {
		t.Error("a changed score should not match")
	}
}

func TestRunFromGame(t *testing.T) {
	g := playGame(t, 5, 30)

	run, err := runFromGame(g, "")
	if err != nil {
		t.Fatalf("runFromGame() failed: %v", err)
	}

	cfg, err := config.Parse([]byte(run.ConfigYAML))
	if err != nil {
		t.Fatalf("stored config should parse: %v", err)
	}
	if cfg != g.Config() {
		t.Errorf("stored config = %+v, want %+v", cfg, g.Config())
	}
	st := g.State()
	if run.Score != st.Score || run.Level != st.Level || run.GameOver != st.GameOver {
		t.Errorf("run outcome = (%d, %d, %v), want %+v", run.Score, run.Level, run.GameOver, st)
	}
}

type otherGame struct{}

func (otherGame) ID() string                           { return "other" }
func (otherGame) Title() string                        { return "Other" }
func (otherGame) Reset(core.RuntimeConfig)             {}
func (otherGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (otherGame) Render(*core.Screen)                  {}
func (otherGame) State() core.GameState                { return core.GameState{} }

func TestRecorderRejectsOtherGames(t *testing.T) {
	rec := newRunRecorder(openTestStore(t), "")

	var g registry.Game = otherGame{}
	if _, err := rec.record(g); err == nil {
		t.Fatal("record() should fail for games without a journal")
	}
	if len(rec.errs) != 1 || len(rec.saved) != 0 {
		t.Errorf("recorder state = %d saved, %d errors", len(rec.saved), len(rec.errs))
	}
}

func TestReplayRunRejectsBadJournal(t *testing.T) {
	data, err := config.Marshal(config.DefaultDodgerConfig())
	if err != nil {
		t.Fatal(err)
	}
	run := storage.Run{ID: "x", ConfigYAML: string(data), Journal: "3R 1L"}

	if _, err := replayRun(run); err == nil {
		t.Error("replayRun() should reject an out of order journal")
	}
}

func TestRunsTable(t *testing.T) {
	out := runsTable([]storage.Run{
		{ID: "run-a", Difficulty: "easy", Score: 12, Level: 1, Ticks: 13},
		{ID: "run-b", Score: 3, Ticks: 4},
	})

	for _, want := range []string{"ID", "Score", "run-a", "easy", "12", "run-b", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestListCommandPrintsDodger(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)

	if !strings.Contains(buf.String(), "dodger") || !strings.Contains(buf.String(), "Block Dodger") {
		t.Errorf("list output = %q", buf.String())
	}
}

func TestConfigCommandPrintsValidYAML(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	defer configCmd.SetOut(nil)

	flagDifficulty = "fixed"
	defer func() { flagDifficulty = "" }()

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	cfg, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("output should parse back: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression in the output")
	}
}
