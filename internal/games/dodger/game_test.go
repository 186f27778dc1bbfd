package dodger

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/registry"
)

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	g, err := New(testConfig(), clock)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 1})
	return g, clock
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestStepGatesTicksOnClock(t *testing.T) {
	g, clock := newTestGame(t)
	g.session = newSession(g.cfg, neverSpawn())

	clock.Advance(100 * time.Millisecond)
	if res := g.Step(core.NewInputFrame()); res.Ticked {
		t.Error("no tick should run before the interval elapses")
	}

	clock.Advance(150 * time.Millisecond) // exactly 250ms since reset
	if res := g.Step(core.NewInputFrame()); res.Ticked {
		t.Error("the interval must be exceeded, not just reached")
	}

	clock.Advance(time.Millisecond)
	res := g.Step(core.NewInputFrame())
	if !res.Ticked {
		t.Fatal("tick should run once the interval is exceeded")
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}

	// The timer restarted at the tick.
	clock.Advance(200 * time.Millisecond)
	if res := g.Step(core.NewInputFrame()); res.Ticked {
		t.Error("tick timer should reset after each tick")
	}
}

func TestStepAppliesInputWithoutTick(t *testing.T) {
	g, _ := newTestGame(t)
	startX := g.Snapshot().PlayerX

	res := g.Step(press(core.ActionLeft, core.ActionLeft))

	if res.Ticked {
		t.Fatal("clock did not move, no tick expected")
	}
	if got := g.Snapshot().PlayerX; got != startX-2 {
		t.Errorf("PlayerX = %d, expected %d (two presses in one frame)", got, startX-2)
	}

	g.Step(press(core.ActionRight))
	if got := g.Snapshot().PlayerX; got != startX-1 {
		t.Errorf("PlayerX = %d, expected %d", got, startX-1)
	}
}

func TestStepIgnoresInputAfterGameOver(t *testing.T) {
	g, clock := newTestGame(t)
	g.session = newSession(g.cfg, neverSpawn())
	g.session.field.Add(Block{X: g.session.PlayerX(), Y: g.session.Height() - 2})

	clock.Advance(time.Second)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}

	x := g.Snapshot().PlayerX
	clock.Advance(time.Second)
	res = g.Step(press(core.ActionLeft))
	if res.Ticked || g.Snapshot().PlayerX != x {
		t.Error("game over should freeze the session")
	}
	if len(g.Journal()) != 0 {
		t.Error("moves after game over should not be journaled")
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	g, clock := newTestGame(t)
	for range 5 {
		clock.Advance(time.Second)
		g.Step(press(core.ActionRight))
	}

	g.Reset(core.RuntimeConfig{Seed: 7})

	snap := g.Snapshot()
	if snap.Score != 0 || snap.Tick != 0 || len(snap.Blocks) != 0 || snap.PlayerX != 10 {
		t.Errorf("Reset should clear the session, got %+v", snap)
	}
	if g.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", g.Seed())
	}
	if len(g.Journal()) != 0 {
		t.Error("Reset should clear the journal")
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g, _ := newTestGame(t)
	g.session.field.Add(Block{X: 0, Y: 0})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0 | Level: 1") {
		t.Errorf("HUD missing from render:\n%s", out)
	}

	needW, needH := g.BoardSize()
	ox := core.CenterIn(80, needW)
	oy := core.CenterIn(24, needH)

	// Player on the bottom grid row
	px := ox + 1 + g.Snapshot().PlayerX*cellWidth
	py := oy + 2 + g.cfg.Grid.Height - 1
	if cell := screen.GetCell(px, py); cell.Rune != PlayerChar || cell.Color != core.ColorPlayer {
		t.Errorf("player cell = %+v, expected %q", cell, PlayerChar)
	}

	// Block in the top-left grid cell
	if cell := screen.GetCell(ox+1, oy+2); cell.Rune != BlockChar || cell.Color != core.ColorBlock {
		t.Errorf("block cell = %+v, expected %q", cell, BlockChar)
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	g, clock := newTestGame(t)
	for range 20 {
		clock.Advance(300 * time.Millisecond)
		g.Step(press(core.ActionLeft))
	}

	before := g.Snapshot()
	stateBefore := g.State()
	screen := core.NewScreen(80, 24)
	for range 3 {
		g.Render(screen)
	}

	if !reflect.DeepEqual(before, g.Snapshot()) || stateBefore != g.State() {
		t.Error("Render changed game state")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g, clock := newTestGame(t)
	g.session = newSession(g.cfg, neverSpawn())
	g.session.field.Add(Block{X: g.session.PlayerX(), Y: g.session.Height() - 2})
	clock.Advance(time.Second)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("expected game over overlay:\n%s", out)
	}
	if !strings.Contains(out, "Final Score: 0") {
		t.Errorf("expected final score in overlay:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(30, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
}

func TestRegisteredInRegistry(t *testing.T) {
	g, err := registry.Create(GameID, registry.Options{Difficulty: "fixed"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Block Dodger" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestRegistryRejectsUnknownDifficulty(t *testing.T) {
	if _, err := registry.Create(GameID, registry.Options{Difficulty: "impossible"}); err == nil {
		t.Error("unknown difficulty should fail game creation")
	}
}
