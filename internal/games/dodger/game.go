package dodger

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/core"
	"github.com/hsmto25519/block-game/internal/registry"
)

// GameID is the registry identifier.
const GameID = "dodger"

// Visual characters for rendering. Each grid cell is two columns wide so
// the playfield looks square in a terminal.
const (
	cellWidth  = 2
	BlockChar  = '█'
	PlayerChar = '▄'
)

// Game adapts a Session to the host frame loop. Every frame it applies the
// presses that arrived, then runs one tick if the tick interval has elapsed
// on its clock.
type Game struct {
	cfg      config.DodgerConfig
	clock    core.Clock
	session  *Session
	seed     int64
	lastTick time.Time
	journal  Journal
}

// New creates a game from a configuration. The configuration is validated
// here so Reset can't fail later.
func New(cfg config.DodgerConfig, clock core.Clock) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	g := &Game{cfg: cfg, clock: clock}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// NewFromOptions loads the configuration named by opts, applies the
// difficulty preset and creates a game on the system clock.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}
	return New(cfg, core.SystemClock{})
}

// LoadConfig resolves the configuration a set of options describes.
func LoadConfig(opts registry.Options) (config.DodgerConfig, error) {
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return config.DodgerConfig{}, err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.DodgerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

func init() {
	registry.Register(GameID, "Block Dodger", func(opts registry.Options) (registry.Game, error) {
		return NewFromOptions(opts)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Dodger"
}

// Reset starts a new session seeded from cfg.Seed. Screen size is ignored:
// the grid size comes from the game configuration.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.session = newSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	g.lastTick = g.clock.Now()
	g.journal = nil
}

// Step processes one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.State() != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	for range in.Count(core.ActionLeft) {
		g.move(DirLeft)
	}
	for range in.Count(core.ActionRight) {
		g.move(DirRight)
	}

	ticked := false
	now := g.clock.Now()
	if now.Sub(g.lastTick) > g.session.TickInterval() {
		g.lastTick = now
		g.session.Tick()
		ticked = true
	}

	return core.StepResult{State: g.State(), Ticked: ticked}
}

func (g *Game) move(dir Direction) {
	g.journal = append(g.journal, Move{Tick: g.session.Ticks(), Dir: dir})
	g.session.Move(dir)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.State() == StateGameOver,
	}
}

// Snapshot returns the session state for hosts that draw it themselves.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the game configuration.
func (g *Game) Config() config.DodgerConfig {
	return g.cfg
}

// Journal returns a copy of the moves made in the current session.
func (g *Game) Journal() Journal {
	out := make(Journal, len(g.journal))
	copy(out, g.journal)
	return out
}

// BoardSize returns the screen area the playfield needs, HUD included.
func (g *Game) BoardSize() (w, h int) {
	return g.cfg.Grid.Width*cellWidth + 2, g.cfg.Grid.Height + 3
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.BoardSize()
	if dst.Width() < needW || dst.Height() < needH {
		g.drawTooSmall(dst, needW, needH)
		return
	}

	snap := g.session.Snapshot()
	ox := core.CenterIn(dst.Width(), needW)
	oy := core.CenterIn(dst.Height(), needH)

	// HUD shows levels 1-based
	hud := fmt.Sprintf("Score: %d | Level: %d", snap.Score, snap.Level+1)
	dst.DrawText(ox, oy, hud, core.ColorHUD)

	board := core.NewRect(ox, oy+1, needW, snap.Height+2)
	dst.DrawBox(board, core.ColorBorder)

	cell := func(x, y int, r rune, c core.Color) {
		for dx := range cellWidth {
			dst.SetColored(board.X+1+x*cellWidth+dx, board.Y+1+y, r, c)
		}
	}

	for _, b := range snap.Blocks {
		cell(b.X, b.Y, BlockChar, core.ColorBlock)
	}
	cell(snap.PlayerX, snap.Height-1, PlayerChar, core.ColorPlayer)

	if snap.GameOver() {
		g.drawGameOver(dst, board, snap.Score)
	}
}

// drawGameOver draws the overlay box centered on the board.
func (g *Game) drawGameOver(dst *core.Screen, board core.Rect, score int) {
	title := "GAME OVER"
	detail := fmt.Sprintf("Final Score: %d", score)
	hint := "R restart  Q quit"

	boxW := max(utf8.RuneCountInString(title), len(detail), len(hint)) + 4
	boxH := 6
	box := core.NewRect(
		board.X+core.CenterIn(board.W, boxW),
		board.Y+core.CenterIn(board.H, boxH),
		boxW, boxH,
	)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAlert)
	dst.DrawText(box.X+core.CenterIn(boxW, len(title)), box.Y+1, title, core.ColorAlert)
	dst.DrawText(box.X+core.CenterIn(boxW, len(detail)), box.Y+2, detail, core.ColorHUD)
	dst.DrawText(box.X+core.CenterIn(boxW, len(hint)), box.Y+4, hint, core.ColorDim)
}

func (g *Game) drawTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorAlert)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorDim)
}
