// Package dodger implements Block Dodger: the player slides along the bottom
// row of a grid while blocks fall from the top, faster and denser as the
// score grows.
package dodger

import (
	"time"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/core"
)

// State is the session lifecycle state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over" // terminal for the session
)

// Direction is a horizontal player move.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns "L" or "R".
func (d Direction) String() string {
	if d == DirLeft {
		return "L"
	}
	return "R"
}

// Session owns all simulation state for one run. It advances only when
// Tick is called; pacing is the caller's job.
type Session struct {
	width      int
	height     int
	difficulty config.Difficulty
	spawner    *Spawner
	field      *Field

	playerX int
	score   int
	ticks   uint64
	state   State
}

// NewSession validates cfg and starts a session: playing, score 0, player
// centered, no blocks.
func NewSession(cfg config.DodgerConfig, rng RandomSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSession(cfg, rng), nil
}

// newSession skips validation for callers that already validated cfg.
func newSession(cfg config.DodgerConfig, rng RandomSource) *Session {
	difficulty := config.NewDifficulty(cfg.Difficulty)
	return &Session{
		width:      cfg.Grid.Width,
		height:     cfg.Grid.Height,
		difficulty: difficulty,
		spawner:    NewSpawner(rng, difficulty),
		field:      NewField(),
		playerX:    cfg.Grid.Width / 2,
		state:      StatePlaying,
	}
}

// Move shifts the player one column, clamped to the grid.
// Ignored once the game is over.
func (s *Session) Move(dir Direction) {
	if s.state != StatePlaying {
		return
	}
	s.playerX = core.Clamp(s.playerX+int(dir), 0, s.width-1)
}

// MoveLeft is Move(DirLeft).
func (s *Session) MoveLeft() { s.Move(DirLeft) }

// MoveRight is Move(DirRight).
func (s *Session) MoveRight() { s.Move(DirRight) }

// Tick runs one simulation step: advance blocks, spawn new ones, then test
// for a collision. A collision ends the game and the tick scores nothing;
// otherwise the score goes up by one. Tick is a no-op after game over.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.field.Advance(s.height)
	s.spawner.Spawn(s.field, s.width, s.score)

	if Collides(s.field.blocks, s.playerX, s.height) {
		s.state = StateGameOver
		return
	}
	s.score++
}

// TickInterval returns how long the host should wait between ticks at the
// current level.
func (s *Session) TickInterval() time.Duration {
	return s.difficulty.TickInterval(s.Level())
}

// Level returns the current difficulty level.
func (s *Session) Level() int {
	return s.difficulty.Level(s.score)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the number of ticks survived.
func (s *Session) Score() int { return s.score }

// Ticks returns the number of ticks executed, including a fatal one.
func (s *Session) Ticks() uint64 { return s.ticks }

// PlayerX returns the player's column.
func (s *Session) PlayerX() int { return s.playerX }

// Blocks returns a copy of the live blocks.
func (s *Session) Blocks() []Block { return s.field.Blocks() }

// Width returns the grid width.
func (s *Session) Width() int { return s.width }

// Height returns the grid height.
func (s *Session) Height() int { return s.height }
