package dodger

// Snapshot captures the complete session state for rendering hosts,
// determinism tests and replay verification.
type Snapshot struct {
	Tick    uint64
	Score   int
	Level   int // 0-based
	TickMS  int // current tick interval in milliseconds
	PlayerX int
	Width   int
	Height  int
	Blocks  []Block
	State   State
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.ticks,
		Score:   s.score,
		Level:   s.Level(),
		TickMS:  int(s.TickInterval().Milliseconds()),
		PlayerX: s.playerX,
		Width:   s.width,
		Height:  s.height,
		Blocks:  s.field.Blocks(),
		State:   s.state,
	}
}

// GameOver reports whether the snapshot was taken after the fatal tick.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}
