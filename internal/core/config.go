package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Host frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the wall-clock duration of one host frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// GameState is the summary a game reports to its host after each frame.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current difficulty level (0-based)
	GameOver bool // Whether the session has ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Ticked is true when a simulation tick ran during this frame.
	Ticked bool
}

// Clock is the monotonic time source games use to pace their simulation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
