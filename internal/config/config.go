// Package config provides YAML/TOML game configuration loading, validation
// and the difficulty model for Block Dodger.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DodgerConfig contains all configuration for the Block Dodger game.
type DodgerConfig struct {
	Grid       GridConfig       `yaml:"grid" toml:"grid"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// DifficultyConfig defines how the level is derived from score and what
// each level does to spawning and pacing.
type DifficultyConfig struct {
	Enabled        bool        `yaml:"enabled" toml:"enabled"`         // false pins the level at StartLevel
	StartLevel     int         `yaml:"start_level" toml:"start_level"` // added to the score-derived level
	LevelThreshold int         `yaml:"level_threshold" toml:"level_threshold"`
	LevelCap       int         `yaml:"level_cap" toml:"level_cap"`
	Spawn          SpawnConfig `yaml:"spawn" toml:"spawn"`
	Tick           TickConfig  `yaml:"tick" toml:"tick"`
}

// SpawnConfig defines obstacle spawn probability and count per tick.
type SpawnConfig struct {
	ChanceBase  float64 `yaml:"chance_base" toml:"chance_base"`
	ChanceSlope float64 `yaml:"chance_slope" toml:"chance_slope"`
	TierSize    int     `yaml:"tier_size" toml:"tier_size"` // levels per extra spawn attempt
}

// TickConfig defines the simulation interval in milliseconds.
type TickConfig struct {
	BaseMS  int `yaml:"base_ms" toml:"base_ms"`
	SlopeMS int `yaml:"slope_ms" toml:"slope_ms"`
	FloorMS int `yaml:"floor_ms" toml:"floor_ms"`
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig for the first problem found.
func (c DodgerConfig) Validate() error {
	d := c.Difficulty
	switch {
	case c.Grid.Width <= 0:
		return invalid("grid.width must be positive, got %d", c.Grid.Width)
	case c.Grid.Height <= 0:
		return invalid("grid.height must be positive, got %d", c.Grid.Height)
	case d.LevelThreshold <= 0:
		return invalid("difficulty.level_threshold must be positive, got %d", d.LevelThreshold)
	case d.LevelCap < 0:
		return invalid("difficulty.level_cap must not be negative, got %d", d.LevelCap)
	case d.StartLevel < 0:
		return invalid("difficulty.start_level must not be negative, got %d", d.StartLevel)
	case d.Spawn.ChanceBase < 0 || d.Spawn.ChanceSlope < 0:
		return invalid("difficulty.spawn chance parameters must not be negative, got base=%g slope=%g",
			d.Spawn.ChanceBase, d.Spawn.ChanceSlope)
	case d.Spawn.TierSize <= 0:
		return invalid("difficulty.spawn.tier_size must be positive, got %d", d.Spawn.TierSize)
	case d.Tick.FloorMS < 1:
		return invalid("difficulty.tick.floor_ms must be at least 1, got %d", d.Tick.FloorMS)
	case d.Tick.BaseMS < d.Tick.FloorMS:
		return invalid("difficulty.tick.base_ms (%d) must not be below floor_ms (%d)", d.Tick.BaseMS, d.Tick.FloorMS)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset parses a --difficulty flag value. The empty string yields
// the empty preset, which leaves the loaded configuration untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 7
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset disables progression and keeps the configured start level.
func ApplyPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	}
}
