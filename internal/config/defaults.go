package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default Block Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			StartLevel:     0,
			LevelThreshold: 10,
			LevelCap:       15,
			Spawn: SpawnConfig{
				ChanceBase:  0.30,
				ChanceSlope: 0.04,
				TierSize:    3,
			},
			Tick: TickConfig{
				BaseMS:  250,
				SlopeMS: 20,
				FloorMS: 1,
			},
		},
	}
}
