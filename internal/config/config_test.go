package config

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultDodgerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
	}{
		{"zero width", func(c *DodgerConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *DodgerConfig) { c.Grid.Height = -1 }},
		{"zero threshold", func(c *DodgerConfig) { c.Difficulty.LevelThreshold = 0 }},
		{"negative cap", func(c *DodgerConfig) { c.Difficulty.LevelCap = -1 }},
		{"negative start level", func(c *DodgerConfig) { c.Difficulty.StartLevel = -2 }},
		{"negative chance", func(c *DodgerConfig) { c.Difficulty.Spawn.ChanceBase = -0.1 }},
		{"zero tier size", func(c *DodgerConfig) { c.Difficulty.Spawn.TierSize = 0 }},
		{"zero floor", func(c *DodgerConfig) { c.Difficulty.Tick.FloorMS = 0 }},
		{"base below floor", func(c *DodgerConfig) { c.Difficulty.Tick.BaseMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDodgerConfig()
	cfg.Difficulty.StartLevel = 4

	ApplyPreset(&cfg, "")
	if cfg.Difficulty.StartLevel != 4 || !cfg.Difficulty.Enabled {
		t.Error("empty preset should leave config untouched")
	}

	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Difficulty.StartLevel != 3 || !cfg.Difficulty.Enabled {
		t.Errorf("normal preset: start=%d enabled=%v", cfg.Difficulty.StartLevel, cfg.Difficulty.Enabled)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Difficulty.StartLevel != 3 {
		t.Error("fixed preset should keep the start level")
	}
}
