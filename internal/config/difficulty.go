package config

import "time"

// Difficulty maps score to a level and levels to spawn and pacing parameters.
// All methods are pure.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty model from validated configuration.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// Level returns the level for a cumulative score, in [0, LevelCap].
func (d Difficulty) Level(score int) int {
	level := d.cfg.StartLevel
	if d.cfg.Enabled && d.cfg.LevelThreshold > 0 {
		level += max(score, 0) / d.cfg.LevelThreshold
	}
	return min(level, d.cfg.LevelCap)
}

// SpawnChance returns the per-attempt spawn probability for a level.
// With the default parameters this climbs from 0.30 to 0.90 at level 15.
func (d Difficulty) SpawnChance(level int) float64 {
	return d.cfg.Spawn.ChanceBase + d.cfg.Spawn.ChanceSlope*float64(level)
}

// MaxSpawns returns the number of spawn attempts per tick for a level.
func (d Difficulty) MaxSpawns(level int) int {
	return 1 + level/d.cfg.Spawn.TierSize
}

// TickIntervalMS returns the tick interval in milliseconds for a level.
// The linear formula goes below the floor at high levels; the floor wins.
func (d Difficulty) TickIntervalMS(level int) int {
	return max(d.cfg.Tick.BaseMS-d.cfg.Tick.SlopeMS*level, d.cfg.Tick.FloorMS)
}

// TickInterval returns TickIntervalMS as a duration.
func (d Difficulty) TickInterval(level int) time.Duration {
	return time.Duration(d.TickIntervalMS(level)) * time.Millisecond
}
