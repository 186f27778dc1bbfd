package dodger

import "github.com/hsmto25519/block-game/internal/config"

// RandomSource supplies the randomness the spawner consumes.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RandomSource interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Spawner adds new blocks on the top row.
type Spawner struct {
	rng        RandomSource
	difficulty config.Difficulty
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandomSource, difficulty config.Difficulty) *Spawner {
	return &Spawner{rng: rng, difficulty: difficulty}
}

// Spawn runs MaxSpawns(level) independent trials, each succeeding with
// SpawnChance(level). Every success appends a block at y = 0 in a uniformly
// chosen column. It returns the blocks that were added.
func (s *Spawner) Spawn(f *Field, width, score int) []Block {
	level := s.difficulty.Level(score)
	chance := s.difficulty.SpawnChance(level)
	attempts := s.difficulty.MaxSpawns(level)

	var spawned []Block
	for range attempts {
		if s.rng.Float64() < chance {
			b := Block{X: s.rng.Intn(width), Y: 0}
			f.Add(b)
			spawned = append(spawned, b)
		}
	}
	return spawned
}
