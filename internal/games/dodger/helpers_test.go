package dodger

import (
	"time"

	"github.com/hsmto25519/block-game/internal/config"
)

// scriptedRand replays fixed values, cycling when it runs out.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
	intnN  []int // arguments Intn was called with
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.intnN = append(r.intnN, n)
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// neverSpawn fails every spawn trial.
func neverSpawn() *scriptedRand {
	return &scriptedRand{floats: []float64{0.999}, ints: []int{0}}
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testConfig() config.DodgerConfig {
	return config.DefaultDodgerConfig()
}
