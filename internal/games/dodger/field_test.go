package dodger

import (
	"math/rand"
	"testing"
)

func TestFieldAdvance(t *testing.T) {
	f := NewField()
	f.Add(Block{X: 1, Y: 0})
	f.Add(Block{X: 2, Y: 9})
	f.Add(Block{X: 3, Y: 4})
	f.Add(Block{X: 3, Y: 4}) // duplicates are independent

	f.Advance(10)

	got := f.Blocks()
	expected := []Block{{1, 1}, {3, 5}, {3, 5}}
	if len(got) != len(expected) {
		t.Fatalf("Advance left %d blocks, expected %d: %v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("block %d = %+v, expected %+v (order must be stable)", i, got[i], expected[i])
		}
	}
}

func TestFieldAdvanceNeverLeavesOffGridBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		height := 1 + rng.Intn(12)
		f := NewField()
		for i := rng.Intn(30); i > 0; i-- {
			f.Add(Block{X: rng.Intn(20), Y: rng.Intn(height)})
		}

		f.Advance(height)

		for _, b := range f.Blocks() {
			if b.Y >= height {
				t.Fatalf("trial %d: block %+v left on a grid of height %d", trial, b, height)
			}
		}
	}
}

func TestFieldBlocksIsACopy(t *testing.T) {
	f := NewField()
	f.Add(Block{X: 0, Y: 0})

	blocks := f.Blocks()
	blocks[0].Y = 5

	if f.Blocks()[0].Y != 0 {
		t.Error("mutating Blocks() result should not affect the field")
	}
}
