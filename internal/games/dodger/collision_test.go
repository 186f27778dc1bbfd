package dodger

import "testing"

func TestCollides(t *testing.T) {
	const height = 10

	tests := []struct {
		name     string
		blocks   []Block
		playerX  int
		expected bool
	}{
		{"empty field", nil, 5, false},
		{"block on player cell", []Block{{5, 9}}, 5, true},
		{"block in player column above", []Block{{5, 8}}, 5, false},
		{"block in player row elsewhere", []Block{{4, 9}, {6, 9}}, 5, false},
		{"one of many hits", []Block{{0, 0}, {3, 3}, {5, 9}}, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.blocks, tc.playerX, height); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesDoesNotMutate(t *testing.T) {
	blocks := []Block{{1, 9}, {2, 3}}
	Collides(blocks, 1, 10)

	if blocks[0] != (Block{1, 9}) || blocks[1] != (Block{2, 3}) {
		t.Errorf("Collides mutated its input: %v", blocks)
	}
}
