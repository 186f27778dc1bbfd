package dodger

// Collides reports whether any block sits on the player's cell, which is
// column playerX of the bottom row (height - 1).
func Collides(blocks []Block, playerX, height int) bool {
	row := height - 1
	for _, b := range blocks {
		if b.X == playerX && b.Y == row {
			return true
		}
	}
	return false
}
