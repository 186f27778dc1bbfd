package window

import "github.com/hsmto25519/block-game/internal/games/dodger"

// rect is a filled rectangle in screen pixels.
type rect struct {
	X, Y, W, H float32
}

// board maps grid cells onto a screen of the given pixel size. The grid is
// stretched to fill the whole screen, so cells need not be square.
type board struct {
	cellW, cellH float32
}

func newBoard(gridW, gridH, screenW, screenH int) board {
	return board{
		cellW: float32(screenW) / float32(max(gridW, 1)),
		cellH: float32(screenH) / float32(max(gridH, 1)),
	}
}

// cell returns the pixel rectangle of grid cell (x, y).
func (b board) cell(x, y int) rect {
	return rect{
		X: float32(x) * b.cellW,
		Y: float32(y) * b.cellH,
		W: b.cellW,
		H: b.cellH,
	}
}

// scene lists the rectangles to draw for a snapshot: one per block and
// the player on the bottom row.
func scene(snap dodger.Snapshot, screenW, screenH int) (blocks []rect, player rect) {
	b := newBoard(snap.Width, snap.Height, screenW, screenH)
	blocks = make([]rect, 0, len(snap.Blocks))
	for _, blk := range snap.Blocks {
		blocks = append(blocks, b.cell(blk.X, blk.Y))
	}
	return blocks, b.cell(snap.PlayerX, snap.Height-1)
}
