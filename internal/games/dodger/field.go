package dodger

// Block is a falling obstacle occupying one grid cell.
// Blocks have no identity beyond their position; two blocks may share a cell.
type Block struct {
	X int
	Y int
}

// Field is the live collection of falling blocks, in insertion order.
type Field struct {
	blocks []Block
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{blocks: make([]Block, 0, 32)}
}

// Add appends a block.
func (f *Field) Add(b Block) {
	f.blocks = append(f.blocks, b)
}

// Advance moves every block down one row, then drops blocks that left the
// grid (y >= height). Survivors keep their relative order.
func (f *Field) Advance(height int) {
	for i := range f.blocks {
		f.blocks[i].Y++
	}

	kept := f.blocks[:0]
	for _, b := range f.blocks {
		if b.Y < height {
			kept = append(kept, b)
		}
	}
	f.blocks = kept
}

// Blocks returns a copy of the current blocks.
func (f *Field) Blocks() []Block {
	out := make([]Block, len(f.blocks))
	copy(out, f.blocks)
	return out
}
