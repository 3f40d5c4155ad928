package tetris

// HasCollision reports whether shape, anchored at (row, col), hits the floor,
// a side wall, or a locked cell of g.
//
// Cells above the top edge (row < 0) never collide: pieces may poke out of
// the top while spawning or rotating.
func HasCollision(shape Matrix, row, col int, g *Grid) bool {
	for r, c := range shape.Cells() {
		gr, gc := row+r, col+c
		if gr >= g.Rows() || gc < 0 || gc >= g.Cols() {
			return true
		}
		if gr < 0 {
			continue
		}
		if !g.At(gr, gc).Empty() {
			return true
		}
	}
	return false
}
