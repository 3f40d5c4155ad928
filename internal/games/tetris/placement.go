package tetris

// Place merges the piece into the grid by writing its color into every cell
// it covers. The position must already be collision-free; a cell outside
// the grid panics.
func Place(p Piece, g *Grid) {
	for r, c := range p.Shape.Cells() {
		g.Set(p.Row+r, p.Col+c, p.Color)
	}
}

// FullRows returns the indices of all full rows, top to bottom.
func FullRows(g *Grid) []int {
	var full []int
	for r := 0; r < g.Rows(); r++ {
		if g.IsRowFull(r) {
			full = append(full, r)
		}
	}
	return full
}

// ClearFullRows removes every full row and returns how many were removed.
//
// Indices are collected before any removal and processed in ascending order.
// Removing row i only shifts rows above i, so the remaining larger indices
// still point at the rows originally found full.
func ClearFullRows(g *Grid) int {
	full := FullRows(g)
	for _, r := range full {
		g.RemoveRow(r)
	}
	return len(full)
}
