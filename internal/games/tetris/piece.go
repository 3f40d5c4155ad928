package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Palette lists the seven piece colors in spawn-table order.
var Palette = [7]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorMagenta,
}

// Piece is the falling tetromino. Row and Col anchor the top-left corner of
// the shape's bounding box in grid coordinates.
type Piece struct {
	Kind  Kind
	Shape Matrix
	Color core.Color
	Row   int
	Col   int
}

// NewPiece creates a piece in its template orientation at row 0, centered
// horizontally on a grid with the given number of columns.
func NewPiece(kind Kind, color core.Color, cols int) Piece {
	shape := kind.Template()
	return Piece{
		Kind:  kind,
		Shape: shape,
		Color: color,
		Row:   0,
		Col:   cols/2 - shape.Cols()/2,
	}
}

// Rotated returns the piece's shape turned in the given direction.
// The piece itself is not modified.
func (p Piece) Rotated(dir Direction) Matrix {
	return p.Shape.Rotate(dir)
}

// Collides reports whether the piece overlaps the grid's walls, floor or
// locked cells at its current anchor.
func (p Piece) Collides(g *Grid) bool {
	return HasCollision(p.Shape, p.Row, p.Col, g)
}
