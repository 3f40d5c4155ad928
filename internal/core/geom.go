// Package core holds the types shared by the game and the terminal layer:
// actions, the screen buffer, colors and runtime settings. It imports
// nothing from Bubble Tea so game logic stays testable on its own.
package core

// Rect is an axis-aligned area of the screen. The right and bottom edges
// are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredIn returns a w x h rectangle centered inside r.
// Offsets never go negative, so oversized content is anchored top-left.
func (r Rect) CenteredIn(w, h int) Rect {
	return NewRect(r.X+max(0, (r.W-w)/2), r.Y+max(0, (r.H-h)/2), w, h)
}
