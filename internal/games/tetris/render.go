package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering. Each grid cell is two columns wide so
// blocks look roughly square in a terminal.
const (
	blockLeft  = '█'
	blockRight = '█'
	emptyLeft  = ' '
	emptyRight = '·'
	cellWidth  = 2
	hudHeight  = 1
)

// Renderer consumes one frame per tick. After the session ends it is called
// once more with the final frame, which carries the game over notice.
type Renderer interface {
	Draw(f Frame)
}

// ScreenRenderer draws frames into a core.Screen buffer.
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer creates a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

var _ Renderer = (*ScreenRenderer)(nil)

// BoardSize returns the screen area needed for a rows x cols grid including
// its border and the HUD line.
func BoardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2, rows + 2 + hudHeight
}

// Draw renders the HUD, the board, the active piece and, for the final
// frame, the game over overlay.
func (r *ScreenRenderer) Draw(f Frame) {
	dst := r.dst
	dst.Clear()
	if f.Grid == nil {
		return
	}

	w, h := BoardSize(f.Grid.Rows(), f.Grid.Cols())
	if dst.Width() < w || dst.Height() < h {
		r.drawOverlay("Window too small", fmt.Sprintf("Need %dx%d", w, h), core.ColorYellow)
		return
	}

	area := dst.Bounds().CenteredIn(w, h)
	r.drawHUD(area, f)

	board := core.NewRect(area.X, area.Y+hudHeight, w, h-hudHeight)
	dst.DrawBox(board, core.ColorGray)
	r.drawGrid(board, f.Grid)
	r.drawPiece(board, f.Piece, f.Grid)

	if f.Ended() {
		r.drawOverlay("GAME OVER", fmt.Sprintf("Score: %d", f.Score), core.ColorRed)
	}
}

// drawHUD writes the score line above the board.
func (r *ScreenRenderer) drawHUD(area core.Rect, f Frame) {
	hud := fmt.Sprintf("Score: %d  Lines: %d", f.Score, f.Lines)
	r.dst.DrawTextColored(area.X, area.Y, hud, core.ColorWhite)
}

// drawGrid draws locked cells and empty squares inside the border.
func (r *ScreenRenderer) drawGrid(board core.Rect, g *Grid) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			x, y := cellOrigin(board, row, col)
			if cell := g.At(row, col); !cell.Empty() {
				r.dst.SetColored(x, y, blockLeft, cell.Color)
				r.dst.SetColored(x+1, y, blockRight, cell.Color)
				continue
			}
			r.dst.SetColored(x, y, emptyLeft, core.ColorGray)
			r.dst.SetColored(x+1, y, emptyRight, core.ColorGray)
		}
	}
}

// drawPiece draws the falling piece. Cells above the top edge are hidden.
func (r *ScreenRenderer) drawPiece(board core.Rect, p Piece, g *Grid) {
	for dr, dc := range p.Shape.Cells() {
		row, col := p.Row+dr, p.Col+dc
		if !g.InBounds(row, col) {
			continue
		}
		x, y := cellOrigin(board, row, col)
		r.dst.SetColored(x, y, blockLeft, p.Color)
		r.dst.SetColored(x+1, y, blockRight, p.Color)
	}
}

// drawOverlay draws a centered two-line message box.
func (r *ScreenRenderer) drawOverlay(line1, line2 string, c core.Color) {
	boxW := min(max(len([]rune(line1)), len([]rune(line2)))+4, r.dst.Width())
	box := r.dst.Bounds().CenteredIn(boxW, 5)

	r.dst.DrawRect(box, ' ', core.ColorDefault)
	r.dst.DrawBox(box, c)
	r.dst.DrawTextCentered(box.Y+1, line1, c)
	r.dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

// cellOrigin maps a grid cell to the screen position of its left half.
func cellOrigin(board core.Rect, row, col int) (int, int) {
	return board.X + 1 + col*cellWidth, board.Y + 1 + row
}
