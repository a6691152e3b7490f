// Package core provides the platform-neutral pieces a game needs: the
// screen buffer, input frames, layout geometry and the Game contract.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Point is a screen coordinate in character cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned area on screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grid lays out Rows x Cols equally sized cells starting at Origin.
// Adjacent cells are separated by Gap columns horizontally.
type Grid struct {
	Origin Point
	Rows   int
	Cols   int
	CellW  int
	CellH  int
	Gap    int
}

// Bounds returns the area covered by the grid.
func (g Grid) Bounds() Rect {
	w := g.Cols*g.CellW + max(g.Cols-1, 0)*g.Gap
	return NewRect(g.Origin.X, g.Origin.Y, w, g.Rows*g.CellH)
}

// Cell returns the screen area of the cell at (row, col).
func (g Grid) Cell(row, col int) Rect {
	return NewRect(
		g.Origin.X+col*(g.CellW+g.Gap),
		g.Origin.Y+row*g.CellH,
		g.CellW,
		g.CellH,
	)
}

// At returns the cell under screen position (x, y). Clicks on the gap
// between cells miss.
func (g Grid) At(x, y int) (row, col int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 || !g.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	dx, dy := x-g.Origin.X, y-g.Origin.Y
	stride := g.CellW + g.Gap
	col, row = dx/stride, dy/g.CellH
	if dx%stride >= g.CellW {
		return 0, 0, false
	}
	return row, col, true
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
