package core

import "fmt"

// Pos is a cell coordinate on the board.
// X increases to the right, Y increases downward (screen coordinates).
type Pos struct {
	X, Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid describes the board for one session: its size in cells and the
// size of a single cell in display units. It is never mutated after the
// session starts.
type Grid struct {
	Width    int // Board width in cells
	Height   int // Board height in cells
	CellSize int // Display units per cell
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds returns true if the position lies on the board.
func (g Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps any position onto the board using toroidal topology:
// leaving one edge re-enters from the opposite edge.
func (g Grid) Wrap(p Pos) Pos {
	if g.Width <= 0 || g.Height <= 0 {
		return p
	}
	return Pos{X: wrapAxis(p.X, g.Width), Y: wrapAxis(p.Y, g.Height)}
}

// Step returns the position offset by (dx, dy), wrapped onto the board.
func (g Grid) Step(p Pos, dx, dy int) Pos {
	return g.Wrap(Pos{X: p.X + dx, Y: p.Y + dy})
}

// Center returns the middle cell of the board.
func (g Grid) Center() Pos {
	return Pos{X: g.Width / 2, Y: g.Height / 2}
}

// Index converts a position to a row-major cell index.
func (g Grid) Index(p Pos) int {
	return p.Y*g.Width + p.X
}

// At converts a row-major cell index back to a position.
func (g Grid) At(index int) Pos {
	return Pos{X: index % g.Width, Y: index / g.Width}
}

// DisplaySize returns the board size in display units.
func (g Grid) DisplaySize() (w, h int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

// ToDisplay returns the centre of the cell in display units, relative to
// the centre of the board. Positive Y points down, like Pos.
func (g Grid) ToDisplay(p Pos) (x, y float64) {
	cell := float64(g.CellSize)
	halfW := float64(g.Width) * cell / 2
	halfH := float64(g.Height) * cell / 2
	return (float64(p.X)+0.5)*cell - halfW, (float64(p.Y)+0.5)*cell - halfH
}

// CellRect returns the rectangle covered by a cell when each cell is drawn
// as a cellW x cellH block starting at origin (ox, oy).
func (g Grid) CellRect(p Pos, ox, oy, cellW, cellH int) Rect {
	return NewRect(ox+p.X*cellW, oy+p.Y*cellH, cellW, cellH)
}

func wrapAxis(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
