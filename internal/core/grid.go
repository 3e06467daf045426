package core

import "github.com/pkg/errors"

// State is the value of a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = 0
	// Alive marks a live cell.
	Alive State = 1
)

// ErrOutOfBounds reports a coordinate outside the grid rectangle.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// Grid stores one generation of cell states in row-major order.
type Grid struct {
	W, H  int
	cells []State
}

// NewGrid allocates an all-Dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]State, w*h)}
}

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the state at (x, y). Coordinates outside the grid fail with
// ErrOutOfBounds; there is no wrapping.
func (g *Grid) At(x, y int) (State, error) {
	if !g.Contains(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "at (%d,%d) in %dx%d", x, y, g.W, g.H)
	}
	return g.cells[y*g.W+x], nil
}

// Set writes the state at (x, y) under the same bounds contract as At.
func (g *Grid) Set(x, y int, s State) error {
	if !g.Contains(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "set (%d,%d) in %dx%d", x, y, g.W, g.H)
	}
	g.cells[y*g.W+x] = s
	return nil
}

// ForEach visits every cell in row-major order. The traversal is
// deterministic and may be restarted any number of times.
func (g *Grid) ForEach(fn func(x, y int, s State)) {
	for y := 0; y < g.H; y++ {
		row := g.cells[y*g.W : (y+1)*g.W]
		for x, s := range row {
			fn(x, y, s)
		}
	}
}

// Cells exposes the backing slice so the renderer can blit values directly.
func (g *Grid) Cells() []State { return g.cells }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.cells, g.cells)
	return c
}

// Clear fills the grid with Dead cells.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}
