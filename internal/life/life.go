// Package life implements the Conway Game of Life rule on a finite,
// non-wrapping grid. Everything outside the grid rectangle counts as
// permanently Dead.
package life

import "cgol/internal/core"

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step computes the next generation. The input grid is never mutated; the
// result is a freshly allocated grid of the same dimensions, so a renderer
// reading the previous generation is never corrupted mid-step.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	cur := g.Cells()
	out := next.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := y*g.W + x
			if Next(cur[idx] == core.Alive, liveNeighbors(g, x, y)) {
				out[idx] = core.Alive
			}
		}
	}
	return next
}

// liveNeighbors counts the live cells of the Moore neighborhood. The scan
// window is clamped to the grid, which is what makes the border dead rather
// than toroidal.
func liveNeighbors(g *core.Grid, x, y int) int {
	minX := max(0, x-1)
	maxX := min(g.W-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.H-1, y+1)

	cells := g.Cells()
	n := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[ny*g.W+nx] == core.Alive {
				n++
			}
		}
	}
	return n
}
