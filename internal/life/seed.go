package life

import "cgol/internal/core"

// The startup board: a small spaceship, a blinker and a glider. Offsets are
// relative to each pattern's top-left anchor.
var (
	spaceship = [][2]int{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {0, 1}, {4, 1}, {4, 2}, {3, 3}}
	blinker   = [][2]int{{0, 0}, {0, 1}, {0, 2}}
	glider    = [][2]int{{2, 0}, {0, 1}, {2, 1}, {1, 2}, {2, 2}}
)

// Seed places the default demo patterns onto the grid. Cells that would fall
// outside a small grid are skipped.
func Seed(g *core.Grid) {
	place(g, spaceship, 39, 12)
	place(g, blinker, 10, 6)
	place(g, glider, 38, 20)
}

func place(g *core.Grid, cells [][2]int, ox, oy int) {
	for _, c := range cells {
		x, y := ox+c[0], oy+c[1]
		if g.Contains(x, y) {
			g.Set(x, y, core.Alive)
		}
	}
}

// Soup fills the grid with a random soup of the given live-cell density,
// replacing all existing state.
func Soup(g *core.Grid, rng *core.RNG, density float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = core.Dead
		if rng.Chance(density) {
			cells[i] = core.Alive
		}
	}
}
