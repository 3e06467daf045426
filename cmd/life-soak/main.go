// Command life-soak runs many random soups headlessly and reports how each
// one settles: extinction, a short cycle (still lifes are cycles of length
// 1), or neither within the step budget.
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"log"
	"runtime"

	"cgol/internal/core"
	"cgol/internal/life"

	"golang.org/x/sync/errgroup"
)

type soakResult struct {
	seed    int64
	outcome string
	// generation at which the outcome was detected
	settled int
	cycle   int
	peakPop int
}

func (r soakResult) String() string {
	switch r.outcome {
	case "cycle":
		return fmt.Sprintf("seed %d: cycle of length %d after %d generations (peak population %d)",
			r.seed, r.cycle, r.settled, r.peakPop)
	case "extinct":
		return fmt.Sprintf("seed %d: extinct after %d generations (peak population %d)",
			r.seed, r.settled, r.peakPop)
	default:
		return fmt.Sprintf("seed %d: still active after %d generations (peak population %d)",
			r.seed, r.settled, r.peakPop)
	}
}

func main() {
	runs := flag.Int("runs", 32, "number of soups to simulate")
	steps := flag.Int("steps", 2000, "step budget per soup")
	width := flag.Int("w", 50, "grid width in cells")
	height := flag.Int("h", 30, "grid height in cells")
	density := flag.Float64("density", 0.25, "initial live-cell density")
	seed := flag.Int64("seed", 1337, "base seed; run i uses seed+i")
	history := flag.Int("history", 64, "fingerprints kept for cycle detection")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent soups")
	flag.Parse()

	if *runs <= 0 || *steps <= 0 {
		log.Fatalf("runs (%d) and steps (%d) must be positive", *runs, *steps)
	}

	results := make([]soakResult, *runs)

	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i := 0; i < *runs; i++ {
		i := i
		eg.Go(func() error {
			results[i] = soak(*seed+int64(i), *width, *height, *density, *steps, *history)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	cycles, extinct, active := 0, 0, 0
	for _, r := range results {
		fmt.Println(r)
		switch r.outcome {
		case "cycle":
			cycles++
		case "extinct":
			extinct++
		default:
			active++
		}
	}
	fmt.Printf("\n%d soups: %d cycled, %d extinct, %d still active after %d steps\n",
		*runs, cycles, extinct, active, *steps)
}

func soak(seed int64, w, h int, density float64, steps, history int) soakResult {
	grid := core.NewGrid(w, h)
	life.Soup(grid, core.NewRNG(seed), density)

	res := soakResult{seed: seed, outcome: "active", peakPop: grid.Population()}
	seen := map[[md5.Size]byte]int{fingerprint(grid): 0}

	for gen := 1; gen <= steps; gen++ {
		grid = life.Step(grid)
		res.settled = gen

		if pop := grid.Population(); pop > res.peakPop {
			res.peakPop = pop
		} else if pop == 0 {
			res.outcome = "extinct"
			return res
		}

		fp := fingerprint(grid)
		if prev, ok := seen[fp]; ok {
			res.outcome = "cycle"
			res.cycle = gen - prev
			return res
		}
		seen[fp] = gen
		if len(seen) > history {
			// Drop the oldest entries; long transients would otherwise keep
			// every generation in memory.
			for k, v := range seen {
				if v <= gen-history {
					delete(seen, k)
				}
			}
		}
	}
	return res
}

func fingerprint(g *core.Grid) [md5.Size]byte {
	cells := g.Cells()
	buf := make([]byte, len(cells))
	for i, s := range cells {
		buf[i] = byte(s)
	}
	return md5.Sum(buf)
}
