package game

import (
	"log/slog"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/genes"
)

// seedAttempts bounds the random placement search per pixel: first near the
// population anchor, then anywhere on the grid.
const (
	seedNearAttempts = 40
	seedWideAttempts = 400
)

// seedPopulations places the founder populations, each as a loose cluster
// around its own random anchor.
func (g *Game) seedPopulations() {
	cfg := config.Cfg()
	side := cfg.Grid.Side
	radius := side / 6
	if radius < 2 {
		radius = 2
	}

	perPop := make([]int, cfg.Seed.Populations)
	for p := 0; p < cfg.Seed.Populations; p++ {
		ax := g.state.RNG.Intn(side)
		ay := g.state.RNG.Intn(side)

		for i := 0; i < cfg.Seed.PixelsPerPopulation; i++ {
			gv := genes.Random(g.state.RNG, cfg.Seed.GenesPerPixel)
			if g.placeFounder(ax, ay, radius, gv, uint8(p)) {
				perPop[p]++
			}
		}
	}

	total := 0
	for _, n := range perPop {
		total += n
	}
	slog.Info("seeded",
		"populations", cfg.Seed.Populations,
		"pixels", total,
		"per_population", perPop,
		"grid_side", side,
		"seed", g.seed,
	)
}

// placeFounder spawns one founder pixel near the anchor, falling back to
// anywhere free. Reports false when no free cell turned up; an overcrowded
// grid is a config problem, not a fatal one.
func (g *Game) placeFounder(ax, ay, radius int, gv genes.Genes, pop uint8) bool {
	rng := g.state.RNG

	for try := 0; try < seedNearAttempts; try++ {
		x := ax + rng.Intn(2*radius+1) - radius
		y := ay + rng.Intn(2*radius+1) - radius
		if _, ok := g.state.Spawn(x, y, gv, pop, 0); ok {
			return true
		}
	}

	side := g.state.Grid.Side()
	for try := 0; try < seedWideAttempts; try++ {
		if _, ok := g.state.Spawn(rng.Intn(side), rng.Intn(side), gv, pop, 0); ok {
			return true
		}
	}
	return false
}
