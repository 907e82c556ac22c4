package game

import (
	"log/slog"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/telemetry"
)

// flushTelemetry closes the stats window when due, writes the row, and
// checks for bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())

	if g.statsFunc != nil {
		g.statsFunc(stats)
	}
	if g.logStats {
		stats.LogStats()
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		bm.LogBookmark()
		if err := g.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// samplePopulation reads the live population for a stats window.
func (g *Game) samplePopulation() telemetry.Sample {
	cfg := config.Cfg()
	side := g.state.Grid.Side()
	sample := telemetry.Sample{
		GridCells: side * side,
		PopCounts: make([]int, cfg.Seed.Populations),
	}

	g.sampleIDs = g.state.IDs(g.sampleIDs[:0])
	for _, id := range g.sampleIDs {
		e, ok := g.state.Entity(id)
		if !ok {
			continue
		}
		geno := g.state.Geno.Get(e)
		pix := g.state.Pix.Get(e)

		sample.Vectors = append(sample.Vectors, geno.Genes)
		sample.Codes = append(sample.Codes, geno.Code)
		if int(pix.Population) < len(sample.PopCounts) {
			sample.PopCounts[pix.Population]++
		}
	}

	sample.Ages = g.lifetimes.Ages(nil, g.tick)
	return sample
}
