package game

import "log/slog"

// logRunSummary logs the final state of a run.
func (g *Game) logRunSummary() {
	codes := make(map[string]struct{}, 64)
	g.sampleIDs = g.state.IDs(g.sampleIDs[:0])
	for _, id := range g.sampleIDs {
		if e, ok := g.state.Entity(id); ok {
			codes[g.state.Geno.Get(e).Code] = struct{}{}
		}
	}

	slog.Info("run complete",
		"tick", g.tick,
		"pixels", g.state.Count(),
		"distinct_codes", len(codes),
		"seed", g.seed,
		"output_dir", g.output.Dir(),
	)
}
