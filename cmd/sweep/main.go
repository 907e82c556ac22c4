// Mutation-chance sweep: runs headless simulations across a grid of
// mutation chances and seeds, then summarizes how diversity and takeover
// speed respond.
//
// Usage: go run ./cmd/sweep --output results/sweep
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
	"github.com/pthm-cable/petri/telemetry"
)

// RunRow is one completed run in sweep.csv.
type RunRow struct {
	MutationChance float64 `csv:"mutation_chance"`
	Seed           int64   `csv:"seed"`
	EndTick        int64   `csv:"end_tick"`
	Pixels         int     `csv:"pixels"`
	DistinctCodes  int     `csv:"distinct_codes"`
	TopCodeShare   float64 `csv:"top_code_share"`
	TakeoverTick   int64   `csv:"takeover_tick"`
	Duels          int     `csv:"duels"`
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int64("max-ticks", 20000, "Ticks per run")
	seeds := flag.Int("seeds", 3, "Seeds per mutation chance")
	chancesFlag := flag.String("chances", "0.05,0.1,0.25,0.5", "Comma-separated mutation chances to sweep")
	outputDir := flag.String("output", "", "Output directory for sweep.csv")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	chances, err := parseChances(*chancesFlag)
	if err != nil {
		log.Fatalf("bad --chances: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	fmt.Printf("Sweeping %d mutation chances x %d seeds, %d ticks each\n",
		len(chances), *seeds, *maxTicks)

	var rows []RunRow
	start := time.Now()

	for _, chance := range chances {
		// The config is process-global; each run reads the chance at
		// game construction, so rewriting between runs is safe.
		cfg.Mutation.Chance = chance

		for i := 0; i < *seeds; i++ {
			seed := int64(i*1000 + 42)
			rows = append(rows, runOne(chance, seed, *maxTicks))
			fmt.Printf("  chance=%.2f seed=%d done (%s elapsed)\n",
				chance, seed, time.Since(start).Round(time.Second))
		}
	}

	outPath := filepath.Join(*outputDir, "sweep.csv")
	if err := writeRows(rows, outPath); err != nil {
		log.Fatalf("failed to write %s: %v", outPath, err)
	}

	fmt.Printf("\nPer-chance summary (%d seeds each):\n", *seeds)
	for _, chance := range chances {
		diversity, takeovers := summarize(rows, chance)
		mean, std := stat.MeanStdDev(diversity, nil)
		fmt.Printf("  chance=%.2f  distinct codes %.1f +/- %.1f  takeovers %d/%d\n",
			chance, mean, std, takeovers, *seeds)
	}
	fmt.Printf("\nResults written to %s\n", outPath)
}

// runOne runs a single headless simulation and distills it into a row.
func runOne(chance float64, seed, maxTicks int64) RunRow {
	row := RunRow{MutationChance: chance, Seed: seed}

	var last telemetry.WindowStats
	takeoverShare := config.Cfg().Bookmarks.TakeoverShare

	g := game.NewGame(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 64,
		StatsFunc: func(s telemetry.WindowStats) {
			last = s
			row.Duels += s.Duels
			if row.TakeoverTick == 0 && s.Pixels > 0 && s.TopCodeShare >= takeoverShare {
				row.TakeoverTick = s.WindowEndTick
			}
		},
	})
	defer g.Unload()

	for g.Tick() < maxTicks && g.Count() > 0 {
		g.UpdateHeadless()
	}

	row.EndTick = g.Tick()
	row.Pixels = g.Count()
	row.DistinctCodes = last.DistinctCodes
	row.TopCodeShare = last.TopCodeShare
	return row
}

// summarize extracts the across-seed diversity samples and takeover count
// for one chance.
func summarize(rows []RunRow, chance float64) (diversity []float64, takeovers int) {
	for _, r := range rows {
		if r.MutationChance != chance {
			continue
		}
		diversity = append(diversity, float64(r.DistinctCodes))
		if r.TakeoverTick > 0 {
			takeovers++
		}
	}
	return diversity, takeovers
}

func writeRows(rows []RunRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.Marshal(rows, f)
}

func parseChances(s string) ([]float64, error) {
	var chances []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("chance %v outside [0, 1]", v)
		}
		chances = append(chances, v)
	}
	return chances, nil
}
