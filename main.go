package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int64("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config echo")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:             rngSeed,
		Headless:         *headless,
		StepsPerUpdate:   *stepsPerUpdate,
		LogStats:         *logStats,
		StatsWindowTicks: *statsWindow,
		OutputDir:        *outputDir,
	}

	slog.Info("starting",
		"headless", *headless,
		"seed", rngSeed,
		"grid_side", cfg.Grid.Side,
		"populations", cfg.Seed.Populations,
		"pixels_per_population", cfg.Seed.PixelsPerPopulation,
		"genes_per_pixel", cfg.Seed.GenesPerPixel,
		"mutation_chance", cfg.Mutation.Chance,
		"max_ticks", *maxTicks,
	)

	if *headless {
		g := game.NewGame(opts)
		defer g.Unload()

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && g.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
			if g.Count() == 0 {
				slog.Info("dish died out", "tick", g.Tick())
				return
			}
		}
	}

	rl.InitWindow(cfg.Derived.WindowW, cfg.Derived.WindowH, "petri")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= *maxTicks {
			break
		}
	}
}
