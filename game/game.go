// Package game wires the simulation engine to config, telemetry, and the
// raylib viewer.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/petri/camera"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/inspector"
	"github.com/pthm-cable/petri/renderer"
	"github.com/pthm-cable/petri/systems"
	"github.com/pthm-cable/petri/telemetry"
	"github.com/pthm-cable/petri/ui"
)

// Options configures a run. Zero values defer to the loaded config.
type Options struct {
	Seed             int64
	Headless         bool
	StepsPerUpdate   int
	LogStats         bool
	StatsWindowTicks int64
	OutputDir        string

	// StatsFunc receives every flushed stats window (used by cmd/sweep).
	StatsFunc func(telemetry.WindowStats)
}

// Game owns one simulation run plus its telemetry and viewer surfaces.
type Game struct {
	state *systems.State
	seed  int64

	tick           int64
	paused         bool
	stepsPerUpdate int
	tickAccum      float32
	headless       bool

	collector  *telemetry.Collector
	battleLog  *telemetry.BattleLog
	lifetimes  *telemetry.LifetimeTracker
	hallOfFame *telemetry.HallOfFame
	bookmarks  *telemetry.BookmarkDetector
	output     *telemetry.OutputManager
	logStats   bool
	statsFunc  func(telemetry.WindowStats)

	// Viewer surfaces, nil in headless mode
	cam         *camera.Camera
	dish        *renderer.DishRenderer
	hud         *ui.HUD
	controls    *ui.ControlsPanel
	battlePanel *ui.BattleLogPanel
	famePanel   *ui.HallOfFamePanel
	insp        *inspector.Inspector

	screenW, screenH float32

	// Scratch buffers reused across frames and flushes
	renderIDs []uint64
	sampleIDs []uint64
}

// NewGame creates a seeded simulation with the current config.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()

	windowTicks := opts.StatsWindowTicks
	if windowTicks <= 0 {
		windowTicks = int64(cfg.Telemetry.WindowTicks)
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		seed:           opts.Seed,
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		collector:      telemetry.NewCollector(windowTicks),
		battleLog:      telemetry.NewBattleLog(cfg.Telemetry.BattleLog),
		lifetimes:      telemetry.NewLifetimeTracker(),
		hallOfFame:     telemetry.NewHallOfFame(cfg.Telemetry.HallOfFame),
		bookmarks: telemetry.NewBookmarkDetector(
			cfg.Bookmarks.History,
			cfg.Bookmarks.TakeoverShare,
			cfg.Bookmarks.CrashFraction,
		),
		logStats:  opts.LogStats,
		statsFunc: opts.StatsFunc,
	}

	g.state = systems.NewState(systems.Params{
		GridSide:       cfg.Grid.Side,
		GenesPerPixel:  cfg.Seed.GenesPerPixel,
		MutationChance: cfg.Mutation.Chance,
	}, rand.New(rand.NewSource(opts.Seed)), &eventRecorder{g: g})

	var err error
	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "error", err)
		g.output = nil
	}
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to echo config", "error", err)
	}

	g.seedPopulations()

	if !opts.Headless {
		g.initViewer(cfg)
	}

	return g
}

// initViewer builds the camera and sidebar panels. Requires an open window.
func (g *Game) initViewer(cfg *config.Config) {
	g.screenW = float32(cfg.Derived.WindowW)
	g.screenH = float32(cfg.Derived.WindowH)
	dishPx := float32(cfg.Derived.DishPx)
	viewW := g.screenW - float32(cfg.Screen.SidebarWidth)

	g.cam = camera.New(viewW, g.screenH, dishPx, dishPx)
	g.dish = renderer.NewDishRenderer(cfg.Grid.Side, float32(cfg.Grid.CellSize))

	sidebarX := int32(viewW) + 10
	panelW := int32(cfg.Screen.SidebarWidth) - 20
	g.hud = ui.NewHUD(sidebarX, 10, panelW)
	g.controls = ui.NewControlsPanel(sidebarX, 0, panelW)
	g.battlePanel = ui.NewBattleLogPanel(sidebarX, 0, panelW)
	g.famePanel = ui.NewHallOfFamePanel(sidebarX, 0, panelW)
	g.insp = inspector.NewInspector(int32(g.screenW), int32(g.screenH))
}

// Tick returns the number of completed simulation steps.
func (g *Game) Tick() int64 {
	return g.tick
}

// Count returns the live pixel count.
func (g *Game) Count() int {
	return g.state.Count()
}

// Paused reports whether ticking is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Unload flushes telemetry output and logs the run summary.
func (g *Game) Unload() {
	g.logRunSummary()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
