// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Seed      SeedConfig      `yaml:"seed"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Timing    TimingConfig    `yaml:"timing"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bookmarks BookmarksConfig `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	SidebarWidth int `yaml:"sidebar_width"` // HUD/panel column right of the dish
	TargetFPS    int `yaml:"target_fps"`
}

// GridConfig holds the dish dimensions.
type GridConfig struct {
	Side     int `yaml:"side"`      // cells per edge of the square grid
	CellSize int `yaml:"cell_size"` // rendered pixels per cell
}

// SeedConfig holds initial population parameters.
type SeedConfig struct {
	Populations         int `yaml:"populations"`
	PixelsPerPopulation int `yaml:"pixels_per_population"`
	GenesPerPixel       int `yaml:"genes_per_pixel"`
}

// MutationConfig holds reproduction mutation parameters.
type MutationConfig struct {
	Chance float64 `yaml:"chance"` // probability an offspring mutates
}

// TimingConfig holds simulation pacing parameters.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // wall-clock interval between ticks in the viewer
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"` // ticks per stats window
	BattleLog   int `yaml:"battle_log"`   // duel records retained for display
	HallOfFame  int `yaml:"hall_of_fame"` // gene codes ranked by victories
}

// BookmarksConfig holds automatic bookmark thresholds.
type BookmarksConfig struct {
	TakeoverShare float64 `yaml:"takeover_share"` // top code share that flags a takeover
	CrashFraction float64 `yaml:"crash_fraction"` // drop from recent peak that flags a crash
	History       int     `yaml:"history"`        // stats windows kept for detection
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	DishPx       int32 // Grid.Side * Grid.CellSize
	WindowW      int32
	WindowH      int32
	TickInterval float32 // seconds between ticks in the viewer
}

var global *Config

// Init loads configuration from the given path (or defaults if empty) and
// installs it globally.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is Init that panics on error, for use in main.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global config. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load reads configuration: embedded defaults first, then the user file
// layered on top when a path is given.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	dish := int32(c.Grid.Side * c.Grid.CellSize)
	c.Derived.DishPx = dish
	c.Derived.WindowW = dish + int32(c.Screen.SidebarWidth)
	c.Derived.WindowH = dish
	if c.Derived.WindowH < 480 {
		c.Derived.WindowH = 480
	}
	c.Derived.TickInterval = float32(c.Timing.TickMS) / 1000
}

// WriteYAML saves the config to a file (used to echo experiment settings).
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
