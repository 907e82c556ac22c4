package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Grid.Side <= 0 || cfg.Grid.CellSize <= 0 {
		t.Errorf("grid defaults = %d x %d cells, want positive", cfg.Grid.Side, cfg.Grid.CellSize)
	}
	if cfg.Telemetry.BattleLog != 20 {
		t.Errorf("battle_log default = %d, want 20", cfg.Telemetry.BattleLog)
	}
	wantW := int32(cfg.Grid.Side*cfg.Grid.CellSize + cfg.Screen.SidebarWidth)
	if cfg.Derived.WindowW != wantW {
		t.Errorf("Derived.WindowW = %d, want %d", cfg.Derived.WindowW, wantW)
	}
}

func TestLoadOverrideKeepsUnspecified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  side: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	if cfg.Grid.Side != 10 {
		t.Errorf("Grid.Side = %d, want override 10", cfg.Grid.Side)
	}
	if cfg.Grid.CellSize != 7 {
		t.Errorf("Grid.CellSize = %d, want default 7 preserved", cfg.Grid.CellSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing file succeeded, want error")
	}
}
