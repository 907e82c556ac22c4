package systems

import (
	"testing"

	"github.com/pthm-cable/petri/genes"
)

func TestSpawnOffspringPlacement(t *testing.T) {
	s := newTestState(9, 0, 6, nil)
	parent := genes.Genes{3, 1, 2, 2}
	pid, _ := s.Spawn(4, 4, parent, 5, 0)

	for i := 0; i < 12; i++ {
		cid, ok := SpawnOffspring(s, pid)
		if !ok {
			t.Fatalf("birth %d failed with free cells remaining", i+1)
		}
		ce, _ := s.Entity(cid)
		cpos := s.Pos.Get(ce)
		dist := abs(cpos.X-4) + abs(cpos.Y-4)
		if dist < 1 || dist > 2 {
			t.Errorf("offspring %d at (%d,%d), distance %d, want 1 or 2", cid, cpos.X, cpos.Y, dist)
		}
		if got := s.Geno.Get(ce).Genes; got != parent {
			t.Errorf("offspring genes = %v with zero mutation chance, want %v", got, parent)
		}
		if got := s.Pix.Get(ce).Population; got != 5 {
			t.Errorf("offspring population = %d, want 5", got)
		}
	}

	// All twelve candidate cells are now taken.
	if _, ok := SpawnOffspring(s, pid); ok {
		t.Error("thirteenth birth succeeded with the neighborhood full")
	}
	if s.Count() != 13 {
		t.Errorf("Count() = %d, want parent plus 12 children", s.Count())
	}
	checkConsistency(t, s)
}

func TestSpawnOffspringBlockedNeighborhood(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(5, 0, 1, rec)

	pid, _ := s.Spawn(2, 2, genes.Genes{1, 1, 1, 1}, 0, 0)
	blocker := genes.Genes{0, 0, 0, 2}
	for _, off := range [][2]int{
		{0, -2}, {-1, -1}, {0, -1}, {1, -1},
		{-2, 0}, {-1, 0}, {1, 0}, {2, 0},
		{-1, 1}, {0, 1}, {1, 1}, {0, 2},
	} {
		if _, ok := s.Spawn(2+off[0], 2+off[1], blocker, 1, 0); !ok {
			t.Fatalf("failed to block (%d,%d)", 2+off[0], 2+off[1])
		}
	}
	before := s.Count()
	births := len(rec.births)

	if id, ok := SpawnOffspring(s, pid); ok || id != 0 {
		t.Errorf("SpawnOffspring() = (%d, %v) with a full neighborhood, want (0, false)", id, ok)
	}
	if s.Count() != before {
		t.Errorf("Count() = %d after blocked birth, want %d", s.Count(), before)
	}
	if len(rec.births) != births {
		t.Error("blocked birth emitted an event")
	}
	checkConsistency(t, s)
}

func TestSpawnOffspringEdgeParent(t *testing.T) {
	s := newTestState(3, 0, 8, nil)
	pid, _ := s.Spawn(0, 0, genes.Genes{1, 0, 1, 1}, 0, 0)

	// Corner parents still have five legal candidates.
	for i := 0; i < 5; i++ {
		if _, ok := SpawnOffspring(s, pid); !ok {
			t.Fatalf("birth %d from the corner failed", i+1)
		}
	}
	if _, ok := SpawnOffspring(s, pid); ok {
		t.Error("birth succeeded with every corner candidate taken")
	}
	checkConsistency(t, s)
}

func TestSpawnOffspringStaleParent(t *testing.T) {
	s := newTestState(5, 0, 1, nil)
	if id, ok := SpawnOffspring(s, 77); ok || id != 0 {
		t.Errorf("SpawnOffspring(stale) = (%d, %v), want (0, false)", id, ok)
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d after stale birth, want 0", s.Count())
	}
}

func TestSpawnOffspringMutates(t *testing.T) {
	s := newTestState(9, 1.0, 13, nil)
	parent := genes.Genes{2, 2, 2, 2}
	pid, _ := s.Spawn(4, 4, parent, 0, 0)

	cid, ok := SpawnOffspring(s, pid)
	if !ok {
		t.Fatal("birth failed on an open grid")
	}
	ce, _ := s.Entity(cid)
	child := s.Geno.Get(ce).Genes
	if child == parent {
		t.Error("offspring genes unchanged despite certain mutation")
	}
	if child.Sum() != parent.Sum() {
		t.Errorf("offspring gene sum = %d, want %d", child.Sum(), parent.Sum())
	}
	if child[genes.HP] < 1 {
		t.Errorf("offspring hp = %d, want >= 1", child[genes.HP])
	}
}
