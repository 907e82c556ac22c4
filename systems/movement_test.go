package systems

import (
	"testing"

	"github.com/pthm-cable/petri/genes"
)

func TestStepOnSingleCellGrid(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(1, 0, 1, rec)
	id, _ := s.Spawn(0, 0, genes.Genes{2, 0, 4, 2}, 0, 0)

	// Every direction clamps back onto the only cell, so nothing can happen.
	for i := 0; i < 200; i++ {
		Step(s, id)
	}

	e, _ := s.Entity(id)
	pos := s.Pos.Get(e)
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("pixel moved to (%d,%d) on a 1x1 grid", pos.X, pos.Y)
	}
	if len(rec.duels) != 0 {
		t.Errorf("%d duels on a 1x1 grid, want 0", len(rec.duels))
	}
	checkConsistency(t, s)
}

func TestStepStaysInBounds(t *testing.T) {
	s := newTestState(3, 0, 7, nil)
	id, _ := s.Spawn(1, 1, genes.Genes{1, 0, 3, 1}, 0, 0)

	e, _ := s.Entity(id)
	for i := 0; i < 2000; i++ {
		Step(s, id)
		pos := s.Pos.Get(e)
		if !s.Grid.InBounds(pos.X, pos.Y) {
			t.Fatalf("pixel escaped to (%d,%d) after %d turns", pos.X, pos.Y, i+1)
		}
		if s.Grid.At(pos.X, pos.Y) != id {
			t.Fatalf("occupancy lost the pixel at (%d,%d)", pos.X, pos.Y)
		}
	}
}

func TestStepSameCodeNeverFights(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(2, 0, 3, rec)

	// Identical vectors share a code, so these two can only sidestep each
	// other forever.
	g := genes.Genes{2, 1, 2, 1}
	s.Spawn(0, 0, g, 0, 0)
	s.Spawn(1, 1, g, 1, 0)

	for i := 0; i < 500; i++ {
		Tick(s)
	}

	if len(rec.duels) != 0 {
		t.Errorf("%d duels between identical codes, want 0", len(rec.duels))
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want the same 2 pixels", s.Count())
	}
	checkConsistency(t, s)
}

func TestStepDifferentCodesFight(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(2, 0, 11, rec)

	s.Spawn(0, 0, genes.Genes{3, 0, 2, 1}, 0, 0)
	s.Spawn(1, 1, genes.Genes{0, 2, 1, 3}, 1, 0)

	// On a 2x2 grid two hostile pixels cannot avoid each other for long.
	for i := 0; i < 1000 && len(rec.duels) == 0; i++ {
		Tick(s)
	}

	if len(rec.duels) == 0 {
		t.Fatal("no duel in 1000 ticks on a 2x2 grid")
	}
	checkConsistency(t, s)
}

func TestStepTurnEndsAfterCombat(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(3, 0, 9, rec)

	// A fast pixel ringed by enemies: the first sub-step must start a duel
	// and the duel must end the whole turn.
	a, _ := s.Spawn(1, 1, genes.Genes{9, 0, 5, 3}, 0, 0)
	weak := genes.Genes{0, 0, 0, 1}
	for _, c := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		s.Spawn(c[0], c[1], weak, 1, 0)
	}

	Step(s, a)

	if len(rec.duels) != 1 {
		t.Errorf("%d duels in one turn, want exactly 1", len(rec.duels))
	}
	if len(rec.deaths) != 1 {
		t.Errorf("%d deaths in one turn, want exactly 1", len(rec.deaths))
	}
	checkConsistency(t, s)
}

func TestStepLosingMoverDies(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(2, 0, 4, rec)

	// The mover's only non-clamped targets hold a far stronger enemy, so
	// its first real sub-step is a losing duel.
	a, _ := s.Spawn(0, 0, genes.Genes{0, 0, 0, 1}, 0, 0)
	strong := genes.Genes{9, 0, 9, 9}
	s.Spawn(0, 1, strong, 1, 0)
	s.Spawn(1, 0, strong, 1, 0)
	s.Spawn(1, 1, strong, 1, 0)

	for i := 0; i < 200 && len(rec.duels) == 0; i++ {
		Step(s, a)
	}

	if len(rec.duels) == 0 {
		t.Fatal("no duel in 200 turns with enemies on every side")
	}
	if s.Alive(a) {
		t.Error("mover survived a hopeless duel")
	}
	if got := rec.duels[0][1]; got != "H" {
		t.Errorf("duel loser code = %q, want %q", got, "H")
	}
	checkConsistency(t, s)
}

func TestStepWinnerTakesContestedCell(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestState(5, 0, 2, rec)

	a, _ := s.Spawn(2, 2, genes.Genes{9, 0, 1, 5}, 0, 0)
	b, _ := s.Spawn(2, 1, genes.Genes{0, 0, 1, 1}, 1, 0)

	// Only the strong pixel acts; the weak one sits until found.
	for i := 0; i < 500 && len(rec.duels) == 0; i++ {
		Step(s, a)
	}

	if len(rec.duels) == 0 {
		t.Fatal("no duel in 500 turns against a stationary enemy")
	}
	if s.Alive(b) {
		t.Error("loser still alive")
	}
	// The freed cell never stays empty: the winner advances into it unless
	// its own offspring got there first.
	if got := s.Grid.At(2, 1); got == 0 || got == b {
		t.Errorf("contested cell holds %d, want winner or offspring", got)
	}
	checkConsistency(t, s)
}

func TestStepStaleIDIsANoOp(t *testing.T) {
	s := newTestState(2, 0, 1, nil)
	s.Spawn(0, 0, genes.Genes{1, 0, 1, 1}, 0, 0)

	Step(s, 42)

	if s.Count() != 1 {
		t.Errorf("Count() = %d after stepping a stale id, want 1", s.Count())
	}
	checkConsistency(t, s)
}
