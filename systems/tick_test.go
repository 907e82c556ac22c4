package systems

import (
	"testing"

	"github.com/pthm-cable/petri/genes"
)

func seedMixed(s *State) {
	vectors := []genes.Genes{
		{3, 0, 2, 3},
		{0, 3, 1, 4},
		{2, 2, 2, 2},
		{1, 1, 4, 2},
	}
	for p, g := range vectors {
		for i := 0; i < 5; i++ {
			x := (p*5 + i*3) % s.Grid.Side()
			y := (p*7 + i*5) % s.Grid.Side()
			s.Spawn(x, y, g, uint8(p), 0)
		}
	}
}

func TestTickKeepsWorldConsistent(t *testing.T) {
	s := newTestState(16, 0.15, 21, nil)
	seedMixed(s)

	for i := 0; i < 500; i++ {
		Tick(s)
		if s.Count() != s.Grid.Count() {
			t.Fatalf("tick %d: roster %d vs grid %d", i+1, s.Count(), s.Grid.Count())
		}
	}
	checkConsistency(t, s)
}

func TestTickReplaysUnderSameSeed(t *testing.T) {
	run := func() *State {
		s := newTestState(12, 0.2, 77, nil)
		seedMixed(s)
		for i := 0; i < 200; i++ {
			Tick(s)
		}
		return s
	}

	s1 := run()
	s2 := run()

	if s1.Count() != s2.Count() {
		t.Fatalf("runs diverged: %d vs %d pixels", s1.Count(), s2.Count())
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			id1, id2 := s1.Grid.At(x, y), s2.Grid.At(x, y)
			if id1 != id2 {
				t.Fatalf("cell (%d,%d) diverged: %d vs %d", x, y, id1, id2)
			}
			c1, ok1 := s1.CodeAt(x, y)
			c2, ok2 := s2.CodeAt(x, y)
			if c1 != c2 || ok1 != ok2 {
				t.Fatalf("cell (%d,%d) codes diverged: %q vs %q", x, y, c1, c2)
			}
		}
	}
}

func TestTickOnEmptyState(t *testing.T) {
	s := newTestState(4, 0, 1, nil)
	for i := 0; i < 10; i++ {
		Tick(s)
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d on an empty grid, want 0", s.Count())
	}
}

func TestTickPopulationNeverExceedsGrid(t *testing.T) {
	s := newTestState(6, 0.3, 33, nil)
	seedMixed(s)

	cells := 6 * 6
	for i := 0; i < 300; i++ {
		Tick(s)
		if s.Count() > cells {
			t.Fatalf("tick %d: %d pixels on %d cells", i+1, s.Count(), cells)
		}
	}
	checkConsistency(t, s)
}
