package telemetry

import "testing"

func TestHallOfFameRanksByWins(t *testing.T) {
	h := NewHallOfFame(10)
	h.RecordWin("AAH")
	h.RecordWin("AAH")
	h.RecordWin("DDH")
	h.RecordLoss("DDH")
	h.RecordLoss("SSH")

	top := h.Top()
	if len(top) != 3 {
		t.Fatalf("Top() returned %d records, want 3", len(top))
	}
	if top[0].Code != "AAH" || top[0].Wins != 2 {
		t.Errorf("top[0] = %+v, want AAH with 2 wins", top[0])
	}
	if top[1].Code != "DDH" || top[1].Wins != 1 || top[1].Losses != 1 {
		t.Errorf("top[1] = %+v, want DDH 1W 1L", top[1])
	}
	if top[2].Code != "SSH" || top[2].Wins != 0 || top[2].Losses != 1 {
		t.Errorf("top[2] = %+v, want SSH 0W 1L", top[2])
	}
}

func TestHallOfFameTieOrder(t *testing.T) {
	h := NewHallOfFame(10)
	h.RecordWin("B")
	h.RecordWin("A")
	h.RecordWin("C")
	h.RecordLoss("C")

	top := h.Top()
	// Equal wins: fewer losses first, then lexical.
	want := []string{"A", "B", "C"}
	for i, code := range want {
		if top[i].Code != code {
			t.Errorf("top[%d].Code = %q, want %q", i, top[i].Code, code)
		}
	}
}

func TestHallOfFameTruncatesToSize(t *testing.T) {
	h := NewHallOfFame(2)
	h.RecordWin("A")
	h.RecordWin("B")
	h.RecordWin("C")

	if len(h.Top()) != 2 {
		t.Errorf("Top() returned %d records, want 2", len(h.Top()))
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3 (all codes tracked, display capped)", h.Len())
	}
}
