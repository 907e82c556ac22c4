package telemetry

import "testing"

func TestBattleLogNewestFirst(t *testing.T) {
	l := NewBattleLog(10)
	l.Record("AAH", "DDH")
	l.Record("SSH", "AAH")

	recent := l.Recent()
	if len(recent) != 2 {
		t.Fatalf("Len = %d, want 2", len(recent))
	}
	if recent[0].WinnerCode != "SSH" || recent[0].LoserCode != "AAH" {
		t.Errorf("recent[0] = %+v, want SSH beats AAH", recent[0])
	}
	if recent[1].WinnerCode != "AAH" || recent[1].LoserCode != "DDH" {
		t.Errorf("recent[1] = %+v, want AAH beats DDH", recent[1])
	}
}

func TestBattleLogCapsAtLimit(t *testing.T) {
	l := NewBattleLog(3)
	for i := 0; i < 5; i++ {
		l.Record(string(rune('a'+i)), "x")
	}

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	// The two oldest entries fell off the back.
	want := []string{"e", "d", "c"}
	for i, rec := range l.Recent() {
		if rec.WinnerCode != want[i] {
			t.Errorf("recent[%d].WinnerCode = %q, want %q", i, rec.WinnerCode, want[i])
		}
	}
}

func TestBattleLogMinimumLimit(t *testing.T) {
	l := NewBattleLog(0)
	l.Record("a", "b")
	l.Record("c", "d")
	if l.Len() != 1 || l.Recent()[0].WinnerCode != "c" {
		t.Errorf("zero-limit log kept %d records, want the latest one", l.Len())
	}
}
