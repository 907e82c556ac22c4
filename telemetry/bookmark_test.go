package telemetry

import "testing"

func statsWindow(end int64, pixels, alive int, topShare float64) WindowStats {
	return WindowStats{
		WindowEndTick:    end,
		Pixels:           pixels,
		PopulationsAlive: alive,
		TopCode:          "AAH",
		TopCodeShare:     topShare,
	}
}

func hasBookmark(marks []Bookmark, typ BookmarkType) bool {
	for _, b := range marks {
		if b.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkExtinction(t *testing.T) {
	bd := NewBookmarkDetector(5, 0.9, 0.5)

	if marks := bd.Check(statsWindow(100, 50, 3, 0.4)); len(marks) != 0 {
		t.Errorf("first window produced bookmarks: %v", marks)
	}
	marks := bd.Check(statsWindow(200, 40, 2, 0.4))
	if !hasBookmark(marks, BookmarkExtinction) {
		t.Errorf("population drop 3 to 2 produced %v, want an extinction", marks)
	}
	// Steady count does not re-trigger.
	if marks := bd.Check(statsWindow(300, 40, 2, 0.4)); hasBookmark(marks, BookmarkExtinction) {
		t.Error("steady populations flagged an extinction")
	}
}

func TestBookmarkTakeoverHysteresis(t *testing.T) {
	bd := NewBookmarkDetector(5, 0.9, 0.5)
	bd.Check(statsWindow(100, 50, 2, 0.5))

	marks := bd.Check(statsWindow(200, 50, 2, 0.95))
	if !hasBookmark(marks, BookmarkTakeover) {
		t.Errorf("share 0.95 produced %v, want a takeover", marks)
	}
	// Lingering above the threshold stays quiet.
	if marks := bd.Check(statsWindow(300, 50, 2, 0.97)); hasBookmark(marks, BookmarkTakeover) {
		t.Error("persistent dominance flagged twice")
	}
	// Drop below, then cross again: flags again.
	bd.Check(statsWindow(400, 50, 2, 0.5))
	marks = bd.Check(statsWindow(500, 50, 2, 0.95))
	if !hasBookmark(marks, BookmarkTakeover) {
		t.Error("second takeover after a reset was not flagged")
	}
}

func TestBookmarkCrash(t *testing.T) {
	bd := NewBookmarkDetector(5, 0.9, 0.5)
	bd.Check(statsWindow(100, 100, 2, 0.4))
	bd.Check(statsWindow(200, 90, 2, 0.4))

	marks := bd.Check(statsWindow(300, 40, 2, 0.4))
	if !hasBookmark(marks, BookmarkCrash) {
		t.Errorf("fall from peak 100 to 40 produced %v, want a crash", marks)
	}
	// Still below the floor: hysteresis holds.
	if marks := bd.Check(statsWindow(400, 35, 2, 0.4)); hasBookmark(marks, BookmarkCrash) {
		t.Error("ongoing crash flagged twice")
	}
}

func TestBookmarkEmptyDish(t *testing.T) {
	bd := NewBookmarkDetector(5, 0.9, 0.5)
	bd.Check(statsWindow(100, 0, 0, 0))
	if marks := bd.Check(statsWindow(200, 0, 0, 0)); len(marks) != 0 {
		t.Errorf("empty dish produced bookmarks: %v", marks)
	}
}
