package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction BookmarkType = "extinction"
	BookmarkTakeover   BookmarkType = "takeover"
	BookmarkCrash      BookmarkType = "population_crash"
)

// Bookmark marks an automatically detected moment worth revisiting in the
// telemetry output.
type Bookmark struct {
	Type        BookmarkType
	Tick        int64
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkCSV flattens a bookmark for CSV output.
type BookmarkCSV struct {
	Tick        int64  `csv:"tick"`
	Type        string `csv:"type"`
	Description string `csv:"description"`
}

// ToCSV converts the bookmark to its CSV record.
func (b Bookmark) ToCSV() BookmarkCSV {
	return BookmarkCSV{
		Tick:        b.Tick,
		Type:        string(b.Type),
		Description: b.Description,
	}
}

// BookmarkDetector watches the WindowStats stream for extinctions, code
// takeovers, and population crashes.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyLen  int

	takeoverShare float64
	crashFraction float64

	// Hysteresis so a lingering condition flags once, not every window
	takeoverActive bool
	crashActive    bool
}

// NewBookmarkDetector creates a detector with the given history size and
// thresholds.
func NewBookmarkDetector(historySize int, takeoverShare, crashFraction float64) *BookmarkDetector {
	if historySize < 2 {
		historySize = 2
	}
	return &BookmarkDetector{
		history:       make([]WindowStats, historySize),
		historySize:   historySize,
		takeoverShare: takeoverShare,
		crashFraction: crashFraction,
	}
}

// Check analyzes the latest stats against history and returns any
// triggered bookmarks, then adds the stats to history.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var marks []Bookmark

	if bd.historyLen > 0 {
		prev := bd.last()

		if stats.PopulationsAlive < prev.PopulationsAlive {
			marks = append(marks, Bookmark{
				Type: BookmarkExtinction,
				Tick: stats.WindowEndTick,
				Description: fmt.Sprintf("populations alive fell from %d to %d",
					prev.PopulationsAlive, stats.PopulationsAlive),
			})
		}

		if b := bd.checkTakeover(stats); b != nil {
			marks = append(marks, *b)
		}

		if b := bd.checkCrash(stats); b != nil {
			marks = append(marks, *b)
		}
	}

	bd.push(stats)
	return marks
}

// checkTakeover flags a code crossing the dominance threshold.
func (bd *BookmarkDetector) checkTakeover(stats WindowStats) *Bookmark {
	if stats.Pixels == 0 {
		bd.takeoverActive = false
		return nil
	}
	if stats.TopCodeShare < bd.takeoverShare {
		bd.takeoverActive = false
		return nil
	}
	if bd.takeoverActive {
		return nil
	}
	bd.takeoverActive = true
	return &Bookmark{
		Type: BookmarkTakeover,
		Tick: stats.WindowEndTick,
		Description: fmt.Sprintf("code %s holds %.0f%% of the dish",
			stats.TopCode, stats.TopCodeShare*100),
	}
}

// checkCrash flags a fall below the crash fraction of the recent peak.
func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	peak := 0
	for i := 0; i < bd.historyLen; i++ {
		if p := bd.history[i].Pixels; p > peak {
			peak = p
		}
	}
	if peak == 0 {
		return nil
	}
	floor := float64(peak) * (1 - bd.crashFraction)
	if float64(stats.Pixels) >= floor {
		bd.crashActive = false
		return nil
	}
	if bd.crashActive {
		return nil
	}
	bd.crashActive = true
	return &Bookmark{
		Type: BookmarkCrash,
		Tick: stats.WindowEndTick,
		Description: fmt.Sprintf("population fell from peak %d to %d",
			peak, stats.Pixels),
	}
}

func (bd *BookmarkDetector) push(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyLen < bd.historySize {
		bd.historyLen++
	}
}

func (bd *BookmarkDetector) last() WindowStats {
	idx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[idx]
}
