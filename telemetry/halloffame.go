package telemetry

import "sort"

// CodeRecord tallies duel outcomes for one gene code.
type CodeRecord struct {
	Code   string
	Wins   int
	Losses int
}

// HallOfFame ranks gene codes by duel victories. Codes accumulate across
// the whole run, so extinct lines keep their standing.
type HallOfFame struct {
	records map[string]*CodeRecord
	size    int
}

// NewHallOfFame creates a hall showing up to size codes.
func NewHallOfFame(size int) *HallOfFame {
	if size < 1 {
		size = 1
	}
	return &HallOfFame{
		records: make(map[string]*CodeRecord),
		size:    size,
	}
}

// RecordWin credits a code with a duel victory.
func (h *HallOfFame) RecordWin(code string) {
	h.record(code).Wins++
}

// RecordLoss debits a code with a duel defeat.
func (h *HallOfFame) RecordLoss(code string) {
	h.record(code).Losses++
}

func (h *HallOfFame) record(code string) *CodeRecord {
	r := h.records[code]
	if r == nil {
		r = &CodeRecord{Code: code}
		h.records[code] = r
	}
	return r
}

// Top returns the leading codes by wins, best first, at most the hall's
// display size. Ties order by fewer losses, then lexically, so the board
// is stable between frames.
func (h *HallOfFame) Top() []CodeRecord {
	all := make([]CodeRecord, 0, len(h.records))
	for _, r := range h.records {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Wins != all[j].Wins {
			return all[i].Wins > all[j].Wins
		}
		if all[i].Losses != all[j].Losses {
			return all[i].Losses < all[j].Losses
		}
		return all[i].Code < all[j].Code
	})
	if len(all) > h.size {
		all = all[:h.size]
	}
	return all
}

// Len returns the number of codes with any recorded duel.
func (h *HallOfFame) Len() int {
	return len(h.records)
}
