package telemetry

// DuelRecord is one resolved duel, identified by the two gene codes.
type DuelRecord struct {
	WinnerCode string
	LoserCode  string
}

// BattleLog retains the most recent duels for display, newest first. The
// engine reports every duel; only this view is capped.
type BattleLog struct {
	records []DuelRecord
	limit   int
}

// NewBattleLog creates a log keeping the latest limit duels.
func NewBattleLog(limit int) *BattleLog {
	if limit < 1 {
		limit = 1
	}
	return &BattleLog{
		records: make([]DuelRecord, 0, limit),
		limit:   limit,
	}
}

// Record pushes a duel onto the front of the log.
func (l *BattleLog) Record(winnerCode, loserCode string) {
	if len(l.records) < l.limit {
		l.records = append(l.records, DuelRecord{})
	}
	copy(l.records[1:], l.records)
	l.records[0] = DuelRecord{WinnerCode: winnerCode, LoserCode: loserCode}
}

// Recent returns the retained duels, newest first. Callers must not modify
// the returned slice.
func (l *BattleLog) Recent() []DuelRecord {
	return l.records
}

// Len returns the number of retained duels.
func (l *BattleLog) Len() int {
	return len(l.records)
}
