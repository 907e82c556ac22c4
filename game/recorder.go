package game

// eventRecorder feeds engine events into the telemetry layer. It satisfies
// systems.Recorder; the engine itself never sees telemetry types.
type eventRecorder struct {
	g *Game
}

func (r *eventRecorder) Duel(winnerID, loserID uint64, winnerCode, loserCode string) {
	g := r.g
	g.collector.RecordDuel()
	g.battleLog.Record(winnerCode, loserCode)
	g.hallOfFame.RecordWin(winnerCode)
	g.hallOfFame.RecordLoss(loserCode)
	g.lifetimes.RecordKill(winnerID)
}

func (r *eventRecorder) Born(id, parentID uint64, population uint8, code string) {
	g := r.g
	g.collector.RecordBirth()
	g.lifetimes.Register(id, g.tick, population, code)
	if parentID != 0 {
		g.lifetimes.RecordChild(parentID)
	}
}

func (r *eventRecorder) Died(id uint64, population uint8, code string) {
	g := r.g
	g.collector.RecordDeath()
	g.lifetimes.Remove(id)
}
