// Package telemetry provides windowed stats, duel history, bookmarks, and
// experiment output for the simulation.
package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int64
	windowStart int64

	// Event counters for the current window
	duels  int
	births int
	deaths int

	// Wall-clock cost of each tick in the window, in milliseconds
	tickMs []float64
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordDuel counts a resolved duel.
func (c *Collector) RecordDuel() {
	c.duels++
}

// RecordBirth counts a birth.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordDeath counts a death.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordTickDuration notes how long one tick took.
func (c *Collector) RecordTickDuration(ms float64) {
	c.tickMs = append(c.tickMs, ms)
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStart >= c.windowTicks
}

// Flush produces a WindowStats from the window's counters and the caller's
// population sample, then resets for the next window.
func (c *Collector) Flush(currentTick int64, sample Sample) WindowStats {
	stats := newWindowStats(c.windowStart, currentTick, sample)
	stats.Duels = c.duels
	stats.Births = c.births
	stats.Deaths = c.deaths
	stats.TickMsMean, stats.TickMsMax = tickCost(c.tickMs)

	c.windowStart = currentTick
	c.duels = 0
	c.births = 0
	c.deaths = 0
	c.tickMs = c.tickMs[:0]

	return stats
}
