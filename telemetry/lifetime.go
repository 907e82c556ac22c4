package telemetry

// LifetimeStats tracks one pixel's record over its lifetime.
type LifetimeStats struct {
	BirthTick  int64
	Population uint8
	Code       string

	Kills    int
	Children int
}

// LifetimeTracker manages per-pixel lifetime statistics.
type LifetimeTracker struct {
	stats map[uint64]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint64]*LifetimeStats),
	}
}

// Register creates lifetime stats for a newborn pixel.
func (lt *LifetimeTracker) Register(id uint64, birthTick int64, population uint8, code string) {
	lt.stats[id] = &LifetimeStats{
		BirthTick:  birthTick,
		Population: population,
		Code:       code,
	}
}

// Get returns the lifetime stats for a pixel, or nil if not found.
func (lt *LifetimeTracker) Get(id uint64) *LifetimeStats {
	return lt.stats[id]
}

// Remove drops a pixel's stats and returns them for final logging.
func (lt *LifetimeTracker) Remove(id uint64) *LifetimeStats {
	stats := lt.stats[id]
	delete(lt.stats, id)
	return stats
}

// RecordKill increments a pixel's duel victory count.
func (lt *LifetimeTracker) RecordKill(id uint64) {
	if s := lt.stats[id]; s != nil {
		s.Kills++
	}
}

// RecordChild increments a pixel's offspring count.
func (lt *LifetimeTracker) RecordChild(parentID uint64) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// Ages appends the age in ticks of every tracked pixel to dst.
func (lt *LifetimeTracker) Ages(dst []float64, nowTick int64) []float64 {
	for _, s := range lt.stats {
		dst = append(dst, float64(nowTick-s.BirthTick))
	}
	return dst
}

// Count returns the number of tracked pixels.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
