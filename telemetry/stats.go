package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/petri/genes"
)

// Sample is a point-in-time reading of the live population, taken by the
// caller at window end.
type Sample struct {
	GridCells int
	PopCounts []int         // live pixels per founder population
	Vectors   []genes.Genes // gene vector of every live pixel
	Codes     []string      // gene code of every live pixel
	Ages      []float64     // ticks lived, one entry per live pixel
}

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end
	Pixels           int     `csv:"pixels"`
	PopulationsAlive int     `csv:"populations_alive"`
	Occupancy        float64 `csv:"occupancy"`

	// Events during the window
	Duels  int `csv:"duels"`
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Genetic makeup at window end
	DistinctCodes int     `csv:"distinct_codes"`
	TopCode       string  `csv:"top_code"`
	TopCodeShare  float64 `csv:"top_code_share"`
	AttackMean    float64 `csv:"attack_mean"`
	AttackStd     float64 `csv:"attack_std"`
	DefenseMean   float64 `csv:"defense_mean"`
	DefenseStd    float64 `csv:"defense_std"`
	SpeedMean     float64 `csv:"speed_mean"`
	SpeedStd      float64 `csv:"speed_std"`
	HPMean        float64 `csv:"hp_mean"`
	HPStd         float64 `csv:"hp_std"`

	// Longevity at window end
	AgeMean float64 `csv:"age_mean"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`

	// Engine cost during the window
	TickMsMean float64 `csv:"tick_ms_mean"`
	TickMsMax  float64 `csv:"tick_ms_max"`
}

// newWindowStats fills the sample-derived half of a WindowStats.
func newWindowStats(start, end int64, sample Sample) WindowStats {
	s := WindowStats{
		WindowStartTick: start,
		WindowEndTick:   end,
		Pixels:          len(sample.Vectors),
	}
	for _, n := range sample.PopCounts {
		if n > 0 {
			s.PopulationsAlive++
		}
	}
	if sample.GridCells > 0 {
		s.Occupancy = float64(s.Pixels) / float64(sample.GridCells)
	}

	s.DistinctCodes, s.TopCode, s.TopCodeShare = codeSpread(sample.Codes)

	var means, stds [genes.NumCategories]float64
	vectorStats(sample.Vectors, &means, &stds)
	s.AttackMean, s.AttackStd = means[genes.Attack], stds[genes.Attack]
	s.DefenseMean, s.DefenseStd = means[genes.Defense], stds[genes.Defense]
	s.SpeedMean, s.SpeedStd = means[genes.Speed], stds[genes.Speed]
	s.HPMean, s.HPStd = means[genes.HP], stds[genes.HP]

	s.AgeMean, s.AgeP50, s.AgeP90 = ageSpread(sample.Ages)

	return s
}

// codeSpread returns the distinct code count plus the most common code and
// its share of the population. Ties break toward the lexically smaller
// code so repeated samples agree.
func codeSpread(codes []string) (distinct int, top string, share float64) {
	if len(codes) == 0 {
		return 0, "", 0
	}
	counts := make(map[string]int, len(codes))
	for _, code := range codes {
		counts[code]++
	}
	for code, n := range counts {
		if n > counts[top] || (n == counts[top] && (top == "" || code < top)) {
			top = code
		}
	}
	return len(counts), top, float64(counts[top]) / float64(len(codes))
}

// vectorStats computes per-category mean and standard deviation.
func vectorStats(vectors []genes.Genes, means, stds *[genes.NumCategories]float64) {
	if len(vectors) == 0 {
		return
	}
	column := make([]float64, len(vectors))
	for c := genes.Category(0); c < genes.NumCategories; c++ {
		for i, v := range vectors {
			column[i] = float64(v[c])
		}
		means[c] = stat.Mean(column, nil)
		if len(column) > 1 {
			stds[c] = stat.StdDev(column, nil)
		}
	}
}

// ageSpread computes mean, median, and 90th percentile age.
func ageSpread(ages []float64) (mean, p50, p90 float64) {
	if len(ages) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(ages))
	copy(sorted, ages)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, p50, p90
}

// tickCost summarizes per-tick wall-clock samples.
func tickCost(ms []float64) (mean, max float64) {
	if len(ms) == 0 {
		return 0, 0
	}
	mean = stat.Mean(ms, nil)
	for _, v := range ms {
		if v > max {
			max = v
		}
	}
	return mean, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("pixels", s.Pixels),
		slog.Int("populations_alive", s.PopulationsAlive),
		slog.Float64("occupancy", s.Occupancy),
		slog.Int("duels", s.Duels),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("distinct_codes", s.DistinctCodes),
		slog.String("top_code", s.TopCode),
		slog.Float64("top_code_share", s.TopCodeShare),
		slog.Float64("attack_mean", s.AttackMean),
		slog.Float64("defense_mean", s.DefenseMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("hp_mean", s.HPMean),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("age_p50", s.AgeP50),
		slog.Float64("age_p90", s.AgeP90),
		slog.Float64("tick_ms_mean", s.TickMsMean),
		slog.Float64("tick_ms_max", s.TickMsMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
