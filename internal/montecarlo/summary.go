package montecarlo

import (
	"math"
	"sort"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/stats"
)

// Range targets the analysis reports achievement rates for.
const (
	TargetRangeKm  = 5000.0
	StretchRangeKm = 10000.0
)

// Correlation is one entry of the sensitivity ranking.
type Correlation struct {
	Field string  `json:"field"`
	R     float64 `json:"r"`
}

// Summary holds the aggregate statistics of one ensemble.
type Summary struct {
	Runs       int     `json:"runs"`
	MeanKm     float64 `json:"mean_km"`
	StdKm      float64 `json:"std_km"`
	MedianKm   float64 `json:"median_km"`
	P5Km       float64 `json:"p5_km"`
	P95Km      float64 `json:"p95_km"`
	PctTarget  float64 `json:"pct_at_least_5000km"`
	PctStretch float64 `json:"pct_at_least_10000km"`

	// Correlations ranks the sampled fields by |r| against range.
	Correlations []Correlation `json:"correlations,omitempty"`
}

// Summarize computes the aggregate statistics of an ensemble, including
// per-field Pearson correlations for the sampled fields.
func Summarize(ensemble Ensemble, sampledFields []string) Summary {
	ranges := ensemble.Ranges()

	s := Summary{
		Runs:       len(ensemble),
		MeanKm:     stats.Mean(ranges),
		StdKm:      stats.StdDev(ranges),
		MedianKm:   stats.Median(ranges),
		P5Km:       stats.Percentile(ranges, 5),
		P95Km:      stats.Percentile(ranges, 95),
		PctTarget:  stats.FractionAtLeast(ranges, TargetRangeKm) * 100,
		PctStretch: stats.FractionAtLeast(ranges, StretchRangeKm) * 100,
	}

	for _, name := range sampledFields {
		s.Correlations = append(s.Correlations, Correlation{
			Field: name,
			R:     stats.Correlation(ensemble.FieldValues(name), ranges),
		})
	}
	sort.SliceStable(s.Correlations, func(i, j int) bool {
		return math.Abs(s.Correlations[i].R) > math.Abs(s.Correlations[j].R)
	})

	return s
}
