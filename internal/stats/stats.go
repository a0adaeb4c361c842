// Package stats provides the descriptive statistics used by the
// Monte-Carlo summary: mean, population standard deviation, median,
// linear-interpolation percentiles, threshold fractions, and Pearson
// correlation.
package stats

import (
	"math"
	"sort"
)

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// StdDev returns the population standard deviation (divides by n,
// not n-1).
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	if len(data) == 1 {
		return 0
	}
	mean := Mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}

// Percentile returns the q-th percentile (0..100) using linear
// interpolation between the two nearest ranks.
func Percentile(data []float64, q float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func Median(data []float64) float64 {
	return Percentile(data, 50)
}

// FractionAtLeast returns the share of values >= threshold, in [0, 1].
func FractionAtLeast(data []float64, threshold float64) float64 {
	if len(data) == 0 {
		return 0
	}
	count := 0
	for _, v := range data {
		if v >= threshold {
			count++
		}
	}
	return float64(count) / float64(len(data))
}

// Correlation returns the Pearson correlation coefficient of x and y.
// Degenerate inputs (mismatched or constant series) yield NaN.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}
	mx, my := Mean(x), Mean(y)

	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

// LinearFit returns the least-squares slope and intercept of y over x,
// used for the trend lines on the sensitivity scatter plots.
func LinearFit(x, y []float64) (slope, intercept float64) {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN(), math.NaN()
	}
	mx, my := Mean(x), Mean(y)

	var sxy, sxx float64
	for i := range x {
		dx := x[i] - mx
		sxy += dx * (y[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return math.NaN(), math.NaN()
	}
	slope = sxy / sxx
	return slope, my - slope*mx
}
