package reports

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// STATISTICS — Aggregates shared by the report pipelines
// ============================================================================

// mean returns the arithmetic mean of xs, or NaN for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// sampleStdDev returns the sample standard deviation (n-1 denominator).
// A single observation has no sample deviation and yields NaN.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// median returns the middle value of xs; for even-length input, the mean of
// the two middle values. The input is not modified.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
