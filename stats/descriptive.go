package stats

import (
	"math"
	"sort"
)

// Mean calculates the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the sample variance of values.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// Std calculates the sample standard deviation of values.
func Std(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Min returns the minimum of values.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	lo := values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
	}
	return lo
}

// Max returns the maximum of values.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	hi := values[0]
	for _, v := range values[1:] {
		if v > hi {
			hi = v
		}
	}
	return hi
}

// Median returns the median of values.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// MeanSensitivity calculates the mean relative change between consecutive
// values, |2(x[t]-x[t-1]) / (x[t]+x[t-1])| averaged over all pairs.
// Each run holds values from consecutive years; pairs never span two runs.
// Pairs summing to zero are skipped.
func MeanSensitivity(runs ...[]float64) float64 {
	sum := 0.0
	n := 0
	for _, values := range runs {
		for i := 1; i < len(values); i++ {
			den := values[i] + values[i-1]
			if den == 0 {
				continue
			}
			sum += math.Abs(2 * (values[i] - values[i-1]) / den)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
