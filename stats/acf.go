package stats

import (
	"math"
)

// ACF calculates the Autocorrelation Function of values.
// Returns ACF values for lags 0 to maxLag, or nil when values are constant.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// AR1 returns the first-order autocorrelation over runs of consecutive
// values, or 0 when it is undefined. The mean and variance cover every value;
// lagged products are only taken within a run.
func AR1(runs ...[]float64) float64 {
	var all []float64
	for _, values := range runs {
		all = append(all, values...)
	}
	if len(all) < 2 {
		return 0
	}

	mean := Mean(all)
	variance := 0.0
	for _, v := range all {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return 0
	}

	sum := 0.0
	for _, values := range runs {
		for i := 1; i < len(values); i++ {
			sum += (values[i] - mean) * (values[i-1] - mean)
		}
	}
	return sum / variance
}

// ConfidenceBound returns the 95% bound (±1.96/sqrt(n)) for autocorrelations
// of n observations.
func ConfidenceBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return 1.96 / math.Sqrt(float64(n))
}
