package stats

import (
	"math"

	"github.com/sartorproj/treering/timeseries"
)

// SeriesStats holds descriptive statistics for one series, computed over its
// measurements (recorded values other than the missing marker) in year order.
type SeriesStats struct {
	Name            string  `json:"name"`
	FirstYear       int     `json:"first_year"`
	LastYear        int     `json:"last_year"`
	Length          int     `json:"length"`
	Measurements    int     `json:"measurements"`
	Missing         int     `json:"missing"`
	Mean            float64 `json:"mean"`
	Median          float64 `json:"median"`
	Std             float64 `json:"std"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	MeanSensitivity float64 `json:"mean_sensitivity"`
	AR1             float64 `json:"ar1"`
	AR1Significant  bool    `json:"ar1_significant"`
}

// Describe computes SeriesStats for every series in table, in column order.
// Statistics that are undefined for a series (no measurements) are zero.
func Describe(table *timeseries.Table, policy Policy) []SeriesStats {
	out := make([]SeriesStats, 0, len(table.Series))
	for _, s := range table.Series {
		out = append(out, describeSeries(table, s, policy))
	}
	return out
}

func describeSeries(table *timeseries.Table, s *timeseries.Series, policy Policy) SeriesStats {
	st := SeriesStats{Name: s.Name}

	first, last, ok := table.ValidYears(s)
	if !ok {
		return st
	}
	st.FirstYear = first
	st.LastYear = last
	st.Length = SeriesLength(s)
	st.Missing = len(FindMissingYears(table, s, policy))

	values := Measurements(s, policy)
	st.Measurements = len(values)
	if len(values) == 0 {
		return st
	}

	st.Mean = Mean(values)
	st.Median = Median(values)
	st.Std = Std(values)
	st.Min = Min(values)
	st.Max = Max(values)
	runs := MeasurementRuns(s, policy)
	st.MeanSensitivity = MeanSensitivity(runs...)
	st.AR1 = AR1(runs...)
	st.AR1Significant = math.Abs(st.AR1) > ConfidenceBound(len(values))

	return st
}

// Measurements returns the measurements of s in year order.
func Measurements(s *timeseries.Series, policy Policy) []float64 {
	values := make([]float64, 0, s.Len())
	for _, v := range s.Values {
		if policy.IsMeasurement(v) {
			values = append(values, v)
		}
	}
	return values
}

// MeasurementRuns splits the measurements of s into runs of consecutive
// years. An absent value or the missing marker ends a run.
func MeasurementRuns(s *timeseries.Series, policy Policy) [][]float64 {
	var runs [][]float64
	var cur []float64
	for _, v := range s.Values {
		if policy.IsMeasurement(v) {
			cur = append(cur, v)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
