// Package stats summarizes ring-width tables.
//
// Statistics are descriptive only: counts, ranges, spans and per-series
// moments. Nothing here dates, cross-dates or detrends a series.
//
// # Missing Values
//
// A Policy names the value that marks a missing ring. Within a series' valid
// range a recorded value equal to Policy.MissingMarker (zero by default) is a
// missing year; outside the range the series simply does not exist, so those
// years are never reported.
//
//	policy := stats.DefaultPolicy()
//	policy.IsMissing(0)     // true
//	policy.IsMeasurement(1) // true
//
// # Table Summary
//
// Summarize computes the figures printed by the treering command:
//
//	summary := stats.Summarize(ctx, table, stats.DefaultPolicy())
//	fmt.Println(summary.SeriesCount, summary.TotalMeasurements)
//	fmt.Println(summary.AverageLength)            // rounded to one decimal
//	fmt.Println(summary.FirstYear, summary.LastYear)
//	for _, m := range summary.Missing {
//	    fmt.Println(m.Series, m.Years)
//	}
//
// # Series Statistics
//
// Describe reports per-series moments over measurements only:
//
//	for _, st := range stats.Describe(table, policy) {
//	    fmt.Printf("%s: mean=%.3f sens=%.3f ar1=%.3f\n",
//	        st.Name, st.Mean, st.MeanSensitivity, st.AR1)
//	}
//
// Mean sensitivity is the average relative change between consecutive
// measurements. AR1 is the lag-1 value of ACF, flagged significant when it
// exceeds the 95% bound ±1.96/sqrt(n).
package stats
