package stats

import (
	"context"
	"math"

	"github.com/sartorproj/treering/internal/log"
	"github.com/sartorproj/treering/timeseries"
)

// MissingYears lists the years inside a series' valid range holding the
// missing marker.
type MissingYears struct {
	Series string `json:"series"`
	Years  []int  `json:"years"`
}

// SummaryStats holds the table-wide summary of a ring-width table.
type SummaryStats struct {
	SeriesCount       int            `json:"series_count"`
	TotalMeasurements int            `json:"total_measurements"`
	AverageLength     float64        `json:"average_length"`
	Range             int            `json:"range"`
	FirstYear         int            `json:"first_year"`
	LastYear          int            `json:"last_year"`
	Missing           []MissingYears `json:"missing"`
}

// Summarize computes the summary of table under policy. The table is not
// modified and the result depends on nothing but its arguments.
func Summarize(ctx context.Context, table *timeseries.Table, policy Policy) SummaryStats {
	summary := SummaryStats{
		SeriesCount: len(table.Series),
		Range:       table.Len(),
		Missing:     make([]MissingYears, 0, len(table.Series)),
	}

	totalLength := 0
	for _, s := range table.Series {
		summary.TotalMeasurements += NonMissingCount(s, policy)
		totalLength += SeriesLength(s)
		summary.Missing = append(summary.Missing, MissingYears{
			Series: s.Name,
			Years:  FindMissingYears(table, s, policy),
		})
	}

	if summary.SeriesCount > 0 {
		summary.AverageLength = round1(float64(totalLength) / float64(summary.SeriesCount))
	}

	if first, last, ok := table.Span(); ok {
		summary.FirstYear = first
		summary.LastYear = last
	}

	log.Get(ctx).Debug().
		Int("series", summary.SeriesCount).
		Int("measurements", summary.TotalMeasurements).
		Int("first_year", summary.FirstYear).
		Int("last_year", summary.LastYear).
		Msg("summarized table")

	return summary
}

// NonMissingCount returns the number of measurements in a series' valid range.
func NonMissingCount(s *timeseries.Series, policy Policy) int {
	first, last, ok := s.ValidRange()
	if !ok {
		return 0
	}
	n := 0
	for i := first; i <= last; i++ {
		if policy.IsMeasurement(s.Values[i]) {
			n++
		}
	}
	return n
}

// SeriesLength returns the number of years in a series' valid range, or 0
// for a series with no recorded values.
func SeriesLength(s *timeseries.Series) int {
	first, last, ok := s.ValidRange()
	if !ok {
		return 0
	}
	return last - first + 1
}

// FindMissingYears returns, in ascending order, the years inside the valid
// range of s whose value is the missing marker. Years outside the range are
// never reported.
func FindMissingYears(table *timeseries.Table, s *timeseries.Series, policy Policy) []int {
	first, last, ok := s.ValidRange()
	if !ok {
		return nil
	}
	var years []int
	for i := first; i <= last; i++ {
		if policy.IsMissing(s.Values[i]) {
			years = append(years, table.Years[i])
		}
	}
	return years
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
