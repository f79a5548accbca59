// Package timeseries provides the ring-width table and its CSV loader.
//
// A Table holds one column per sample series, all aligned to a shared,
// contiguous year index. A year a series was not recorded in holds NaN;
// the first and last recorded positions bound the series' valid range.
//
// # Loading from CSV
//
// The input needs a header row with a year column; every other column is a
// series named by its header:
//
//	Year,A,B
//	2000,1.2,NA
//	2001,0,0.8
//	2002,0.9,0.7
//
//	table, err := timeseries.LoadCSV(ctx, "rings.csv", nil)
//
// Cells listed in CSVOptions.MissingValues (empty, NA, NaN, null by default)
// are read as not recorded. A zero is a recorded value here; whether it means
// a missing ring is decided by the stats package.
//
// # Valid Ranges
//
//	first, last, ok := table.ValidYears(table.Series[0])
//	spanFirst, spanLast, ok := table.Span()
//
// # CSV Options
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.YearColumn = "year"
//	opts.Delimiter = '\t'
//	table, err := timeseries.LoadCSVFromReader(ctx, reader, opts)
//
// Every load failure matches sentinel.ErrLoad with errors.Is.
package timeseries
