// Package treering summarizes and plots tree-ring width tables.
//
// A ring-width table has one row per calendar year and one column per sample
// series. Series start and end in different years, so the table is ragged;
// within a series a recorded zero marks a missing ring.
//
// # Quick Start
//
// Load a table, summarize it and print the report:
//
//	table, err := timeseries.LoadCSV(ctx, "rings.csv", nil)
//	if err != nil {
//	    return err
//	}
//	summary := stats.Summarize(ctx, table, stats.DefaultPolicy())
//	report.WriteText(os.Stdout, summary)
//
// Or from the command line:
//
//	treering rings.csv
//	treering --format json --series-stats --no-plot rings.csv
//
// # Packages
//
// The module is organized into the following packages:
//
//   - timeseries: Table and Series types, CSV loading
//   - stats: Table summary, missing-ring detection, per-series statistics
//   - report: Console and JSON reports
//   - render: Stacked plot layout and the Renderer interface
//   - render/window: Desktop plot window
//
// The statistics are descriptive only. Dating, cross-dating and detrending
// are out of scope.
package treering
