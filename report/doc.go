// Package report formats ring-width summaries for the console.
//
// WriteHead dumps the table's first row, WriteText prints the fixed summary
// layout, WriteSeriesStats prints per-series statistics, and WriteJSON emits
// everything as a single JSON document.
package report
