package timeseries

import (
	"cmp"
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/sartorproj/treering/internal/log"
	"github.com/sartorproj/treering/internal/sentinel"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	YearColumn    string   // Column used as the year index (default: "Year")
	Delimiter     rune     // Field delimiter (default: ',')
	MissingValues []string // Cell values read as "not recorded"
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		YearColumn:    "Year",
		Delimiter:     ',',
		MissingValues: []string{"", "NA", "NaN", "nan", "null"},
	}
}

// MaxYearSpan bounds the number of years a table's index may cover.
const MaxYearSpan = 100000

type row struct {
	year   int
	values []float64
}

// LoadCSV loads a ring-width table from a CSV file.
func LoadCSV(ctx context.Context, filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, sentinel.Load(err, "open input")
	}
	defer file.Close()

	table, err := LoadCSVFromReader(ctx, file, opts)
	if err != nil {
		return nil, ewrap.Wrap(err, filename)
	}
	return table, nil
}

// LoadCSVFromReader loads a ring-width table from an io.Reader.
//
// Rows are ordered by year, gaps in the year sequence are filled with
// unrecorded rows, and leading or trailing rows where no series is recorded
// are dropped, so the index covers exactly the union of the series' ranges.
func LoadCSVFromReader(ctx context.Context, r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	lg := log.Get(ctx)

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ewrap.Wrap(sentinel.ErrNoData, "empty input")
	}
	if err != nil {
		return nil, sentinel.Load(err, "read header")
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	yearIdx := -1
	var names []string
	var columns []int
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == opts.YearColumn && yearIdx == -1 {
			yearIdx = i
			continue
		}
		names = append(names, h)
		columns = append(columns, i)
	}
	if yearIdx == -1 {
		return nil, ewrap.Wrapf(sentinel.ErrYearColumnMissing, "no %q column in header", opts.YearColumn)
	}
	if len(names) == 0 {
		return nil, sentinel.ErrNoSeries
	}
	lg.Debug().Strs("series", names).Str("year_column", opts.YearColumn).Msg("read header")

	missing := make(map[string]bool, len(opts.MissingValues))
	for _, m := range opts.MissingValues {
		missing[m] = true
	}

	var rows []row
	seen := make(map[int]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, sentinel.Load(err, "read row")
		}
		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			return nil, ewrap.Wrapf(sentinel.ErrLoad,
				"line %d: %d fields, header has %d", line, len(record), len(header))
		}

		yearStr := cell(record, yearIdx)
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, ewrap.Wrapf(sentinel.ErrInvalidYear, "line %d: %q", line, yearStr)
		}
		if seen[year] {
			return nil, ewrap.Wrapf(sentinel.ErrDuplicateYear, "line %d: %d", line, year)
		}
		seen[year] = true

		values := make([]float64, len(columns))
		for j, col := range columns {
			// Cells missing from the end of a short row are not recorded.
			if col >= len(record) {
				values[j] = math.NaN()
				continue
			}
			c := cell(record, col)
			if missing[c] {
				values[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, ewrap.Wrapf(sentinel.ErrInvalidValue, "line %d, column %q: %q", line, names[j], c)
			}
			values[j] = v
		}
		rows = append(rows, row{year: year, values: values})
	}

	slices.SortFunc(rows, func(a, b row) int { return cmp.Compare(a.year, b.year) })

	// Trim to the union of the series' recorded ranges.
	first, last := -1, -1
	for i, rw := range rows {
		if !allMissing(rw.values) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return nil, ewrap.Wrapf(sentinel.ErrNoData, "%d rows read", len(rows))
	}
	rows = rows[first : last+1]

	startYear, endYear := rows[0].year, rows[len(rows)-1].year
	// Unsigned subtraction cannot overflow for endYear >= startYear.
	span := uint64(endYear) - uint64(startYear)
	if span >= MaxYearSpan {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidYear,
			"years %d to %d span more than %d years", startYear, endYear, MaxYearSpan)
	}
	n := int(span) + 1
	years := make([]int, n)
	for i := range years {
		years[i] = startYear + i
	}

	series := make([]*Series, len(names))
	for j, name := range names {
		values := make([]float64, n)
		for i := range values {
			values[i] = math.NaN()
		}
		series[j] = NewSeries(name, values)
	}
	for _, rw := range rows {
		for j, v := range rw.values {
			series[j].Values[rw.year-startYear] = v
		}
	}

	lg.Debug().
		Int("rows", len(rows)).
		Int("padded", n-len(rows)).
		Int("trimmed", first+(len(seen)-1-last)).
		Int("first_year", startYear).
		Int("last_year", endYear).
		Msg("loaded table")

	return NewTable(years, series)
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func allMissing(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
