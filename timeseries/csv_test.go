package timeseries

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/treering/internal/sentinel"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `Year,A,B
2000,1,NA
2001,0,5
2002,3,6
2003,0,NA`

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	if table.Len() != 4 {
		t.Errorf("Expected 4 rows, got %d", table.Len())
	}

	expectedYears := []int{2000, 2001, 2002, 2003}
	for i, y := range expectedYears {
		if table.Years[i] != y {
			t.Errorf("Year at index %d: expected %d, got %d", i, y, table.Years[i])
		}
	}

	names := table.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Expected series [A B], got %v", names)
	}

	a := table.Series[0].Values
	expectedA := []float64{1, 0, 3, 0}
	for i, v := range expectedA {
		if a[i] != v {
			t.Errorf("A at index %d: expected %f, got %f", i, v, a[i])
		}
	}

	b := table.Series[1]
	if b.Present(0) || b.Present(3) {
		t.Error("Expected NA cells to be unrecorded")
	}
	if b.Values[1] != 5 || b.Values[2] != 6 {
		t.Errorf("Expected B values 5, 6 in the middle, got %v", b.Values)
	}
}

func TestLoadCSVYearColumnPosition(t *testing.T) {
	csvData := `A,Year,B
1,1990,2
3,1991,4`

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	names := table.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Expected series [A B], got %v", names)
	}
	if table.Years[0] != 1990 {
		t.Errorf("Expected first year 1990, got %d", table.Years[0])
	}
}

func TestLoadCSVUnsortedAndGappy(t *testing.T) {
	csvData := `Year,A
2003,4
2000,1
2001,2`

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	expectedYears := []int{2000, 2001, 2002, 2003}
	require.Equal(t, expectedYears, table.Years)

	a := table.Series[0]
	if a.Values[0] != 1 || a.Values[1] != 2 || a.Values[3] != 4 {
		t.Errorf("Unexpected values after sorting: %v", a.Values)
	}
	if a.Present(2) {
		t.Error("Expected padded year 2002 to be unrecorded")
	}
}

func TestLoadCSVTrimsEmptyEdges(t *testing.T) {
	csvData := `Year,A,B
1998,,
1999,NA,NA
2000,1,
2001,,2
2002,NA,NA`

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	require.Equal(t, []int{2000, 2001}, table.Years)

	first, last, ok := table.Span()
	if !ok || first != 2000 || last != 2001 {
		t.Errorf("Expected span 2000-2001, got %d-%d", first, last)
	}
}

func TestLoadCSVCustomOptions(t *testing.T) {
	csvData := "yr\tX\tY\n1800\t0.5\t-\n1801\t0.7\t1.1\n"

	opts := DefaultCSVOptions()
	opts.YearColumn = "yr"
	opts.Delimiter = '\t'
	opts.MissingValues = []string{"-"}

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), opts)
	require.NoError(t, err)

	y, ok := table.Column("Y")
	require.True(t, ok)
	if y.Present(0) {
		t.Error("Expected '-' to be read as unrecorded")
	}
	if math.Abs(y.Values[1]-1.1) > 1e-10 {
		t.Errorf("Expected 1.1, got %f", y.Values[1])
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		wantErr error
	}{
		{"empty", ``, sentinel.ErrNoData},
		{"no year column", "Age,A\n1,2\n", sentinel.ErrYearColumnMissing},
		{"no series", "Year\n2000\n", sentinel.ErrNoSeries},
		{"only missing", "Year,A\n2000,NA\n2001,\n", sentinel.ErrNoData},
		{"header only", "Year,A\n", sentinel.ErrNoData},
		{"duplicate year", "Year,A\n2000,1\n2000,2\n", sentinel.ErrDuplicateYear},
		{"bad year", "Year,A\n20x0,1\n", sentinel.ErrInvalidYear},
		{"bad value", "Year,A\n2000,wide\n", sentinel.ErrInvalidValue},
		{"long row", "Year,A,B\n2000,1,2,3\n", sentinel.ErrLoad},
		{"short row without year", "A,B,Year\n1,2\n", sentinel.ErrInvalidYear},
		{"year span too wide", "Year,A\n2000,1\n20000000000000,2\n", sentinel.ErrInvalidYear},
		{"year span overflows", "Year,A\n-9223372036854775808,1\n9223372036854775807,2\n", sentinel.ErrInvalidYear},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(context.Background(), strings.NewReader(tc.csvData), nil)
			require.Error(t, err)

			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, sentinel.ErrLoad) {
				t.Errorf("Expected every load failure to match ErrLoad, got %v", err)
			}
		})
	}
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rings.csv")
	require.NoError(t, os.WriteFile(path, []byte("Year,A\n1990,1\n1991,2\n"), 0o644))

	table, err := LoadCSV(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), nil)
	require.Error(t, err)

	if !errors.Is(err, sentinel.ErrLoad) {
		t.Errorf("Expected ErrLoad, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected the open error to stay in the chain, got %v", err)
	}
}

func TestLoadCSVByteOrderMark(t *testing.T) {
	csvData := "\ufeffYear,A,B\n2000,1,NA\n2001,2,3\n"

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	require.Equal(t, []int{2000, 2001}, table.Years)
	require.Equal(t, []string{"A", "B"}, table.Names())
}

func TestLoadCSVShortRows(t *testing.T) {
	csvData := `Year,A,B
2000,1,2
2001,3
2002,4,5`

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)

	b, _ := table.Column("B")
	if b.Present(1) {
		t.Error("Expected the cell missing from a short row to be unrecorded")
	}
	if b.Values[0] != 2 || b.Values[2] != 5 {
		t.Errorf("Unexpected B values: %v", b.Values)
	}

	a, _ := table.Column("A")
	if a.Values[1] != 3 {
		t.Errorf("Expected A in 2001 to be 3, got %f", a.Values[1])
	}
}

func TestLoadCSVWideYearSpanAllowed(t *testing.T) {
	csvData := fmt.Sprintf("Year,A\n0,1\n%d,2\n", MaxYearSpan-1)

	table, err := LoadCSVFromReader(context.Background(), strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.Equal(t, MaxYearSpan, table.Len())
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.YearColumn != "Year" {
		t.Errorf("Expected default year column 'Year', got '%s'", opts.YearColumn)
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}

	if len(opts.MissingValues) == 0 {
		t.Error("Expected default missing value tokens")
	}
}
