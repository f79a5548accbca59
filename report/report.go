package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/sartorproj/treering/stats"
	"github.com/sartorproj/treering/timeseries"
)

// Report is the machine-readable form of a run's results.
type Report struct {
	Summary stats.SummaryStats  `json:"summary"`
	Series  []stats.SeriesStats `json:"series,omitempty"`
}

// WriteHead writes the year and every series value of the table's first row.
func WriteHead(w io.Writer, table *timeseries.Table) error {
	if table.Len() == 0 {
		return nil
	}

	tw := newTableWriter(w)
	tw.SetHeader(append([]string{"Year"}, table.Names()...))

	cells := []string{strconv.Itoa(table.Years[0])}
	for _, v := range table.Row(0) {
		cells = append(cells, formatValue(v))
	}
	tw.Append(cells)
	tw.Render()

	return nil
}

// WriteText writes the summary in the fixed console layout:
//
//	Number of dated series: 2
//	Total number of measurements: 4
//	Average series length: 3.0
//	Range: 4
//	Span: 2000 - 2003
//	Years with missing data for each time-series:
//	  A: 2001 2003
//
// Series without missing years are left out of the final listing.
func WriteText(w io.Writer, s stats.SummaryStats) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of dated series: %d\n", s.SeriesCount)
	fmt.Fprintf(&b, "Total number of measurements: %d\n", s.TotalMeasurements)
	fmt.Fprintf(&b, "Average series length: %.1f\n", s.AverageLength)
	fmt.Fprintf(&b, "Range: %d\n", s.Range)
	fmt.Fprintf(&b, "Span: %d - %d\n", s.FirstYear, s.LastYear)
	b.WriteString("Years with missing data for each time-series:\n")
	for _, m := range s.Missing {
		if len(m.Years) == 0 {
			continue
		}
		years := make([]string, len(m.Years))
		for i, y := range m.Years {
			years[i] = strconv.Itoa(y)
		}
		fmt.Fprintf(&b, "  %s: %s\n", m.Series, strings.Join(years, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSeriesStats writes one table row of descriptive statistics per series.
func WriteSeriesStats(w io.Writer, series []stats.SeriesStats) error {
	tw := newTableWriter(w)
	tw.SetHeader([]string{"Series", "First", "Last", "Length", "N", "Missing",
		"Mean", "Median", "Std", "Min", "Max", "Sens", "AR1"})

	for _, st := range series {
		ar1 := strconv.FormatFloat(st.AR1, 'f', 3, 64)
		if st.AR1Significant {
			ar1 += "*"
		}
		tw.Append([]string{
			st.Name,
			strconv.Itoa(st.FirstYear),
			strconv.Itoa(st.LastYear),
			strconv.Itoa(st.Length),
			strconv.Itoa(st.Measurements),
			strconv.Itoa(st.Missing),
			strconv.FormatFloat(st.Mean, 'f', 3, 64),
			strconv.FormatFloat(st.Median, 'f', 3, 64),
			strconv.FormatFloat(st.Std, 'f', 3, 64),
			strconv.FormatFloat(st.Min, 'f', 3, 64),
			strconv.FormatFloat(st.Max, 'f', 3, 64),
			strconv.FormatFloat(st.MeanSensitivity, 'f', 3, 64),
			ar1,
		})
	}
	tw.Render()

	return nil
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func newTableWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	return tw
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
