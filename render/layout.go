package render

import (
	"math"

	"github.com/sartorproj/treering/timeseries"
)

const (
	// labelMargin is the share of the width kept free on each side for labels.
	labelMargin = 0.1
	// labelOffset is the gap between the plot area and a label, as a share of
	// the plot width.
	labelOffset = 0.02
	// panelPadding is the share of a panel's height kept above and below its line.
	panelPadding = 0.05
)

// Size is a drawing surface size in pixels.
type Size struct {
	Width  int
	Height int
}

// Point is a position in pixels, origin at the top left.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Side says which side of the plot area a label sits on.
type Side int

const (
	// SideLeft labels end at X, left of the plot area.
	SideLeft Side = iota
	// SideRight labels start at X, right of the plot area.
	SideRight
)

// Label is a series name placed beside its panel.
type Label struct {
	Text string
	X, Y float64
	Side Side
}

// Panel is one series' strip of the stacked plot.
type Panel struct {
	Name   string
	Bounds Rect
	// Lines are the runs of consecutive recorded values; a line breaks
	// wherever the series was not recorded.
	Lines [][]Point
	Label Label
}

// Layout stacks one panel per series top to bottom in column order, with no
// gap between panels. All panels share the horizontal year axis; each is
// scaled vertically to its own value range. No ticks or spines are produced.
func Layout(table *timeseries.Table, size Size) []Panel {
	n := len(table.Series)
	if n == 0 || table.Len() == 0 {
		return nil
	}

	w, h := float64(size.Width), float64(size.Height)
	plotLeft := w * labelMargin
	plotRight := w * (1 - labelMargin)
	plotWidth := plotRight - plotLeft
	panelHeight := h / float64(n)

	firstYear := table.Years[0]
	yearSpan := float64(table.Years[table.Len()-1] - firstYear)
	xOf := func(year int) float64 {
		if yearSpan == 0 {
			return plotLeft + plotWidth/2
		}
		return plotLeft + float64(year-firstYear)/yearSpan*plotWidth
	}

	panels := make([]Panel, n)
	for i, s := range table.Series {
		bounds := Rect{
			MinX: plotLeft,
			MinY: float64(i) * panelHeight,
			MaxX: plotRight,
			MaxY: float64(i+1) * panelHeight,
		}

		label := Label{Text: s.Name, Y: (bounds.MinY + bounds.MaxY) / 2}
		if i%2 == 0 {
			label.Side = SideLeft
			label.X = plotLeft - labelOffset*plotWidth
		} else {
			label.Side = SideRight
			label.X = plotRight + labelOffset*plotWidth
		}

		panels[i] = Panel{
			Name:   s.Name,
			Bounds: bounds,
			Lines:  seriesLines(table, s, bounds, xOf),
			Label:  label,
		}
	}
	return panels
}

func seriesLines(table *timeseries.Table, s *timeseries.Series, bounds Rect, xOf func(int) float64) [][]Point {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range s.Values {
		if s.Present(i) {
			lo = math.Min(lo, s.Values[i])
			hi = math.Max(hi, s.Values[i])
		}
	}

	pad := (bounds.MaxY - bounds.MinY) * panelPadding
	top, bottom := bounds.MinY+pad, bounds.MaxY-pad
	yOf := func(v float64) float64 {
		if hi == lo {
			return (top + bottom) / 2
		}
		return bottom - (v-lo)/(hi-lo)*(bottom-top)
	}

	var lines [][]Point
	var current []Point
	for i, v := range s.Values {
		if !s.Present(i) {
			if len(current) > 0 {
				lines = append(lines, current)
				current = nil
			}
			continue
		}
		current = append(current, Point{X: xOf(table.Years[i]), Y: yOf(v)})
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
