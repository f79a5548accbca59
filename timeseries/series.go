package timeseries

import (
	"math"
)

// Series is one named column of a Table. Values are aligned to the table's
// year index; NaN marks a year the series was not recorded in.
type Series struct {
	Name   string
	Values []float64
}

// NewSeries creates a series from values aligned to a table's year index.
func NewSeries(name string, values []float64) *Series {
	return &Series{
		Name:   name,
		Values: values,
	}
}

// Len returns the number of positions in the series, recorded or not.
func (s *Series) Len() int {
	return len(s.Values)
}

// Present reports whether position i holds a recorded value.
func (s *Series) Present(i int) bool {
	return i >= 0 && i < len(s.Values) && !math.IsNaN(s.Values[i])
}

// ValidRange returns the first and last positions holding a recorded value.
// ok is false when the series has no recorded values at all.
func (s *Series) ValidRange() (first, last int, ok bool) {
	first = -1
	for i := range s.Values {
		if s.Present(i) {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	for i := len(s.Values) - 1; i >= first; i-- {
		if s.Present(i) {
			last = i
			break
		}
	}
	return first, last, true
}

// Count returns the number of recorded values.
func (s *Series) Count() int {
	n := 0
	for i := range s.Values {
		if s.Present(i) {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Name:   s.Name,
		Values: values,
	}
}
