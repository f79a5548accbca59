package timeseries

import (
	"github.com/hyp3rd/ewrap"

	"github.com/sartorproj/treering/internal/sentinel"
)

// Table is an ordered set of series sharing one contiguous, ascending year index.
type Table struct {
	Years  []int
	Series []*Series
}

// NewTable creates a table, checking that years ascend by one and that every
// series is as long as the index.
func NewTable(years []int, series []*Series) (*Table, error) {
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return nil, ewrap.Wrapf(sentinel.ErrLoad, "year index not contiguous at %d", years[i])
		}
	}
	for _, s := range series {
		if s.Len() != len(years) {
			return nil, ewrap.Wrapf(sentinel.ErrLoad,
				"series %q has %d values for %d years", s.Name, s.Len(), len(years))
		}
	}
	return &Table{
		Years:  years,
		Series: series,
	}, nil
}

// Len returns the number of rows in the year index.
func (t *Table) Len() int {
	return len(t.Years)
}

// Names returns the series names in column order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Series))
	for i, s := range t.Series {
		names[i] = s.Name
	}
	return names
}

// Column returns the series with the given name.
func (t *Table) Column(name string) (*Series, bool) {
	for _, s := range t.Series {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Row returns the values of every series at position i, in column order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.Series))
	for j, s := range t.Series {
		row[j] = s.Values[i]
	}
	return row
}

// ValidYears returns the first and last years of a series' valid range.
func (t *Table) ValidYears(s *Series) (first, last int, ok bool) {
	lo, hi, ok := s.ValidRange()
	if !ok {
		return 0, 0, false
	}
	return t.Years[lo], t.Years[hi], true
}

// Span returns the first and last years with a recorded value in any series.
func (t *Table) Span() (first, last int, ok bool) {
	for _, s := range t.Series {
		lo, hi, found := t.ValidYears(s)
		if !found {
			continue
		}
		if !ok || lo < first {
			first = lo
		}
		if !ok || hi > last {
			last = hi
		}
		ok = true
	}
	return first, last, ok
}
