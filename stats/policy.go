package stats

import (
	"math"
)

// Policy decides which recorded values count as measurements.
//
// Ring-width files use zero both for a genuinely missing ring and for "no
// sample taken", so a recorded value equal to MissingMarker is treated as
// missing. A real zero-width measurement cannot be told apart from a gap.
type Policy struct {
	MissingMarker float64
}

// DefaultPolicy returns the zero-as-missing policy.
func DefaultPolicy() Policy {
	return Policy{MissingMarker: 0}
}

// IsMissing reports whether v is a recorded missing-marker value.
func (p Policy) IsMissing(v float64) bool {
	return !math.IsNaN(v) && v == p.MissingMarker
}

// IsMeasurement reports whether v is recorded and not the missing marker.
func (p Policy) IsMeasurement(v float64) bool {
	return !math.IsNaN(v) && v != p.MissingMarker
}
