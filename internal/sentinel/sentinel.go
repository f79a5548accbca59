// Package sentinel provides the error values shared across the treering packages.
//
// Errors fall into two families. ErrUsage covers invocation mistakes that are
// reported with guidance and never touch the input file. ErrLoad covers every
// failure to turn the input into a table; the more specific load errors below
// wrap it, so errors.Is(err, ErrLoad) holds for all of them.
//
// All errors are created using the ewrap package so callers can add context
// with ewrap.Wrap without losing the sentinel.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrUsage is returned when the command is invoked with the wrong arguments.
	ErrUsage = ewrap.New("usage error")

	// ErrLoad is returned when the input table cannot be loaded.
	ErrLoad = ewrap.New("load error")

	// ErrYearColumnMissing is returned when the header has no year column.
	ErrYearColumnMissing = ewrap.Wrap(ErrLoad, "year column missing")

	// ErrNoSeries is returned when the table has a year column but nothing else.
	ErrNoSeries = ewrap.Wrap(ErrLoad, "no series columns")

	// ErrNoData is returned when no series has a single recorded value.
	ErrNoData = ewrap.Wrap(ErrLoad, "no recorded values")

	// ErrDuplicateYear is returned when the same year appears on two rows.
	ErrDuplicateYear = ewrap.Wrap(ErrLoad, "duplicate year")

	// ErrInvalidYear is returned when a year cell is not an integer.
	ErrInvalidYear = ewrap.Wrap(ErrLoad, "invalid year")

	// ErrInvalidValue is returned when a measurement cell is not numeric.
	ErrInvalidValue = ewrap.Wrap(ErrLoad, "invalid value")

	// ErrRender is returned when the plot window cannot be shown.
	ErrRender = ewrap.New("render error")
)

type loadError struct {
	error
}

func (e loadError) Error() string { return ErrLoad.Error() + ": " + e.error.Error() }

func (e loadError) Is(target error) bool { return target == ErrLoad }

func (e loadError) Unwrap() error { return e.error }

// Load marks err as a load failure. err stays in the chain, so both
// errors.Is(result, ErrLoad) and errors.Is(result, err) hold.
func Load(err error, msg string) error {
	return loadError{ewrap.Wrap(err, msg)}
}
