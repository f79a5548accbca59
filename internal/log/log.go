// Package log carries a zerolog logger through a context.
package log

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

var nop = zerolog.Nop()

// New returns a logger writing to w that discards events below level.
func New(w io.Writer, level zerolog.Level) *zerolog.Logger {
	lg := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &lg
}

// ParseLevel maps a level name such as "debug" or "warn" to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Set returns a copy of ctx that carries lg. Get retrieves it.
func Set(ctx context.Context, lg *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, lg)
}

// Get returns the logger stored in ctx, or a disabled logger if there is none.
func Get(ctx context.Context) *zerolog.Logger {
	if lg, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && lg != nil {
		return lg
	}
	return &nop
}
