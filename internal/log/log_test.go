package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/longbridgeapp/assert"
	"github.com/rs/zerolog"
)

func TestGetWithoutLogger(t *testing.T) {
	lg := Get(context.Background())
	assert.True(t, lg != nil)
	assert.Equal(t, zerolog.Disabled, lg.GetLevel())
}

func TestSetGet(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, zerolog.InfoLevel)
	ctx := Set(context.Background(), lg)

	Get(ctx).Info().Str("file", "rings.csv").Msg("loaded")
	Get(ctx).Debug().Msg("hidden")

	out := buf.String()
	assert.True(t, bytes.Contains([]byte(out), []byte("loaded")))
	assert.True(t, bytes.Contains([]byte(out), []byte("rings.csv")))
	assert.False(t, bytes.Contains([]byte(out), []byte("hidden")))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.True(t, err != nil)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
