package render

import (
	"context"

	"github.com/sartorproj/treering/timeseries"
)

// Renderer displays a table.
type Renderer interface {
	Render(ctx context.Context, table *timeseries.Table) error
}

// Nop is a Renderer that shows nothing.
type Nop struct{}

// Render ignores the table and returns nil.
func (Nop) Render(context.Context, *timeseries.Table) error { return nil }
