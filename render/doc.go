// Package render lays out the stacked ring-width plot.
//
// Layout turns a table into pixel-space panels, one per series, that any
// drawing surface can paint. The window subpackage paints them in a desktop
// window; Nop stands in where no display is wanted.
//
//	panels := render.Layout(table, render.Size{Width: 900, Height: 700})
//	for _, p := range panels {
//	    for _, line := range p.Lines {
//	        // draw line
//	    }
//	}
package render
