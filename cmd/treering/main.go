// Command treering summarizes a tree-ring width table and plots its series.
//
// Usage:
//
//	treering [flags] <file.csv>
//
// The input needs a Year column; every other column is a sample series.
// The summary goes to standard output and the stacked plot opens in a window.
package main

import (
	"context"
	"os"

	"github.com/sartorproj/treering/render"
	"github.com/sartorproj/treering/render/window"
)

func main() {
	newRenderer := func(title string, width, height int) render.Renderer {
		return window.New(title, width, height)
	}
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, newRenderer))
}
