// Package window shows the stacked ring-width plot in a desktop window.
package window

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hyp3rd/ewrap"
	"golang.org/x/image/font/basicfont"

	"github.com/sartorproj/treering/internal/log"
	"github.com/sartorproj/treering/internal/sentinel"
	"github.com/sartorproj/treering/render"
	"github.com/sartorproj/treering/timeseries"
)

var (
	background = color.White
	lineColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	labelColor = color.Black
)

// Renderer opens a window and draws the table until the window is closed or
// Escape is pressed.
type Renderer struct {
	Title  string
	Width  int
	Height int
}

// New returns a Renderer for a window of the given size.
func New(title string, width, height int) *Renderer {
	return &Renderer{
		Title:  title,
		Width:  width,
		Height: height,
	}
}

// Render blocks until the window closes. It must be called from the main
// goroutine.
func (r *Renderer) Render(ctx context.Context, table *timeseries.Table) error {
	size := render.Size{Width: r.Width, Height: r.Height}
	g := &plotGame{
		ctx:    ctx,
		size:   size,
		panels: render.Layout(table, size),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}

	log.Get(ctx).Debug().Int("panels", len(g.panels)).Str("title", r.Title).Msg("opening plot window")

	ebiten.SetWindowTitle(r.Title)
	ebiten.SetWindowSize(r.Width, r.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return ewrap.Wrap(sentinel.ErrRender, err.Error())
	}
	return nil
}

var _ render.Renderer = (*Renderer)(nil)

type plotGame struct {
	ctx    context.Context
	size   render.Size
	panels []render.Panel
	face   text.Face
}

func (g *plotGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *plotGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, p := range g.panels {
		for _, line := range p.Lines {
			if len(line) == 1 {
				vector.DrawFilledCircle(screen, float32(line[0].X), float32(line[0].Y), 1.5, lineColor, true)
				continue
			}
			for i := 1; i < len(line); i++ {
				a, b := line[i-1], line[i]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, lineColor, true)
			}
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(p.Label.X, p.Label.Y)
		op.ColorScale.ScaleWithColor(labelColor)
		op.SecondaryAlign = text.AlignCenter
		if p.Label.Side == render.SideLeft {
			op.PrimaryAlign = text.AlignEnd
		}
		text.Draw(screen, p.Label.Text, g.face, op)
	}
}

func (g *plotGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.Width, g.size.Height
}
