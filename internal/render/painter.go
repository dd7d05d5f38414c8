package render

import (
	"image"
	"image/color"
)

// DefaultLive is the colour of live cells when none is configured.
var DefaultLive = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// Painter maps cells to Scale x Scale pixel squares.
type Painter struct {
	Live  color.Color
	Dead  color.Color
	Scale int
}

// NewPainter returns a painter with black dead cells. A nil live colour
// selects DefaultLive and scales below one are raised to one.
func NewPainter(live color.Color, scale int) *Painter {
	if live == nil {
		live = DefaultLive
	}
	if scale < 1 {
		scale = 1
	}
	return &Painter{Live: live, Dead: color.Black, Scale: scale}
}

// Cell returns the pixel rectangle covered by cell (x, y).
func (p *Painter) Cell(x, y int) image.Rectangle {
	s := p.Scale
	return image.Rect(x*s, y*s, x*s+s, y*s+s)
}

// Bounds returns the pixel extent of g.
func (p *Painter) Bounds(g Grid) image.Rectangle {
	return image.Rect(0, 0, g.Width()*p.Scale, g.Height()*p.Scale)
}

// Paint fills every cell that changed since the previous generation and
// returns the number of fills issued. The first target error stops the
// pass and is returned as is.
func (p *Painter) Paint(g Grid, t Target) (int, error) {
	fills := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive, redraw := g.Changed(x, y)
			if !redraw {
				continue
			}
			if err := t.Fill(p.Cell(x, y), p.color(alive)); err != nil {
				return fills, err
			}
			fills++
		}
	}
	return fills, flush(t)
}

// PaintAll fills every cell regardless of change, for a fresh surface.
func (p *Painter) PaintAll(g Grid, t Target) (int, error) {
	fills := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if err := t.Fill(p.Cell(x, y), p.color(g.Point(x, y))); err != nil {
				return fills, err
			}
			fills++
		}
	}
	return fills, flush(t)
}

func (p *Painter) color(alive bool) color.Color {
	if alive {
		return p.Live
	}
	return p.Dead
}

func flush(t Target) error {
	if f, ok := t.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
