// Package render draws Life grids onto pixel surfaces.
//
// A Painter walks a Grid and issues one rectangular fill per cell that
// changed since the previous generation; the Target behind it can be an
// in-memory image, a terminal or an ebiten image.
package render

import (
	"image"
	"image/color"
)

// Target accepts rectangle fills in pixel coordinates.
type Target interface {
	Fill(r image.Rectangle, c color.Color) error
}

// Flusher is implemented by targets that buffer fills until a frame is
// complete.
type Flusher interface {
	Flush() error
}

// Grid is the cell surface a Painter reads.
type Grid interface {
	Width() int
	Height() int
	Point(x, y int) bool
	Changed(x, y int) (alive, redraw bool)
}
