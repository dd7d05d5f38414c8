//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenTarget paints into a persistent ebiten image so that only changed
// cells need to be filled each frame.
type EbitenTarget struct {
	canvas *ebiten.Image
}

// NewEbitenTarget allocates a black w x h canvas.
func NewEbitenTarget(w, h int) *EbitenTarget {
	canvas := ebiten.NewImage(w, h)
	canvas.Fill(color.Black)
	return &EbitenTarget{canvas: canvas}
}

// Fill paints r clipped to the canvas.
func (t *EbitenTarget) Fill(r image.Rectangle, c color.Color) error {
	r = r.Intersect(t.canvas.Bounds())
	if r.Empty() {
		return nil
	}
	t.canvas.SubImage(r).(*ebiten.Image).Fill(c)
	return nil
}

// Blit draws the canvas onto dst at the origin.
func (t *EbitenTarget) Blit(dst *ebiten.Image) {
	dst.DrawImage(t.canvas, &ebiten.DrawImageOptions{})
}

// Size returns the canvas dimensions in pixels.
func (t *EbitenTarget) Size() (int, int) {
	b := t.canvas.Bounds()
	return b.Dx(), b.Dy()
}
