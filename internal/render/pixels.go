package render

import (
	"image"
	"image/color"
)

// fillRectRGBA writes c into every pixel of r. r must lie within img.
func fillRectRGBA(img *image.RGBA, r image.Rectangle, c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	px := [4]byte{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			copy(img.Pix[base:base+4], px[:])
			base += 4
		}
	}
}
