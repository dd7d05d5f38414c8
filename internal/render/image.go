package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ImageTarget paints into an in-memory RGBA image.
type ImageTarget struct {
	img *image.RGBA
}

// NewImageTarget allocates a black w x h pixel surface.
func NewImageTarget(w, h int) *ImageTarget {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRectRGBA(img, img.Bounds(), color.Black)
	return &ImageTarget{img: img}
}

// Fill paints r clipped to the image bounds.
func (t *ImageTarget) Fill(r image.Rectangle, c color.Color) error {
	r = r.Intersect(t.img.Bounds())
	if r.Empty() {
		return nil
	}
	fillRectRGBA(t.img, r, c)
	return nil
}

// Image exposes the backing image.
func (t *ImageTarget) Image() *image.RGBA { return t.img }

// WritePNG encodes the current surface as PNG.
func (t *ImageTarget) WritePNG(w io.Writer) error {
	if err := png.Encode(w, t.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
