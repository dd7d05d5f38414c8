package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/logrusorgru/aurora"
)

const (
	termHome  = "\x1b[H"
	termClear = "\x1b[2J"
	deadGlyph = "  "
	liveGlyph = "██"
)

// TermTarget renders onto a terminal, one two-column glyph per cell. Fills
// are buffered and written by Flush as a single frame.
type TermTarget struct {
	out    io.Writer
	au     aurora.Aurora
	w, h   int
	scale  int
	cells  []string
	frame  bytes.Buffer
	primed bool
}

// NewTermTarget builds a target for a w x h cell grid painted at the given
// pixel scale. colors toggles ANSI colouring.
func NewTermTarget(out io.Writer, w, h, scale int, colors bool) *TermTarget {
	if scale < 1 {
		scale = 1
	}
	t := &TermTarget{
		out:   out,
		au:    aurora.NewAurora(colors),
		w:     w,
		h:     h,
		scale: scale,
		cells: make([]string, w*h),
	}
	for i := range t.cells {
		t.cells[i] = deadGlyph
	}
	return t
}

// Fill marks every cell touched by r with the glyph for c. Black is dead.
func (t *TermTarget) Fill(r image.Rectangle, c color.Color) error {
	x0, y0 := r.Min.X/t.scale, r.Min.Y/t.scale
	x1 := (r.Max.X + t.scale - 1) / t.scale
	y1 := (r.Max.Y + t.scale - 1) / t.scale
	glyph := t.glyph(c)
	for y := max(y0, 0); y < min(y1, t.h); y++ {
		for x := max(x0, 0); x < min(x1, t.w); x++ {
			t.cells[y*t.w+x] = glyph
		}
	}
	return nil
}

func (t *TermTarget) glyph(c color.Color) string {
	r, g, b, _ := c.RGBA()
	if r == 0 && g == 0 && b == 0 {
		return deadGlyph
	}
	return t.au.Index(ansi256(r, g, b), liveGlyph).String()
}

// Flush writes the buffered frame, homing the cursor first. The screen is
// cleared before the first frame.
func (t *TermTarget) Flush() error {
	t.frame.Reset()
	if !t.primed {
		t.frame.WriteString(termClear)
		t.primed = true
	}
	t.frame.WriteString(termHome)
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			t.frame.WriteString(t.cells[y*t.w+x])
		}
		t.frame.WriteByte('\n')
	}
	if _, err := t.out.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Status writes a one-line status below the grid.
func (t *TermTarget) Status(format string, args ...any) error {
	line := t.au.Faint(fmt.Sprintf(format, args...)).String()
	if _, err := fmt.Fprintf(t.out, "\x1b[K%s\n", line); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

// ansi256 maps 16-bit colour channels onto the 6x6x6 xterm cube.
func ansi256(r, g, b uint32) uint8 {
	q := func(v uint32) uint32 { return (v >> 8) * 5 / 255 }
	return uint8(16 + 36*q(r) + 6*q(g) + q(b))
}
