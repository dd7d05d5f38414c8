// Package patterns holds named seed templates that can be stamped onto a
// grid instead of, or on top of, a random fill.
package patterns

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
)

// ErrUnknownPattern is returned when a library has no pattern by that name.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       []image.Point
}

// Setter is the write side of a grid.
type Setter interface {
	Set(x, y int, v bool)
}

// Bounds returns the smallest rectangle holding every cell.
func (p Pattern) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, c := range p.Cells {
		cell := image.Rect(c.X, c.Y, c.X+1, c.Y+1)
		if i == 0 {
			r = cell
			continue
		}
		r = r.Union(cell)
	}
	return r
}

// Place sets the pattern's cells live at offset (ox, oy). Cells that land
// outside the grid are dropped by the grid itself.
func Place(g Setter, p Pattern, ox, oy int) {
	for _, c := range p.Cells {
		g.Set(ox+c.X, oy+c.Y, true)
	}
}

// Center returns the offset that centres p on a w x h grid.
func Center(p Pattern, w, h int) (int, int) {
	b := p.Bounds()
	return (w-b.Dx())/2 - b.Min.X, (h-b.Dy())/2 - b.Min.Y
}

// Parse reads rows of cells. 'o', 'O', '#' and '*' are live; 'x', 'X'
// and '.' are dead. Spaces separate columns and are ignored, so the output
// of a grid's String method parses back to the same cells.
func Parse(rows string) ([]image.Point, error) {
	var cells []image.Point
	lines := strings.Split(strings.Trim(rows, "\n"), "\n")
	for y, line := range lines {
		x := 0
		for _, r := range line {
			switch r {
			case ' ', '\t', '\r':
				continue
			case 'o', 'O', '#', '*':
				cells = append(cells, image.Pt(x, y))
			case 'x', 'X', '.':
			default:
				return nil, fmt.Errorf("row %d column %d: unexpected %q", y, x, r)
			}
			x++
		}
	}
	return cells, nil
}

// Library is a named pattern catalogue.
type Library struct {
	patterns map[string]Pattern
}

// NewLibrary returns a library holding ps.
func NewLibrary(ps ...Pattern) *Library {
	l := &Library{patterns: make(map[string]Pattern, len(ps))}
	for _, p := range ps {
		l.Add(p)
	}
	return l
}

// Add registers p, replacing any pattern of the same name. Unnamed
// patterns are ignored.
func (l *Library) Add(p Pattern) {
	if p.Name == "" {
		return
	}
	l.patterns[p.Name] = p
}

// Get looks a pattern up by name.
func (l *Library) Get(name string) (Pattern, error) {
	p, ok := l.patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists pattern names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.patterns))
	for name := range l.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
