// Package life implements Conway's Game of Life (B3/S23) on a bounded,
// border-padded grid.
//
// Storage is two flat buffers of booleans, one for the current generation
// and one scratch buffer that Advance writes into before the two are
// swapped. Every logical row is stored with one dead cell on each side and
// the whole grid has a dead row above and below it, so the eight neighbours
// of any logical cell are always valid slots and neighbour counting needs
// no bounds checks.
package life

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tiny-life/pkg/core"
)

var (
	// ErrCapacityTooSmall reports that a capacity bound cannot hold the
	// requested grid.
	ErrCapacityTooSmall = errors.New("life: capacity too small")
	// ErrInvalidSize reports negative grid dimensions, or dimensions whose
	// padded footprint does not fit in an int.
	ErrInvalidSize = errors.New("life: invalid size")
	// ErrStorageMismatch reports caller buffers of different lengths.
	ErrStorageMismatch = errors.New("life: storage buffers differ in length")
)

// CapacityError describes a rejected construction. It matches
// ErrCapacityTooSmall under errors.Is.
type CapacityError struct {
	Width, Height int
	Capacity      int
	Required      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("life: capacity %d cannot hold a %dx%d grid (need %d)",
		e.Capacity, e.Width, e.Height, e.Required)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityTooSmall }

// RequiredCapacity is the smallest capacity bound New accepts for a grid.
func RequiredCapacity(w, h int) int { return (w + 1) * (h + 1) }

// Footprint is the number of slots the padded layout addresses for a grid.
func Footprint(w, h int) int { return (w + 2) * (h + 2) }

// Plane is a fixed-size Life grid. It is not safe for concurrent use.
type Plane struct {
	board  []bool
	next   []bool
	width  int
	height int
	stride int
	gen    uint64
}

// New returns an all-dead plane of width x height cells. The capacity
// bound must be at least RequiredCapacity(width, height); each buffer is
// sized to the larger of capacity and Footprint(width, height) and never
// grows afterwards.
func New(width, height, capacity int) (*Plane, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if need := RequiredCapacity(width, height); capacity < need {
		return nil, &CapacityError{Width: width, Height: height, Capacity: capacity, Required: need}
	}
	n := max(capacity, Footprint(width, height))
	return &Plane{
		board:  make([]bool, n),
		next:   make([]bool, n),
		width:  width,
		height: height,
		stride: width + 2,
	}, nil
}

// NewWithStorage builds a plane over caller-owned buffers without
// allocating. Both buffers must have the same length of at least
// Footprint(width, height); they are cleared before use.
func NewWithStorage(width, height int, cur, next []bool) (*Plane, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(cur) != len(next) {
		return nil, fmt.Errorf("%w: %d != %d", ErrStorageMismatch, len(cur), len(next))
	}
	if need := Footprint(width, height); len(cur) < need {
		return nil, &CapacityError{Width: width, Height: height, Capacity: len(cur), Required: need}
	}
	clear(cur)
	clear(next)
	return &Plane{board: cur, next: next, width: width, height: height, stride: width + 2}, nil
}

func checkSize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w > math.MaxInt-2 || h > math.MaxInt-2 || w+2 > math.MaxInt/(h+2) {
		return fmt.Errorf("%w: %dx%d overflows the padded layout", ErrInvalidSize, w, h)
	}
	return nil
}

// Width returns the logical width.
func (p *Plane) Width() int { return p.width }

// Height returns the logical height.
func (p *Plane) Height() int { return p.height }

// Capacity returns the length of each storage buffer.
func (p *Plane) Capacity() int { return len(p.board) }

// Generation counts advances since construction or the last Seed/Clear.
func (p *Plane) Generation() uint64 { return p.gen }

func (p *Plane) index(x, y int) int {
	return (y+1)*p.stride + x + 1
}

func (p *Plane) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Point reports whether (x, y) is live. Cells outside the grid are dead.
func (p *Plane) Point(x, y int) bool {
	if !p.contains(x, y) {
		return false
	}
	return p.board[p.index(x, y)]
}

// Set stores v at (x, y). Writes outside the grid are ignored.
func (p *Plane) Set(x, y int, v bool) {
	if !p.contains(x, y) {
		return
	}
	p.board[p.index(x, y)] = v
}

// Toggle flips (x, y). Cells outside the grid are ignored.
func (p *Plane) Toggle(x, y int) {
	if !p.contains(x, y) {
		return
	}
	i := p.index(x, y)
	p.board[i] = !p.board[i]
}

// aroundIndices lists the storage slots of the eight neighbours of (x, y),
// row above first. The padding ring keeps every slot in range.
func (p *Plane) aroundIndices(x, y int) [8]int {
	i := p.index(x, y)
	above := i - p.stride
	below := i + p.stride
	return [8]int{above - 1, above, above + 1, i - 1, i + 1, below - 1, below, below + 1}
}

// isLive applies B3/S23 to (x, y) against the current generation.
func (p *Plane) isLive(x, y int) bool {
	n := 0
	for _, i := range p.aroundIndices(x, y) {
		if p.board[i] {
			n++
		}
	}
	if p.board[p.index(x, y)] {
		return n == 2 || n == 3
	}
	return n == 3
}

// Advance computes the next generation into the scratch buffer and swaps
// the buffers. It reports whether any cell changed.
func (p *Plane) Advance() bool {
	changed := false
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			i := p.index(x, y)
			live := p.isLive(x, y)
			p.next[i] = live
			if live != p.board[i] {
				changed = true
			}
		}
	}
	p.board, p.next = p.next, p.board
	p.gen++
	return changed
}

// Changed reports whether (x, y) differs from the preceding generation.
// redraw is false when the cell is unchanged; otherwise alive is its new
// state. Cells outside the grid report (false, true).
func (p *Plane) Changed(x, y int) (alive, redraw bool) {
	if !p.contains(x, y) {
		return false, true
	}
	i := p.index(x, y)
	return p.board[i], p.board[i] != p.next[i]
}

// Seed fills every logical cell from the bit stream for seed, row by row
// and left to right. Padding stays dead. The previous state becomes the
// baseline for Changed.
func (p *Plane) Seed(seed uint64) {
	copy(p.next, p.board)
	bits := core.NewBits(seed)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.board[p.index(x, y)] = bits.Bool()
		}
	}
	p.gen = 0
}

// Clear kills every cell. The previous state becomes the baseline for
// Changed.
func (p *Plane) Clear() {
	copy(p.next, p.board)
	clear(p.board)
	p.gen = 0
}

// Population counts live cells.
func (p *Plane) Population() int {
	n := 0
	// padding is always dead
	for _, c := range p.board {
		if c {
			n++
		}
	}
	return n
}

// String renders one line per row, "o " for live and "x " for dead cells.
func (p *Plane) String() string {
	var b strings.Builder
	b.Grow(p.height * (2*p.width + 1))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.board[p.index(x, y)] {
				b.WriteString("o ")
			} else {
				b.WriteString("x ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
