package life

import (
	"errors"
	"math"
	"testing"
)

func newPlane(t *testing.T, w, h int) *Plane {
	t.Helper()
	p, err := New(w, h, 256)
	if err != nil {
		t.Fatalf("New(%d, %d, 256): %v", w, h, err)
	}
	return p
}

func setAll(p *Plane, cells [][2]int) {
	for _, c := range cells {
		p.Set(c[0], c[1], true)
	}
}

// expectLive fails unless exactly the listed cells are live.
func expectLive(t *testing.T, p *Plane, cells [][2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		want[c] = true
	}
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if p.Point(x, y) != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v\n%s", x, y, p.Point(x, y), want[[2]int{x, y}], p)
			}
		}
	}
}

func TestNewCapacityBound(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {4, 4}, {6, 6}, {7, 3}, {160, 120}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		need := (w + 1) * (h + 1)

		p, err := New(w, h, need)
		if err != nil {
			t.Fatalf("%dx%d at exact bound: %v", w, h, err)
		}
		if p.Width() != w || p.Height() != h {
			t.Fatalf("size = %dx%d, expected %dx%d", p.Width(), p.Height(), w, h)
		}
		if p.Capacity() < Footprint(w, h) {
			t.Fatalf("%dx%d capacity %d below footprint %d", w, h, p.Capacity(), Footprint(w, h))
		}

		_, err = New(w, h, need-1)
		if !errors.Is(err, ErrCapacityTooSmall) {
			t.Fatalf("%dx%d below bound: err=%v, expected ErrCapacityTooSmall", w, h, err)
		}
		var capErr *CapacityError
		if !errors.As(err, &capErr) {
			t.Fatalf("%dx%d: err %T is not a *CapacityError", w, h, err)
		}
		if capErr.Required != need || capErr.Capacity != need-1 {
			t.Fatalf("%dx%d: CapacityError = %+v", w, h, capErr)
		}
	}
}

func TestNewKeepsLargerCapacity(t *testing.T) {
	p := newPlane(t, 4, 4)
	if p.Capacity() != 256 {
		t.Fatalf("capacity = %d, expected 256", p.Capacity())
	}
}

func TestNewRejectsNegativeSize(t *testing.T) {
	if _, err := New(-1, 4, 256); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("New(-1, 4): err=%v, expected ErrInvalidSize", err)
	}
	if _, err := NewWithStorage(4, -2, make([]bool, 64), make([]bool, 64)); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewWithStorage(4, -2): err=%v, expected ErrInvalidSize", err)
	}
}

func TestNewRejectsOverflowingSize(t *testing.T) {
	sizes := [][2]int{
		{math.MaxInt, 1},
		{1, math.MaxInt},
		{math.MaxInt - 1, 0},
		{math.MaxInt - 2, 0},
		{math.MaxInt / 4, 3},
		{math.MaxInt / 2, 1},
	}
	for _, s := range sizes {
		p, err := New(s[0], s[1], 0)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d, %d, 0): plane=%v err=%v, expected ErrInvalidSize", s[0], s[1], p != nil, err)
		}
		if _, err := NewWithStorage(s[0], s[1], make([]bool, 16), make([]bool, 16)); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewWithStorage(%d, %d): err=%v, expected ErrInvalidSize", s[0], s[1], err)
		}
	}
}

func TestNewWithStorage(t *testing.T) {
	cur := make([]bool, Footprint(4, 4))
	next := make([]bool, Footprint(4, 4))
	cur[0] = true
	next[5] = true

	p, err := NewWithStorage(4, 4, cur, next)
	if err != nil {
		t.Fatalf("NewWithStorage: %v", err)
	}
	if cur[0] || next[5] {
		t.Fatalf("caller buffers were not cleared")
	}

	p.Set(0, 0, true)
	if !cur[p.index(0, 0)] {
		t.Fatalf("plane did not write into the caller buffer")
	}

	short := Footprint(4, 4) - 1
	if _, err := NewWithStorage(4, 4, make([]bool, short), make([]bool, short)); !errors.Is(err, ErrCapacityTooSmall) {
		t.Fatalf("short buffers: err=%v, expected ErrCapacityTooSmall", err)
	}
	if _, err := NewWithStorage(4, 4, make([]bool, 64), make([]bool, 65)); !errors.Is(err, ErrStorageMismatch) {
		t.Fatalf("mismatched buffers: err=%v, expected ErrStorageMismatch", err)
	}
}

func TestPointOutOfRange(t *testing.T) {
	p := newPlane(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p.Set(x, y, true)
		}
	}
	outside := [][2]int{{4, 0}, {0, 4}, {4, 4}, {-1, 0}, {0, -1}, {1000, 1000}, {-1000, 2}}
	for _, c := range outside {
		if p.Point(c[0], c[1]) {
			t.Fatalf("Point(%d,%d) = true outside the grid", c[0], c[1])
		}
	}
}

func TestSetOutOfRangeLeavesPaddingDead(t *testing.T) {
	p := newPlane(t, 4, 4)
	for _, c := range [][2]int{{-1, -1}, {4, 0}, {0, 4}, {-1, 2}, {2, -1}, {4, 4}} {
		p.Set(c[0], c[1], true)
		p.Toggle(c[0], c[1])
	}
	if n := p.Population(); n != 0 {
		t.Fatalf("population = %d, expected 0", n)
	}
	for i, c := range p.board {
		if c {
			t.Fatalf("slot %d is live", i)
		}
	}
}

func TestToggle(t *testing.T) {
	p := newPlane(t, 4, 4)
	p.Toggle(2, 3)
	if !p.Point(2, 3) {
		t.Fatalf("toggle did not set the cell")
	}
	p.Toggle(2, 3)
	if p.Point(2, 3) {
		t.Fatalf("second toggle did not clear the cell")
	}
}

func TestAroundIndices(t *testing.T) {
	p := newPlane(t, 4, 4)
	if got, want := p.aroundIndices(0, 0), [8]int{0, 1, 2, 6, 8, 12, 13, 14}; got != want {
		t.Fatalf("aroundIndices(0,0) = %v, expected %v", got, want)
	}
	if got, want := p.aroundIndices(1, 0), [8]int{1, 2, 3, 7, 9, 13, 14, 15}; got != want {
		t.Fatalf("aroundIndices(1,0) = %v, expected %v", got, want)
	}
}

func TestAroundIndicesStayInStorage(t *testing.T) {
	w, h := 7, 5
	p, err := New(w, h, RequiredCapacity(w, h))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, i := range p.aroundIndices(x, y) {
				if i < 0 || i >= p.Capacity() {
					t.Fatalf("(%d,%d) neighbour slot %d outside [0,%d)", x, y, i, p.Capacity())
				}
			}
		}
	}
}

func TestTickStaticBox(t *testing.T) {
	p := newPlane(t, 4, 4)
	box := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	setAll(p, box)

	p.Advance()
	expectLive(t, p, box)
}

func TestTickInteriorBlock(t *testing.T) {
	p := newPlane(t, 6, 6)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	setAll(p, block)

	if p.Advance() {
		t.Fatalf("block reported a change")
	}
	expectLive(t, p, block)
}

func TestTickBlinker(t *testing.T) {
	p := newPlane(t, 6, 6)
	horizontal := [][2]int{{0, 1}, {1, 1}, {2, 1}}
	setAll(p, horizontal)

	if !p.Advance() {
		t.Fatalf("first advance reported no change")
	}
	expectLive(t, p, [][2]int{{1, 0}, {1, 1}, {1, 2}})

	if !p.Advance() {
		t.Fatalf("second advance reported no change")
	}
	expectLive(t, p, horizontal)
	if p.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", p.Generation())
	}
}

func TestTickGliderTranslates(t *testing.T) {
	p := newPlane(t, 10, 10)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	setAll(p, glider)

	for i := 0; i < 4; i++ {
		p.Advance()
	}
	moved := make([][2]int, len(glider))
	for i, c := range glider {
		moved[i] = [2]int{c[0] + 1, c[1] + 1}
	}
	expectLive(t, p, moved)
}

func TestTickLonelyCellsDie(t *testing.T) {
	p := newPlane(t, 5, 5)
	setAll(p, [][2]int{{0, 0}, {4, 4}})
	p.Advance()
	if n := p.Population(); n != 0 {
		t.Fatalf("population = %d, expected 0", n)
	}
	if p.Advance() {
		t.Fatalf("empty grid reported a change")
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := newPlane(t, 12, 9)
	b := newPlane(t, 12, 9)
	a.Seed(1234)
	b.Seed(1234)
	if a.String() != b.String() {
		t.Fatalf("same seed produced different grids:\n%s\n%s", a, b)
	}
	if a.Population() == 0 {
		t.Fatalf("seeded grid is empty")
	}

	c := newPlane(t, 12, 9)
	c.Seed(4321)
	if a.String() == c.String() {
		t.Fatalf("different seeds produced the same grid")
	}
}

func TestSeedLeavesPaddingDead(t *testing.T) {
	p := newPlane(t, 6, 5)
	p.Seed(99)
	for y := -1; y <= p.Height(); y++ {
		for x := -1; x <= p.Width(); x++ {
			if p.contains(x, y) {
				continue
			}
			if p.board[(y+1)*p.stride+x+1] {
				t.Fatalf("padding (%d,%d) is live", x, y)
			}
		}
	}
}

func TestSeedResetsGeneration(t *testing.T) {
	p := newPlane(t, 4, 4)
	p.Advance()
	p.Advance()
	p.Seed(3)
	if p.Generation() != 0 {
		t.Fatalf("generation = %d after Seed, expected 0", p.Generation())
	}
}

func TestChangedAfterAdvance(t *testing.T) {
	p := newPlane(t, 6, 6)
	setAll(p, [][2]int{{0, 1}, {1, 1}, {2, 1}})
	p.Advance()

	cases := []struct {
		x, y          int
		alive, redraw bool
	}{
		{1, 1, true, false},  // blinker centre stays live
		{1, 0, true, true},   // born
		{0, 1, false, true},  // died
		{5, 5, false, false}, // untouched
	}
	for _, c := range cases {
		alive, redraw := p.Changed(c.x, c.y)
		if alive != c.alive || redraw != c.redraw {
			t.Fatalf("Changed(%d,%d) = (%v, %v), expected (%v, %v)", c.x, c.y, alive, redraw, c.alive, c.redraw)
		}
	}
}

func TestChangedMatchesPreviousGeneration(t *testing.T) {
	p := newPlane(t, 16, 16)
	p.Seed(77)
	for gen := 0; gen < 5; gen++ {
		before := snapshot(p)
		p.Advance()
		for y := 0; y < p.Height(); y++ {
			for x := 0; x < p.Width(); x++ {
				alive, redraw := p.Changed(x, y)
				was := before[y*p.Width()+x]
				now := p.Point(x, y)
				if redraw != (was != now) {
					t.Fatalf("gen %d (%d,%d): redraw=%v, was=%v now=%v", gen, x, y, redraw, was, now)
				}
				if redraw && alive != now {
					t.Fatalf("gen %d (%d,%d): alive=%v, expected %v", gen, x, y, alive, now)
				}
			}
		}
	}
}

func TestChangedOutOfRange(t *testing.T) {
	p := newPlane(t, 4, 4)
	for _, c := range [][2]int{{4, 0}, {-1, 2}} {
		alive, redraw := p.Changed(c[0], c[1])
		if alive || !redraw {
			t.Fatalf("Changed(%d,%d) = (%v, %v), expected (false, true)", c[0], c[1], alive, redraw)
		}
	}
}

func TestChangedAfterSeedAndClear(t *testing.T) {
	p := newPlane(t, 8, 8)
	p.Seed(5)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			alive, redraw := p.Changed(x, y)
			if redraw != p.Point(x, y) || (redraw && !alive) {
				t.Fatalf("after seed (%d,%d): Changed = (%v, %v), live=%v", x, y, alive, redraw, p.Point(x, y))
			}
		}
	}

	seeded := snapshot(p)
	p.Clear()
	if n := p.Population(); n != 0 {
		t.Fatalf("population after Clear = %d", n)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			alive, redraw := p.Changed(x, y)
			if alive || redraw != seeded[y*8+x] {
				t.Fatalf("after clear (%d,%d): Changed = (%v, %v), was live=%v", x, y, alive, redraw, seeded[y*8+x])
			}
		}
	}
}

func TestString(t *testing.T) {
	p := newPlane(t, 3, 2)
	setAll(p, [][2]int{{0, 0}, {2, 1}})
	if got, want := p.String(), "o x x \nx x o \n"; got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}
}

func TestAdvanceAndSeedDoNotAllocate(t *testing.T) {
	p := newPlane(t, 12, 12)
	allocs := testing.AllocsPerRun(20, func() {
		p.Seed(11)
		p.Advance()
	})
	if allocs != 0 {
		t.Fatalf("Seed+Advance allocated %.0f times", allocs)
	}
}

func snapshot(p *Plane) []bool {
	out := make([]bool, 0, p.Width()*p.Height())
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			out = append(out, p.Point(x, y))
		}
	}
	return out
}

func BenchmarkAdvance(b *testing.B) {
	p, err := New(160, 120, 65536)
	if err != nil {
		b.Fatal(err)
	}
	p.Seed(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Advance()
	}
}
