package core

// Automaton is the grid surface front-ends drive: they advance it on a
// clock, reseed it when it stalls and redraw the cells that changed.
type Automaton interface {
	Width() int
	Height() int
	Point(x, y int) bool
	Set(x, y int, v bool)
	Clear()
	Changed(x, y int) (alive, redraw bool)
	Advance() bool
	Seed(seed uint64)
	Population() int
	Generation() uint64
}
