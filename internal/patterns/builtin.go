package patterns

var builtin = []struct {
	name, descr, rows string
}{
	{"block", "2x2 still life", `
oo
oo`},
	{"beehive", "six-cell still life", `
.oo.
o..o
.oo.`},
	{"blinker", "period-2 oscillator", `
ooo`},
	{"toad", "period-2 oscillator", `
.ooo
ooo.`},
	{"beacon", "period-2 oscillator", `
oo..
oo..
..oo
..oo`},
	{"glider", "moves one cell diagonally every four generations", `
.o.
..o
ooo`},
	{"lwss", "lightweight spaceship", `
.o..o
o....
o...o
oooo.`},
	{"r-pentomino", "methuselah that settles after 1103 generations", `
.oo
oo.
.o.`},
}

// Default returns a library with the built-in patterns.
func Default() *Library {
	l := NewLibrary()
	for _, b := range builtin {
		cells, err := Parse(b.rows)
		if err != nil {
			panic("patterns: bad builtin " + b.name + ": " + err.Error())
		}
		l.Add(Pattern{Name: b.name, Description: b.descr, Cells: cells})
	}
	return l
}
