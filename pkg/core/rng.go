package core

import "math/rand/v2"

// Bits draws booleans from a PCG stream, 64 cells per generator step.
// The generator is held by value so seeding a grid does not allocate.
type Bits struct {
	src  rand.PCG
	word uint64
	left uint
}

// NewBits returns a bit stream for seed. Equal seeds yield equal streams.
func NewBits(seed uint64) Bits {
	var b Bits
	b.src.Seed(seed, 0)
	return b
}

// Bool returns the next bit, least significant bit of each word first.
func (b *Bits) Bool() bool {
	if b.left == 0 {
		b.word = b.src.Uint64()
		b.left = 64
	}
	v := b.word&1 == 1
	b.word >>= 1
	b.left--
	return v
}
