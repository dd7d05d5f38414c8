package session

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// SeedSource supplies seeds for reseeding. The grid never reads a clock or
// entropy source itself.
type SeedSource func() (uint64, error)

// ClockSeed seeds from the wall clock.
func ClockSeed() (uint64, error) {
	return uint64(time.Now().UnixNano()), nil
}

// CryptoSeed seeds from crypto/rand.
func CryptoSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// FixedSeed always returns s.
func FixedSeed(s uint64) SeedSource {
	return func() (uint64, error) { return s, nil }
}

// SequenceSeed returns start, start+1, ... on successive calls.
func SequenceSeed(start uint64) SeedSource {
	next := start
	return func() (uint64, error) {
		s := next
		next++
		return s, nil
	}
}
