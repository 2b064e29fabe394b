// Package rng provides the randomness abstraction used by room, monster and
// loot generation.
//
// Production code wires a seeded math/rand generator; tests wire a Script
// to force exact rolls.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness provider for generation.
//
// Implementations are not required to be safe for concurrent use; the game
// loop is single-threaded.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
	// Int63 returns a non-negative random int64.
	Int63() int64
}

// Factory builds a Source from a seed. Room generation uses one per room.
type Factory func(seed int64) Source

// New returns a Source backed by math/rand seeded with seed.
// The same seed always yields the same sequence.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a uniform int in the inclusive range [min, max].
//
// Precondition: min <= max.
func IntRange(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Pick returns a uniformly chosen element of items, or the zero value and
// false when items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}
