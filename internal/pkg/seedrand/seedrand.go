// Package seedrand implements the deterministic seeded random source used by
// every generator in the pipeline.
//
// The generator is a small linear congruential generator whose constants and
// string hash are fixed by the output contract: two runs with the same seed
// string must produce the same draw sequence on every platform, and the
// sequence must match other implementations that share the same constants.
// Treat the hash and LCG step as bit-exact algorithms, not tuning knobs.
package seedrand

import (
	"math"
	"unicode/utf16"
)

// LCG constants. These are part of the cross-implementation contract and
// must not change.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source is a deterministic random source seeded from a string. It is not
// safe for concurrent use; each generation pass owns exactly one Source.
// Subsystems whose streams must diverge (dungeon structure, NPCs, loot)
// derive distinct seed strings from the same base seed.
type Source struct {
	state int64
}

// New creates a Source seeded from the given string.
func New(seed string) *Source {
	return &Source{state: hashString(seed)}
}

// hashString turns a seed string into the initial LCG state. It is the
// classic shift-and-subtract hash over UTF-16 code units with 32-bit signed
// wraparound, followed by absolute value. The state is kept in an int64 so
// |MinInt32| is representable.
func hashString(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Next advances the state one LCG step and returns a float in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// NextInt returns an integer in [minValue, maxValue], inclusive on both ends.
func (s *Source) NextInt(minValue, maxValue int) int {
	return int(math.Floor(s.Next()*float64(maxValue-minValue+1))) + minValue
}

// Bernoulli consumes one draw and reports whether it fell below p.
func (s *Source) Bernoulli(p float64) bool {
	return s.Next() < p
}

// Choice returns a uniformly drawn element of items. It panics on an empty
// slice: an empty vocabulary table is a programmer error, and failing fast
// beats returning a sentinel.
func Choice[T any](s *Source, items []T) T {
	if len(items) == 0 {
		panic("seedrand: Choice called on empty slice")
	}
	return items[s.NextInt(0, len(items)-1)]
}

// Shuffle returns a new Fisher-Yates shuffled copy of items, leaving the
// input untouched.
func Shuffle[T any](s *Source, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.NextInt(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// WeightedChoice draws an element of items with probability proportional to
// its weight, by cumulative subtraction. On floating-point edge cases where
// the remainder never reaches zero it falls back to the last item; downstream
// outputs depend on that behavior, so it is preserved rather than "fixed".
// Panics if items is empty or the slices differ in length.
func WeightedChoice[T any](s *Source, items []T, weights []float64) T {
	if len(items) == 0 {
		panic("seedrand: WeightedChoice called on empty slice")
	}
	if len(items) != len(weights) {
		panic("seedrand: WeightedChoice items and weights differ in length")
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	remaining := s.Next() * total
	for i, item := range items {
		remaining -= weights[i]
		if remaining <= 0 {
			return item
		}
	}

	return items[len(items)-1]
}
