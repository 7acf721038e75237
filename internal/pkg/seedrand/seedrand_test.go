package seedrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	// Reference values from the shift-and-subtract hash with 32-bit
	// signed wraparound. These pin the cross-implementation contract.
	tests := []struct {
		seed string
		want int64
	}{
		{"test1", 110251487},
		{"test1_npcs", 734851090},
		{"test1_loot", 734790920},
		{"a", 97},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hashString(tt.seed), "seed %q", tt.seed)
	}
}

func TestNext_KnownSequence(t *testing.T) {
	s := New("test1")

	want := []float64{
		0.7364711934156378,
		0.12989111796982167,
		0.32860939643347054,
		0.6073173868312757,
		0.8703360768175583,
		0.2071716392318244,
	}
	for i, w := range want {
		assert.InDelta(t, w, s.Next(), 1e-15, "draw %d", i)
	}
}

func TestNext_Deterministic(t *testing.T) {
	a := New("dragon-lair")
	b := New("dragon-lair")

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestNext_SeedSensitivity(t *testing.T) {
	a := New("test1")
	b := New("test2")

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "adjacent seeds produced identical streams")
}

func TestNext_Range(t *testing.T) {
	s := New("range-check")
	for i := 0; i < 10000; i++ {
		v := s.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestNextInt_InclusiveBounds(t *testing.T) {
	s := New("test1")

	want := []int{8, 2, 4, 7, 9, 3}
	for i, w := range want {
		assert.Equal(t, w, s.NextInt(1, 10), "draw %d", i)
	}

	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := s.NextInt(4, 8)
		require.GreaterOrEqual(t, v, 4)
		require.LessOrEqual(t, v, 8)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "both endpoints should be reachable")
}

func TestNextInt_DegenerateRange(t *testing.T) {
	s := New("single")
	for i := 0; i < 10; i++ {
		assert.Equal(t, 7, s.NextInt(7, 7))
	}
}

func TestChoice(t *testing.T) {
	s := New("test1")
	items := []string{"Goblin", "Skeleton", "Orc"}

	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Choice(s, items))
	}
}

func TestChoice_PanicsOnEmpty(t *testing.T) {
	s := New("test1")
	assert.Panics(t, func() {
		Choice(s, []string{})
	})
}

func TestShuffle(t *testing.T) {
	s := New("test1")
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	original := []int{1, 2, 3, 4, 5, 6, 7, 8}

	shuffled := Shuffle(s, input)

	assert.Equal(t, original, input, "input must be left untouched")
	assert.ElementsMatch(t, original, shuffled, "shuffle must be a permutation")

	// Same seed, same permutation.
	s2 := New("test1")
	assert.Equal(t, shuffled, Shuffle(s2, input))
}

func TestWeightedChoice(t *testing.T) {
	s := New("test1")
	items := []string{"common", "uncommon", "rare"}
	weights := []float64{70, 25, 5}

	for i := 0; i < 100; i++ {
		assert.Contains(t, items, WeightedChoice(s, items, weights))
	}
}

func TestWeightedChoice_ZeroWeightsReturnFirst(t *testing.T) {
	// With an all-zero weight table the remainder starts at zero, so the
	// first subtraction already satisfies <= 0 and the first item wins.
	// The fallback to the last item only triggers on floating-point edge
	// cases where the remainder never crosses zero.
	s := New("test1")
	items := []string{"a", "b"}
	assert.Equal(t, "a", WeightedChoice(s, items, []float64{0, 0}))
}

func TestWeightedChoice_Panics(t *testing.T) {
	s := New("test1")
	assert.Panics(t, func() {
		WeightedChoice(s, []string{}, []float64{})
	})
	assert.Panics(t, func() {
		WeightedChoice(s, []string{"a"}, []float64{1, 2})
	})
}

func TestBernoulli(t *testing.T) {
	always := New("gate")
	for i := 0; i < 100; i++ {
		require.True(t, always.Bernoulli(1.1))
	}

	never := New("gate")
	for i := 0; i < 100; i++ {
		require.False(t, never.Bernoulli(0))
	}
}
