package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceSkipsExcluded(t *testing.T) {
	tests := []struct {
		drawn, exclude, expected Shape
	}{
		{J, I, J},
		{I, I, J},
		{O, O, S},
		{T, T, I},
		{T, None, T},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, advance(tc.drawn, tc.exclude),
			"advance(%s, %s)", tc.drawn, tc.exclude)
	}
}

func TestRandomizerNeverReturnsExcluded(t *testing.T) {
	r := NewRandomizer(7)
	for i := 0; i < 500; i++ {
		exclude := Shape(i%Count + 1)
		got := r.Next(exclude)
		assert.True(t, got.Valid())
		assert.NotEqual(t, exclude, got)
	}
}

func TestRandomizerBiasTowardsSuccessor(t *testing.T) {
	r := NewRandomizer(42)
	counts := map[Shape]int{}
	const draws = 70000
	for i := 0; i < draws; i++ {
		counts[r.Next(S)]++
	}

	assert.Zero(t, counts[S])
	// Z absorbs the S draws: expected twice the share of any other shape.
	assert.InDelta(t, 2*draws/7, counts[Z], draws/50)
	assert.InDelta(t, draws/7, counts[I], draws/50)
}

func TestRandomizerDeterministic(t *testing.T) {
	a := NewRandomizer(12345)
	b := NewRandomizer(12345)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(None), b.Next(None))
	}
}
