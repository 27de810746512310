package tetromino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct{ row, col int }

func occupied(shape Shape, rotation int) []cell {
	var cells []cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if Block(shape, rotation, row, col) != 0 {
				cells = append(cells, cell{row, col})
			}
		}
	}
	return cells
}

func TestEveryRotationHasFourCells(t *testing.T) {
	for _, shape := range All() {
		for rot := 1; rot <= RotationStates; rot++ {
			cells := occupied(shape, rot)
			assert.Len(t, cells, 4, "shape %s rotation %d", shape, rot)

			seen := map[cell]bool{}
			for _, c := range cells {
				assert.False(t, seen[c], "duplicate cell %v in %s/%d", c, shape, rot)
				seen[c] = true
			}
		}
	}
}

func TestBlockValuesMatchShapeID(t *testing.T) {
	for _, shape := range All() {
		for rot := 1; rot <= RotationStates; rot++ {
			for _, c := range occupied(shape, rot) {
				assert.Equal(t, int(shape), Block(shape, rot, c.row, c.col))
			}
		}
	}
}

func TestOShapeIsRotationInvariant(t *testing.T) {
	base := occupied(O, 1)
	for rot := 2; rot <= RotationStates; rot++ {
		assert.Equal(t, base, occupied(O, rot))
	}
	assert.Equal(t, []cell{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, base)
}

func TestIShapeSpawnRow(t *testing.T) {
	// The horizontal I sits on row 2 of its sub-grid.
	assert.Equal(t, []cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}}, occupied(I, DefaultRotation))
}

func TestBlockPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { Block(None, 1, 0, 0) })
	require.Panics(t, func() { Block(T, 5, 0, 0) })
	require.Panics(t, func() { Block(T, 1, 4, 0) })
}

func TestNextRotationWraps(t *testing.T) {
	assert.Equal(t, 2, NextRotation(1))
	assert.Equal(t, 4, NextRotation(3))
	assert.Equal(t, DefaultRotation, NextRotation(4))

	r := DefaultRotation
	for i := 0; i < RotationStates; i++ {
		r = NextRotation(r)
	}
	assert.Equal(t, DefaultRotation, r)
}

func TestShapeValidAndString(t *testing.T) {
	assert.False(t, None.Valid())
	assert.False(t, Shape(8).Valid())
	assert.True(t, I.Valid())
	assert.True(t, T.Valid())

	assert.Equal(t, "S", S.String())
	assert.Equal(t, "-", None.String())
	assert.Equal(t, "Shape(9)", Shape(9).String())
}
