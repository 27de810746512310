package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(g *Grid, row, value int) {
	for c := 0; c < g.Columns(); c++ {
		g.Pin(row, c, value)
	}
}

func TestNewGridIsEmpty(t *testing.T) {
	g := New(20, 10)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 10, g.Columns())
	assert.Zero(t, g.FilledCount())
	for r := 0; r < g.Rows(); r++ {
		assert.True(t, g.IsRowEmpty(r))
	}
}

func TestNewGridPanicsOnBadSize(t *testing.T) {
	require.Panics(t, func() { New(0, 10) })
	require.Panics(t, func() { New(20, -1) })
}

func TestPinAndClear(t *testing.T) {
	g := New(4, 4)
	g.Pin(3, 0, 5)
	g.Pin(0, 3, 2)

	assert.Equal(t, 5, g.Cell(3, 0))
	assert.False(t, g.IsEmpty(0, 3))
	assert.Equal(t, 2, g.FilledCount())

	g.Clear()
	assert.Zero(t, g.FilledCount())
}

func TestPinOutOfBoundsPanics(t *testing.T) {
	g := New(4, 4)
	require.Panics(t, func() { g.Pin(-1, 0, 1) })
	require.Panics(t, func() { g.Pin(0, 4, 1) })
}

func TestInBounds(t *testing.T) {
	g := New(3, 5)
	tests := []struct {
		row, col int
		expected bool
	}{
		{0, 0, true},
		{2, 4, true},
		{3, 0, false},
		{0, 5, false},
		{-1, 2, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, g.InBounds(tc.row, tc.col), "InBounds(%d, %d)", tc.row, tc.col)
	}
}

func TestRowPredicates(t *testing.T) {
	g := New(3, 3)
	fillRow(g, 2, 1)
	g.Pin(1, 1, 7)

	assert.True(t, g.IsRowFull(2))
	assert.False(t, g.IsRowFull(1))
	assert.False(t, g.IsRowEmpty(1))
	assert.True(t, g.IsRowEmpty(0))

	g.RemoveRow(2)
	assert.True(t, g.IsRowEmpty(2))
	// RemoveRow does not shift rows above.
	assert.Equal(t, 7, g.Cell(1, 1))
}

func TestCompactPreservesOrder(t *testing.T) {
	g := New(6, 2)
	g.Pin(0, 0, 1)
	g.Pin(2, 1, 2)
	g.Pin(5, 0, 3)

	g.Compact()

	assert.Equal(t, "..\n..\n..\n1.\n.2\n3.", g.String())
}

func TestCellsIsDeepCopy(t *testing.T) {
	g := New(2, 2)
	g.Pin(1, 1, 4)
	cells := g.Cells()
	cells[1][1] = 0
	assert.Equal(t, 4, g.Cell(1, 1))
}
