// Package board models the settled play field and the line-clear rules that act on it.
package board

import "fmt"

// Grid is a rows x columns field of settled cells.
// 0 is empty, 1..7 is the id of the shape that was pinned there.
// Row 0 is the top of the field.
type Grid struct {
	rows    int
	columns int
	cells   [][]int
}

// New creates an empty grid. It panics on non-positive dimensions.
func New(rows, columns int) *Grid {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", rows, columns))
	}
	g := &Grid{rows: rows, columns: columns}
	g.cells = newCells(rows, columns)
	return g
}

func newCells(rows, columns int) [][]int {
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, columns)
	}
	return cells
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Cell returns the value at (row, col). Out-of-bounds access panics.
func (g *Grid) Cell(row, col int) int {
	return g.cells[row][col]
}

// IsEmpty reports whether (row, col) holds no settled block.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.cells[row][col] == 0
}

// Clear zeroes every cell.
func (g *Grid) Clear() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

// Pin writes a settled block value. Out-of-bounds access panics.
func (g *Grid) Pin(row, col, value int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("board: pin outside grid at row %d col %d", row, col))
	}
	g.cells[row][col] = value
}

// IsRowFull reports whether every cell of row is non-empty.
func (g *Grid) IsRowFull(row int) bool {
	for _, v := range g.cells[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell of row is empty.
func (g *Grid) IsRowEmpty(row int) bool {
	for _, v := range g.cells[row] {
		if v != 0 {
			return false
		}
	}
	return true
}

// RemoveRow zeroes a row without shifting anything above it.
func (g *Grid) RemoveRow(row int) {
	clear(g.cells[row])
}

// Compact rebuilds the grid bottom to top, dropping each non-empty row into
// the next free slot. Relative order of the surviving rows is preserved and
// the freed rows end up empty at the top.
func (g *Grid) Compact() {
	next := newCells(g.rows, g.columns)
	slot := g.rows - 1
	for r := g.rows - 1; r >= 0; r-- {
		if g.IsRowEmpty(r) {
			continue
		}
		copy(next[slot], g.cells[r])
		slot--
	}
	g.cells = next
}

// Cells returns a deep copy of the grid contents.
func (g *Grid) Cells() [][]int {
	out := newCells(g.rows, g.columns)
	for r := range g.cells {
		copy(out[r], g.cells[r])
	}
	return out
}

// FilledCount returns the number of non-empty cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// String draws the grid as text, '.' for empty cells and the shape id otherwise.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.columns+1))
	for r, row := range g.cells {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for _, v := range row {
			if v == 0 {
				buf = append(buf, '.')
			} else {
				buf = append(buf, byte('0'+v%10))
			}
		}
	}
	return string(buf)
}
