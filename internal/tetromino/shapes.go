// Package tetromino holds the immutable shape table: seven tetrominoes,
// four rotation states each, described on a 4x4 sub-grid.
package tetromino

import "fmt"

// Shape identifies one of the seven tetrominoes. The id doubles as the
// color value written into the grid when a piece is pinned.
type Shape int

const (
	None Shape = iota
	I
	J
	L
	O
	S
	Z
	T
)

const (
	Size            = 4 // Edge of the square sub-grid a shape is drawn on
	RotationStates  = 4
	DefaultRotation = 1
	Count           = 7
)

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= I && s <= T
}

func (s Shape) String() string {
	switch s {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	case None:
		return "-"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// All lists the shapes in id order.
func All() []Shape {
	return []Shape{I, J, L, O, S, Z, T}
}

// table[shape-1][rotation-1][row][col]
var table = [Count][RotationStates][Size][Size]int{
	{ // I
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}},
		{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
	},
	{ // J
		{{0, 0, 0, 0}, {2, 0, 0, 0}, {2, 2, 2, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 2, 2, 0}, {0, 2, 0, 0}, {0, 2, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {2, 2, 2, 0}, {0, 0, 2, 0}},
		{{0, 0, 0, 0}, {0, 2, 0, 0}, {0, 2, 0, 0}, {2, 2, 0, 0}},
	},
	{ // L
		{{0, 0, 0, 0}, {0, 0, 3, 0}, {3, 3, 3, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 3, 0, 0}, {0, 3, 0, 0}, {0, 3, 3, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {3, 3, 3, 0}, {3, 0, 0, 0}},
		{{0, 0, 0, 0}, {3, 3, 0, 0}, {0, 3, 0, 0}, {0, 3, 0, 0}},
	},
	{ // O
		{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
	},
	{ // S
		{{0, 0, 0, 0}, {0, 5, 5, 0}, {5, 5, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 5, 0, 0}, {0, 5, 5, 0}, {0, 0, 5, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 5, 5, 0}, {5, 5, 0, 0}},
		{{0, 0, 0, 0}, {5, 0, 0, 0}, {5, 5, 0, 0}, {0, 5, 0, 0}},
	},
	{ // Z
		{{0, 0, 0, 0}, {6, 6, 0, 0}, {0, 6, 6, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 6, 0}, {0, 6, 6, 0}, {0, 6, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {6, 6, 0, 0}, {0, 6, 6, 0}},
		{{0, 0, 0, 0}, {0, 6, 0, 0}, {6, 6, 0, 0}, {6, 0, 0, 0}},
	},
	{ // T
		{{0, 0, 0, 0}, {0, 7, 0, 0}, {7, 7, 7, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 7, 0, 0}, {0, 7, 7, 0}, {0, 7, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {7, 7, 7, 0}, {0, 7, 0, 0}},
		{{0, 0, 0, 0}, {0, 7, 0, 0}, {7, 7, 0, 0}, {0, 7, 0, 0}},
	},
}

// Block returns the value at (row, col) of the given shape in the given
// rotation state: 0 for empty, otherwise the shape's color id.
// Indices outside the table panic.
func Block(shape Shape, rotation, row, col int) int {
	return table[int(shape)-1][rotation-1][row][col]
}

// NextRotation returns the rotation state after r, wrapping 4 back to 1.
func NextRotation(r int) int {
	r++
	if r > RotationStates {
		return DefaultRotation
	}
	return r
}
