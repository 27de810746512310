package engine

import (
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/tetromino"
)

// Piece is the active falling tetromino.
// Blocks is always derived from Shape, Rotation and Anchor through the shape table.
type Piece struct {
	Shape    tetromino.Shape
	Rotation int
	Anchor   core.Point // Top-left of the 4x4 sub-grid; Y may be negative
	Blocks   [4]core.Point
	Color    int
}

// Live reports whether the piece holds a real shape.
func (p Piece) Live() bool {
	return p.Shape.Valid()
}

// Occupies reports whether one of the piece's blocks sits at (x, y).
// An empty piece occupies nothing.
func (p Piece) Occupies(x, y int) bool {
	if !p.Live() {
		return false
	}
	for _, b := range p.Blocks {
		if b.X == x && b.Y == y {
			return true
		}
	}
	return false
}

func shift(blocks [4]core.Point, dx, dy int) [4]core.Point {
	for i := range blocks {
		blocks[i] = blocks[i].Offset(dx, dy)
	}
	return blocks
}
