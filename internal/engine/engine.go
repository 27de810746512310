// Package engine implements piece placement on the board: block positions,
// wall and world collisions, rotation, movement, locking and spawning.
package engine

import (
	"github.com/vovakirdan/spacetris/internal/board"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/scoring"
	"github.com/vovakirdan/spacetris/internal/tetromino"
)

// MoveOutcome describes what a move attempt did.
type MoveOutcome struct {
	Moved       bool // The piece was translated
	Locked      bool // The piece landed and was pinned into the grid
	Lines       int  // Rows cleared by the lock
	LevelUp     bool // The lock raised the level
	SpawnFailed bool // The next piece could not be placed; the game is over
}

// Engine applies placement rules to a grid.
type Engine struct {
	grid *board.Grid
	rng  *tetromino.Randomizer
}

// New creates an engine over grid drawing new shapes from rng.
func New(grid *board.Grid, rng *tetromino.Randomizer) *Engine {
	return &Engine{grid: grid, rng: rng}
}

// Grid returns the grid the engine operates on.
func (e *Engine) Grid() *board.Grid {
	return e.grid
}

// SpawnPosition is where new pieces appear: horizontally centered, one row
// above the field so that the empty top row of every shape is hidden.
func (e *Engine) SpawnPosition() core.Point {
	return core.Pt((e.grid.Columns()-tetromino.Size)/2, -1)
}

// ComputeBlockPositions walks the 4x4 sub-grid of shape in rotation row by row
// and places every filled cell relative to anchor. color is the first non-zero
// value seen; valid is the world-collision result for the computed blocks.
func (e *Engine) ComputeBlockPositions(shape tetromino.Shape, rotation int, anchor core.Point) (blocks [4]core.Point, color int, valid bool) {
	i := 0
	for row := 0; row < tetromino.Size; row++ {
		for col := 0; col < tetromino.Size; col++ {
			v := tetromino.Block(shape, rotation, row, col)
			if v == 0 {
				continue
			}
			if color == 0 {
				color = v
			}
			if i < len(blocks) {
				blocks[i] = anchor.Offset(col, row)
			}
			i++
		}
	}
	return blocks, color, e.CheckWorldCollision(blocks)
}

// CheckWallCollision reports whether every block is within the side walls.
// Vertical position is not checked.
func (e *Engine) CheckWallCollision(blocks [4]core.Point) bool {
	for _, b := range blocks {
		if b.X < 0 || b.X >= e.grid.Columns() {
			return false
		}
	}
	return true
}

// CheckWorldCollision reports whether the blocks are free to occupy their
// positions. Blocks outside the side walls or above the top are not checked.
// A block at or below the floor collides, as does one on a settled cell.
func (e *Engine) CheckWorldCollision(blocks [4]core.Point) bool {
	for _, b := range blocks {
		if b.X < 0 || b.X >= e.grid.Columns() || b.Y < 0 {
			continue
		}
		if b.Y >= e.grid.Rows() || !e.grid.IsEmpty(b.Y, b.X) {
			return false
		}
	}
	return true
}

// TryRotate advances the active piece to its next rotation state.
// The piece is left untouched when the rotated blocks hit a wall or the world.
func (e *Engine) TryRotate(run *Run) bool {
	run.snapshot()
	p := &run.Current
	p.Rotation = tetromino.NextRotation(p.Rotation)
	var valid bool
	p.Blocks, p.Color, valid = e.ComputeBlockPositions(p.Shape, p.Rotation, p.Anchor)
	if !valid || !e.CheckWallCollision(p.Blocks) {
		run.rollback()
		return false
	}
	return true
}

// TryMove translates the active piece by (dx, dy).
// A move into a wall is rejected. A move into the world is rejected too,
// unless it was downward: then the piece locks where it is, full rows are
// cleared, the totals are updated and the next piece spawns.
func (e *Engine) TryMove(run *Run, dx, dy int) MoveOutcome {
	run.snapshot()
	p := &run.Current
	p.Blocks = shift(p.Blocks, dx, dy)

	if !e.CheckWallCollision(p.Blocks) {
		run.rollback()
		return MoveOutcome{}
	}
	if !e.CheckWorldCollision(p.Blocks) {
		run.rollback()
		if dy > 0 {
			return e.lock(run)
		}
		return MoveOutcome{}
	}

	p.Anchor = p.Anchor.Offset(dx, dy)
	return MoveOutcome{Moved: true}
}

func (e *Engine) lock(run *Run) MoveOutcome {
	out := MoveOutcome{Locked: true}
	p := run.Current
	above := false
	for _, b := range p.Blocks {
		if b.Y < 0 {
			// Part of the piece never entered the field.
			above = true
			continue
		}
		e.grid.Pin(b.Y, b.X, int(p.Shape))
	}

	out.Lines = e.grid.ClearFullLines()
	run.Lines += out.Lines
	level, delay := scoring.CalculateLevel(run.Lines)
	out.LevelUp = level != run.Level
	run.Level = level
	run.FallDelay = delay
	run.Score += scoring.CalculateScore(run.Level, out.Lines, true)

	if above {
		out.SpawnFailed = true
		return out
	}
	out.SpawnFailed = !e.SpawnNext(run)
	return out
}

// LandingPosition returns where p would come to rest if dropped straight down.
func (e *Engine) LandingPosition(p Piece) [4]core.Point {
	blocks := p.Blocks
	for {
		next := shift(blocks, 0, 1)
		if !e.CheckWorldCollision(next) {
			return blocks
		}
		blocks = next
	}
}

// SpawnNext makes the queued shape current and queues a new one.
// On the first spawn of a run, when nothing is queued yet, both are drawn.
// It reports whether the new piece fits.
func (e *Engine) SpawnNext(run *Run) bool {
	var shape tetromino.Shape
	if run.Next != tetromino.None {
		shape = run.Next
	} else {
		shape = e.rng.Next(run.Current.Shape)
	}
	run.Next = e.rng.Next(shape)
	return e.Spawn(run, shape)
}

// Spawn places shape at the spawn position in its default rotation.
// The queue is not touched. It reports whether the piece fits.
func (e *Engine) Spawn(run *Run, shape tetromino.Shape) bool {
	p := Piece{
		Shape:    shape,
		Rotation: tetromino.DefaultRotation,
		Anchor:   e.SpawnPosition(),
	}
	var valid bool
	p.Blocks, p.Color, valid = e.ComputeBlockPositions(p.Shape, p.Rotation, p.Anchor)
	run.Current = p
	return valid
}
