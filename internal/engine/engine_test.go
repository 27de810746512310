package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spacetris/internal/board"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/tetromino"
)

func newTestEngine(rows, cols int) (*Engine, *Run) {
	return New(board.New(rows, cols), tetromino.NewRandomizer(1)), NewRun()
}

func requireConsistent(t *testing.T, e *Engine, p Piece) {
	t.Helper()
	blocks, color, _ := e.ComputeBlockPositions(p.Shape, p.Rotation, p.Anchor)
	require.Equal(t, blocks, p.Blocks, "blocks out of sync with %s/%d at %v", p.Shape, p.Rotation, p.Anchor)
	require.Equal(t, color, p.Color)
}

func TestSpawnPosition(t *testing.T) {
	e, _ := newTestEngine(20, 10)
	assert.Equal(t, core.Pt(3, -1), e.SpawnPosition())

	e, _ = newTestEngine(16, 7)
	assert.Equal(t, core.Pt(1, -1), e.SpawnPosition())
}

func TestComputeBlockPositions(t *testing.T) {
	e, _ := newTestEngine(20, 10)

	blocks, color, valid := e.ComputeBlockPositions(tetromino.O, 1, core.Pt(3, -1))
	assert.Equal(t, [4]core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}, blocks)
	assert.Equal(t, 4, color)
	assert.True(t, valid)

	blocks, color, _ = e.ComputeBlockPositions(tetromino.T, 1, core.Pt(0, 0))
	assert.Equal(t, [4]core.Point{{X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, blocks)
	assert.Equal(t, 7, color)
}

func TestEveryPieceHasDistinctBlocks(t *testing.T) {
	e, _ := newTestEngine(20, 10)
	for _, shape := range tetromino.All() {
		for rot := 1; rot <= tetromino.RotationStates; rot++ {
			blocks, _, _ := e.ComputeBlockPositions(shape, rot, core.Pt(2, 5))
			seen := map[core.Point]bool{}
			for _, b := range blocks {
				seen[b] = true
			}
			assert.Len(t, seen, 4, "%s rotation %d", shape, rot)
		}
	}
}

func TestCheckWallCollision(t *testing.T) {
	e, _ := newTestEngine(20, 10)
	tests := []struct {
		name     string
		blocks   [4]core.Point
		expected bool
	}{
		{"inside", [4]core.Point{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 5, Y: 19}, {X: 5, Y: 5}}, true},
		{"left", [4]core.Point{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false},
		{"right", [4]core.Point{{X: 7, Y: 0}, {X: 8, Y: 0}, {X: 9, Y: 0}, {X: 10, Y: 0}}, false},
		{"vertical ignored", [4]core.Point{{X: 0, Y: -5}, {X: 0, Y: 40}, {X: 1, Y: 0}, {X: 2, Y: 0}}, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, e.CheckWallCollision(tc.blocks), tc.name)
	}
}

func TestCheckWorldCollision(t *testing.T) {
	e, _ := newTestEngine(20, 10)
	e.Grid().Pin(10, 4, 3)

	tests := []struct {
		name     string
		blocks   [4]core.Point
		expected bool
	}{
		{"free", [4]core.Point{{X: 4, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 8}, {X: 5, Y: 8}}, true},
		{"settled cell", [4]core.Point{{X: 4, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 9}, {X: 5, Y: 9}}, false},
		{"floor", [4]core.Point{{X: 0, Y: 19}, {X: 0, Y: 20}, {X: 1, Y: 19}, {X: 1, Y: 18}}, false},
		{"above top skipped", [4]core.Point{{X: 4, Y: -1}, {X: 4, Y: -2}, {X: 5, Y: 0}, {X: 5, Y: -1}}, true},
		{"outside walls skipped", [4]core.Point{{X: -1, Y: 10}, {X: 10, Y: 10}, {X: 3, Y: 3}, {X: 3, Y: 4}}, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, e.CheckWorldCollision(tc.blocks), tc.name)
	}
}

func TestFourRotationsReturnToStart(t *testing.T) {
	for _, shape := range tetromino.All() {
		e, run := newTestEngine(20, 10)
		require.True(t, e.Spawn(run, shape))
		// Move into open space so every rotation fits.
		for i := 0; i < 5; i++ {
			e.TryMove(run, 0, 1)
		}
		start := run.Current

		for i := 0; i < tetromino.RotationStates; i++ {
			require.True(t, e.TryRotate(run), "%s rotation %d", shape, i)
			requireConsistent(t, e, run.Current)
		}
		assert.Equal(t, start, run.Current, shape.String())
	}
}

func TestRotateRollbackAtWall(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.I))
	require.True(t, e.TryRotate(run)) // vertical, column 2 of the sub-grid

	for run.Current.Blocks[0].X > 0 {
		require.True(t, e.TryMove(run, -1, 0).Moved)
	}
	before := run.Current

	assert.False(t, e.TryRotate(run))
	assert.Equal(t, before, run.Current)
	requireConsistent(t, e, run.Current)
}

func TestRotateRollbackIntoWorld(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.I))
	// Rotation 2 occupies column 5 on rows -1..2.
	e.Grid().Pin(2, 5, 1)
	before := run.Current

	assert.False(t, e.TryRotate(run))
	assert.Equal(t, before, run.Current)
}

func TestMoveRejectedByWall(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.O))

	moves := 0
	for e.TryMove(run, 1, 0).Moved {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, 9, run.Current.Blocks[1].X)
	requireConsistent(t, e, run.Current)
}

func TestSidewaysMoveIntoWorldDoesNotLock(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.O))
	e.Grid().Pin(0, 6, 2)

	out := e.TryMove(run, 1, 0)
	assert.Equal(t, MoveOutcome{}, out)
	assert.Equal(t, 1, e.Grid().FilledCount())
	requireConsistent(t, e, run.Current)
}

func TestLandingPosition(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.O))

	landing := e.LandingPosition(run.Current)
	assert.Equal(t, [4]core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}}, landing)

	e.Grid().Pin(12, 5, 6)
	landing = e.LandingPosition(run.Current)
	assert.Equal(t, [4]core.Point{{X: 4, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 11}, {X: 5, Y: 11}}, landing)
}

func TestDropToFloorLocks(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.O))
	run.Next = tetromino.T

	var out MoveOutcome
	steps := 0
	for {
		out = e.TryMove(run, 0, 1)
		if !out.Moved {
			break
		}
		steps++
	}

	assert.Equal(t, 18, steps)
	assert.True(t, out.Locked)
	assert.False(t, out.SpawnFailed)
	assert.Zero(t, out.Lines)
	assert.Equal(t, 4, e.Grid().FilledCount())
	for _, p := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		assert.Equal(t, 4, e.Grid().Cell(p.Y, p.X))
	}
	assert.Equal(t, 1, run.Score)
	assert.Equal(t, tetromino.T, run.Current.Shape)
	assert.NotEqual(t, tetromino.T, run.Next)
}

func TestLockClearsLineAndScores(t *testing.T) {
	e, run := newTestEngine(20, 10)
	for c := 0; c < 10; c++ {
		if c != 4 && c != 5 {
			e.Grid().Pin(19, c, 1)
		}
	}
	require.True(t, e.Spawn(run, tetromino.O))

	for e.TryMove(run, 0, 1).Moved {
	}

	assert.Equal(t, 1, run.Lines)
	assert.Equal(t, 0, run.Level)
	assert.Equal(t, 41, run.Score)
	assert.Equal(t, 2, e.Grid().FilledCount())
	assert.Equal(t, 4, e.Grid().Cell(19, 4))
	assert.Equal(t, 4, e.Grid().Cell(19, 5))
}

func TestLockLevelUp(t *testing.T) {
	e, run := newTestEngine(20, 10)
	run.Lines = 9
	for c := 0; c < 10; c++ {
		if c != 4 && c != 5 {
			e.Grid().Pin(19, c, 1)
		}
	}
	require.True(t, e.Spawn(run, tetromino.O))

	var out MoveOutcome
	for out = e.TryMove(run, 0, 1); out.Moved; out = e.TryMove(run, 0, 1) {
	}

	assert.True(t, out.Locked)
	assert.True(t, out.LevelUp)
	assert.Equal(t, 1, out.Lines)
	assert.Equal(t, 1, run.Level)
	assert.InDelta(t, 46.0/60, run.FallDelay, 1e-9)
	assert.Equal(t, 81, run.Score)
}

func TestSpawnFailsOnBlockedTop(t *testing.T) {
	e, run := newTestEngine(20, 10)
	for c := 0; c < 10; c++ {
		e.Grid().Pin(0, c, 2)
		e.Grid().Pin(1, c, 2)
	}
	for _, shape := range tetromino.All() {
		assert.False(t, e.Spawn(run, shape), shape.String())
	}
	assert.False(t, e.SpawnNext(run))
}

func TestLockReportsSpawnFailure(t *testing.T) {
	e, run := newTestEngine(4, 4)
	e.Grid().Pin(1, 0, 3)
	require.True(t, e.Spawn(run, tetromino.O))
	run.Next = tetromino.I

	var out MoveOutcome
	for out = e.TryMove(run, 0, 1); out.Moved; out = e.TryMove(run, 0, 1) {
	}

	assert.True(t, out.Locked)
	assert.True(t, out.SpawnFailed)
}

func TestLockAboveTopEndsRun(t *testing.T) {
	e, run := newTestEngine(4, 4)
	e.Grid().Pin(3, 2, 5)
	require.True(t, e.Spawn(run, tetromino.I))
	require.True(t, e.TryRotate(run))

	out := e.TryMove(run, 0, 1)
	assert.True(t, out.Locked)
	assert.True(t, out.SpawnFailed)
	// Only the blocks inside the field are pinned.
	assert.Equal(t, 4, e.Grid().FilledCount())
}

func TestSpawnNextQueue(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.Equal(t, tetromino.None, run.Next)

	require.True(t, e.SpawnNext(run))
	assert.True(t, run.Current.Shape.Valid())
	assert.True(t, run.Next.Valid())
	assert.NotEqual(t, run.Current.Shape, run.Next)
	assert.Equal(t, tetromino.DefaultRotation, run.Current.Rotation)
	assert.Equal(t, e.SpawnPosition(), run.Current.Anchor)

	queued := run.Next
	e.Grid().Clear()
	require.True(t, e.SpawnNext(run))
	assert.Equal(t, queued, run.Current.Shape)
}

func TestRunReset(t *testing.T) {
	run := NewRun()
	run.Score, run.Lines, run.Level, run.FallDelay = 10, 20, 2, 0.1
	run.Next = tetromino.Z
	run.Reset()

	assert.Zero(t, run.Score)
	assert.Zero(t, run.Lines)
	assert.Zero(t, run.Level)
	assert.Equal(t, tetromino.None, run.Next)
	assert.InDelta(t, 0.8, run.FallDelay, 1e-9)
	assert.False(t, run.Current.Live())
}

func TestOccupies(t *testing.T) {
	e, run := newTestEngine(20, 10)
	require.True(t, e.Spawn(run, tetromino.O))

	for _, b := range run.Current.Blocks {
		assert.True(t, run.Current.Occupies(b.X, b.Y), "block %v", b)
	}
	assert.False(t, run.Current.Occupies(0, 19))
	assert.False(t, Piece{}.Occupies(0, 0), "an empty piece occupies nothing")
}
