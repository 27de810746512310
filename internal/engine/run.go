package engine

import (
	"github.com/vovakirdan/spacetris/internal/scoring"
	"github.com/vovakirdan/spacetris/internal/tetromino"
)

// Run holds the mutable state of one game: the active and queued pieces and
// the running totals.
type Run struct {
	Current   Piece
	Next      tetromino.Shape // tetromino.None until the first spawn fills it
	Score     int
	Lines     int
	Level     int
	FallDelay float64 // Seconds between automatic downward steps

	saved Piece
}

// NewRun returns a zeroed run.
func NewRun() *Run {
	r := &Run{}
	r.Reset()
	return r
}

// Reset zeroes the totals and forgets both pieces.
func (r *Run) Reset() {
	*r = Run{FallDelay: scoring.InitialFallDelay()}
}

func (r *Run) snapshot() {
	r.saved = r.Current
}

func (r *Run) rollback() {
	r.Current = r.saved
}
