package world

// Snapshot is a plain copy of the observable world state, used to compare
// runs in determinism tests.
type Snapshot struct {
	State     string
	Score     int
	Lines     int
	Level     int
	Shape     int
	Rotation  int
	AnchorX   int
	AnchorY   int
	Next      int
	Countdown int
	Name      string

	// Settled cells, flattened row by row
	Cells []int
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	cells := make([]int, 0, w.grid.Rows()*w.grid.Columns())
	for _, row := range w.grid.Cells() {
		cells = append(cells, row...)
	}

	cur := w.run.Current
	return Snapshot{
		State:     w.State().String(),
		Score:     w.run.Score,
		Lines:     w.run.Lines,
		Level:     w.run.Level,
		Shape:     int(cur.Shape),
		Rotation:  cur.Rotation,
		AnchorX:   cur.Anchor.X,
		AnchorY:   cur.Anchor.Y,
		Next:      int(w.run.Next),
		Countdown: w.countdown.Remaining(),
		Name:      w.Name(),
		Cells:     cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.State))
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shape)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rotation)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnchorX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnchorY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Countdown) //#nosec G115 -- hash computation
	for _, c := range snap.Name {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
