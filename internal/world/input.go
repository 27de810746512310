package world

import (
	"github.com/vovakirdan/spacetris/internal/core"
)

// KeyPressed applies one translated key press.
func (w *World) KeyPressed(in core.Input) {
	if in.Action != core.ActionSoftDrop {
		w.softDrop = true
	}

	state := w.State()
	switch {
	case state == StateGameOver:
		w.nameEntry(in)
		return
	case state == StateQuit:
		return
	case state == StatePause && in.Action != core.ActionPause && in.Action != core.ActionBack:
		return
	case in.Action == core.ActionPause || in.Action == core.ActionBack:
		w.Pause()
		return
	}

	if !w.accepts(in.Action) {
		return
	}
	if state.CountingDown() {
		w.SetState(StatePlaying)
	}

	switch in.Action {
	case core.ActionRotate:
		w.rotateReady = false
		if w.RotateTetromino() {
			w.emit(EventRotate)
		}
	case core.ActionLeft:
		w.move(-1, 0)
	case core.ActionRight:
		w.move(1, 0)
	case core.ActionSoftDrop:
		w.move(0, 1)
	case core.ActionHardDrop:
		w.HardDrop()
	}
}

// accepts reports whether a movement action is currently allowed through
// its latch.
func (w *World) accepts(a core.Action) bool {
	switch a {
	case core.ActionRotate:
		return w.rotateReady
	case core.ActionSoftDrop:
		return w.softDrop
	}
	return a.IsMovement()
}

func (w *World) move(dx, dy int) {
	if w.State() != StatePlaying {
		return
	}
	w.emit(EventMove)
	w.MoveTetromino(dx, dy)
}

// KeyReleased re-arms the rotate and soft drop latches while playing.
func (w *World) KeyReleased(a core.Action) {
	if w.State() != StatePlaying {
		return
	}
	switch a {
	case core.ActionRotate:
		w.rotateReady = true
	case core.ActionSoftDrop:
		w.softDrop = true
	}
}

// nameEntry handles keys on the game over screen. Back leaves without
// recording. When the score qualifies, characters and backspace edit the
// name and Confirm records the run.
func (w *World) nameEntry(in core.Input) {
	if in.Action == core.ActionBack {
		w.SetState(StateQuit)
		return
	}

	qualifies := w.Qualifies()
	switch in.Action {
	case core.ActionChar:
		if qualifies && len(w.name) < w.cfg.MaxNameLength {
			w.name = append(w.name, in.Rune)
		}
	case core.ActionErase:
		if qualifies && len(w.name) > 0 {
			w.name = w.name[:len(w.name)-1]
		}
	case core.ActionConfirm:
		if qualifies {
			w.record()
		}
		w.SetState(StateQuit)
	}
}

func (w *World) record() {
	entry := ScoreEntry{
		Name:  w.Name(),
		Lines: w.run.Lines,
		Level: w.run.Level,
		Score: w.run.Score,
	}
	if err := w.keeper.AddScore(entry); err != nil {
		w.logger.Warn("could not record score", "error", err)
		return
	}
	w.logger.Info("score recorded", "name", entry.Name, "score", entry.Score)
}
