package world

// Event is a notable moment in a run that a sound layer or HUD may react to.
type Event int

const (
	EventMove      Event = iota // Left, right or soft drop requested
	EventRotate                 // Rotation succeeded
	EventDrop                   // Piece locked without clearing rows
	EventLineClear              // Piece locked and cleared rows
	EventLevelUp
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventMove:
		return "move"
	case EventRotate:
		return "rotate"
	case EventDrop:
		return "drop"
	case EventLineClear:
		return "line-clear"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// OnEvent registers fn to be called for every event, in registration order.
func (w *World) OnEvent(fn func(Event)) {
	w.eventHandlers = append(w.eventHandlers, fn)
}

// OnStateChange registers fn to be called whenever the state actually changes.
func (w *World) OnStateChange(fn func(State)) {
	w.stateHandlers = append(w.stateHandlers, fn)
}

func (w *World) emit(e Event) {
	for _, fn := range w.eventHandlers {
		fn(e)
	}
}

func (w *World) notify(s State) {
	for _, fn := range w.stateHandlers {
		fn(s)
	}
}
