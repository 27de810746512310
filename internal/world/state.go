package world

// State is the lifecycle phase of a world.
type State int32

const (
	StateNewGame  State = iota // Run reset, countdown in progress
	StatePlaying               // Gravity and movement active
	StatePause                 // Run frozen, waiting for Continue
	StateContinue              // Resuming from pause, countdown in progress
	StateGameOver              // Spawn failed, name entry
	StateQuit                  // No run in progress
)

func (s State) String() string {
	switch s {
	case StateNewGame:
		return "NewGame"
	case StatePlaying:
		return "Playing"
	case StatePause:
		return "Pause"
	case StateContinue:
		return "Continue"
	case StateGameOver:
		return "GameOver"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CountingDown reports whether the state shows the start countdown.
func (s State) CountingDown() bool {
	return s == StateNewGame || s == StateContinue
}
