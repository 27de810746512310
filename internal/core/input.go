package core

import "unicode"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate device events into actions; the world never sees raw keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move piece left
	ActionRight           // D, Right arrow - move piece right
	ActionSoftDrop        // S, Down arrow - move piece one row down
	ActionRotate          // W, Up arrow - rotate piece
	ActionHardDrop        // Space - drop piece to its landing position
	ActionPause           // P - pause the run
	ActionBack            // Escape - pause while playing, leave the game-over screen
	ActionConfirm         // Enter - submit the name on the game-over screen
	ActionErase           // Backspace - delete the last typed character
	ActionChar            // A printable character typed on the game-over screen
	ActionQuit            // Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionErase:
		return "Erase"
	case ActionChar:
		return "Char"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves or rotates the active piece.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotate, ActionHardDrop:
		return true
	}
	return false
}

// Input is a single translated input event.
// Rune is only meaningful for ActionChar.
type Input struct {
	Action Action
	Rune   rune
}

// Press builds an Input for a non-character action.
func Press(a Action) Input {
	return Input{Action: a}
}

// Char builds an Input carrying a typed character.
// Letters are upper-cased; characters outside A-Z, 0-9 and space yield ActionNone.
func Char(r rune) Input {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return Input{Action: ActionChar, Rune: r}
	}
	return Input{Action: ActionNone}
}
