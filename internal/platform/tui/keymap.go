package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacetris/internal/core"
)

// GameKeyMap holds the bindings used on the play screen.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	SoftDrop key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Pause    key.Binding
	Back     key.Binding
	Confirm  key.Binding
	Erase    key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop},
		{k.Pause, k.Back, k.Confirm, k.Quit},
	}
}

// DefaultGameKeyMap returns arrow and WASD bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key message into a world input. While typing a name
// the movement bindings are ignored so that letters like a, s, d and w
// reach the name field.
func (k GameKeyMap) MapKey(msg tea.KeyMsg, typing bool) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Press(core.ActionQuit)
	case key.Matches(msg, k.Back):
		return core.Press(core.ActionBack)
	case key.Matches(msg, k.Confirm):
		return core.Press(core.ActionConfirm)
	}

	if typing {
		if key.Matches(msg, k.Erase) {
			return core.Press(core.ActionErase)
		}
		if msg.Type == tea.KeySpace {
			return core.Char(' ')
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			return core.Char(msg.Runes[0])
		}
		return core.Press(core.ActionNone)
	}

	switch {
	case key.Matches(msg, k.Left):
		return core.Press(core.ActionLeft)
	case key.Matches(msg, k.Right):
		return core.Press(core.ActionRight)
	case key.Matches(msg, k.SoftDrop):
		return core.Press(core.ActionSoftDrop)
	case key.Matches(msg, k.Rotate):
		return core.Press(core.ActionRotate)
	case key.Matches(msg, k.HardDrop):
		return core.Press(core.ActionHardDrop)
	case key.Matches(msg, k.Pause):
		return core.Press(core.ActionPause)
	}
	return core.Press(core.ActionNone)
}

// releaseAfter is how long a key must stay silent before it counts as released.
// Terminals report presses and auto-repeats only, so a gap longer than the
// repeat interval stands in for the key-up event.
const releaseAfter = 250 * time.Millisecond

// releaseTracker synthesizes key releases from gaps in the press stream.
type releaseTracker struct {
	last map[core.Action]time.Time
}

func newReleaseTracker() *releaseTracker {
	return &releaseTracker{last: make(map[core.Action]time.Time)}
}

// Press records that a is held at now.
func (r *releaseTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionRotate || a == core.ActionSoftDrop {
		r.last[a] = now
	}
}

// Released returns the actions that have gone quiet since their last press
// and forgets them.
func (r *releaseTracker) Released(now time.Time) []core.Action {
	var out []core.Action
	for _, a := range []core.Action{core.ActionRotate, core.ActionSoftDrop} {
		t, ok := r.last[a]
		if ok && now.Sub(t) >= releaseAfter {
			out = append(out, a)
			delete(r.last, a)
		}
	}
	return out
}

// MenuKeyMap holds the bindings used by the menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Left, k.Right}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "quieter"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "louder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
