package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacetris/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceContinue
	ChoiceScores
	ChoiceSound
	ChoiceMusic
	ChoiceQuit
)

// volumeStep is how far left or right moves a volume slider, in percent.
const volumeStep = 5

// MenuItem is one line of the main menu.
type MenuItem struct {
	Choice  MenuChoice
	Title   string
	Enabled bool
	Slider  bool // Left and right adjust Volume
	Volume  int  // Percent
}

// MenuState describes what the menu should offer.
type MenuState struct {
	CanContinue bool // A run is paused
	HasSound    bool // A sound device is attached
	SoundOn     bool
	MusicOn     bool
	SoundVolume int // Percent
	MusicVolume int // Percent
}

func onOff(name string, on bool) string {
	if on {
		return name + ": On"
	}
	return name + ": Off"
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	keys   MenuKeyMap
	help   help.Model
	chosen MenuChoice
	adjust int
}

// NewMenuModel creates the main menu. The cursor starts on Continue when
// a run is paused, otherwise on New Game.
func NewMenuModel(st MenuState, width, height int) MenuModel {
	items := []MenuItem{
		{Choice: ChoiceNewGame, Title: "New Game", Enabled: true},
		{Choice: ChoiceContinue, Title: "Continue", Enabled: st.CanContinue},
		{Choice: ChoiceScores, Title: "High Scores", Enabled: true},
	}
	if st.HasSound {
		items = append(items,
			MenuItem{Choice: ChoiceSound, Title: onOff("Sound", st.SoundOn), Enabled: true, Slider: true, Volume: st.SoundVolume},
			MenuItem{Choice: ChoiceMusic, Title: onOff("Music", st.MusicOn), Enabled: true, Slider: true, Volume: st.MusicVolume},
		)
	}
	items = append(items, MenuItem{Choice: ChoiceQuit, Title: "Quit", Enabled: true})

	h := help.New()
	h.Width = width

	m := MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
	if st.CanContinue {
		m.cursor = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.adjust = 0
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.chosen = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.step(-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.step(1)
		case key.Matches(msg, m.keys.Left):
			if m.items[m.cursor].Slider {
				m.adjust = -volumeStep
			}
		case key.Matches(msg, m.keys.Right):
			if m.items[m.cursor].Slider {
				m.adjust = volumeStep
			}
		case key.Matches(msg, m.keys.Select):
			if item := m.items[m.cursor]; item.Enabled {
				m.chosen = item.Choice
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// step returns the next enabled item in direction dir, or the current
// cursor when there is none.
func (m MenuModel) step(dir int) int {
	for i := m.cursor + dir; i >= 0 && i < len(m.items); i += dir {
		if m.items[i].Enabled {
			return i
		}
	}
	return m.cursor
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	disabledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S P A C E T R I S"), m.width))
	b.WriteString("\n\n\n")

	for i, item := range m.items {
		style := itemStyle
		prefix := "  "
		switch {
		case !item.Enabled:
			style = disabledStyle
		case i == m.cursor:
			style = activeStyle
			prefix = "> "
		}
		line := prefix + item.Title + "  "
		if item.Slider {
			line += volumeBar(item.Volume) + " "
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the picked item, or ChoiceNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Adjust returns the volume change requested by the last key on the
// highlighted slider, or 0.
func (m MenuModel) Adjust() int {
	return m.adjust
}

// Selected returns the highlighted item.
func (m MenuModel) Selected() MenuItem {
	return m.items[m.cursor]
}

// Items returns the menu lines in display order.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Cursor returns the index of the highlighted item.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// volumeBar draws a ten-step gauge for a percentage.
func volumeBar(percent int) string {
	filled := core.Clamp(percent, 0, 100) / 10
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), core.Clamp(percent, 0, 100))
}

// centerText centers text within the given width, measuring it without
// escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
