package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/world"
)

// maxFrame caps the time step fed to the world after a stall.
const maxFrame = 250 * time.Millisecond

// GameModel is the play screen. It forwards keys to the world, advances it
// on every tick and draws it.
type GameModel struct {
	world    *world.World
	states   <-chan world.State
	screen   *core.Screen
	stars    *Starfield
	keys     GameKeyMap
	help     help.Model
	opts     FieldOptions
	release  *releaseTracker
	fps      int
	gen      int
	lastTick time.Time
	leaving  bool
	quitting bool
}

// NewGameModel creates the play screen for w. states receives the world's
// state transitions; stars may be nil to draw a plain background.
func NewGameModel(w *world.World, states <-chan world.State, cfg core.RuntimeConfig, opts FieldOptions, stars *Starfield, gen int) GameModel {
	h := help.New()
	h.Width = cfg.ScreenW
	return GameModel{
		world:   w,
		states:  states,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		stars:   stars,
		keys:    DefaultGameKeyMap(),
		help:    h,
		opts:    opts,
		release: newReleaseTracker(),
		fps:     cfg.TickRate,
		gen:     gen,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.fps, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

func (m *GameModel) resize(w, h int) {
	m.screen.Resize(w, max(h-1, 1))
	m.help.Width = w
}

func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	in := m.keys.MapKey(msg, m.world.State() == world.StateGameOver)
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.release.Press(in.Action, now)
	m.world.KeyPressed(in)
	m.drainStates()
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(max(m.fps, 1))
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxFrame)
	}
	m.lastTick = now

	for _, a := range m.release.Released(now) {
		m.world.KeyReleased(a)
	}
	m.world.Update(dt.Seconds())
	if m.stars != nil {
		m.stars.Update(dt)
	}
	m.drainStates()

	if m.leaving {
		return m, nil
	}
	return m, tickCmd(m.fps, m.gen)
}

// drainStates consumes pending transitions. Pause and Quit hand control
// back to the menu.
func (m *GameModel) drainStates() {
	for {
		select {
		case s := <-m.states:
			if s == world.StatePause || s == world.StateQuit {
				m.leaving = true
			}
		default:
			return
		}
	}
}

// View renders the play screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.stars != nil {
		m.stars.Draw(m.screen)
	}
	DrawField(m.screen, m.world, m.opts)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Leaving reports whether the run was paused or ended and the menu should return.
func (m GameModel) Leaving() bool {
	return m.leaving
}

// IsQuitting returns true if the user asked to exit the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}
