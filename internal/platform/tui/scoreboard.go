package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacetris/internal/registry"
	"github.com/vovakirdan/spacetris/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the world list sidebar
	sidebarWidth       = 20
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextWorld key.Binding
	PrevWorld key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextWorld, k.PrevWorld, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextWorld, k.PrevWorld},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextWorld: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next world"),
		),
		PrevWorld: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev world"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top scores of each world preset.
type ScoreboardModel struct {
	worlds      []registry.Preset
	cursor      int
	store       *storage.Store
	top         int
	scores      []storage.ScoreEntry
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on worldID, listing top
// entries per world. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, worldID string, top, width, height int) ScoreboardModel {
	if top <= 0 {
		top = storage.DefaultTop
	}
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		worlds:      registry.List(),
		store:       store,
		top:         top,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, p := range m.worlds {
		if p.ID == worldID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.worlds) > 0 {
		m.loadScores(m.worlds[m.cursor].ID)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 20},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(min(m.top, m.height-8), 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) loadScores(worldID string) {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(worldID, m.top); err == nil {
			m.scores = scores
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextWorld):
			m.selectWorld(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevWorld):
			m.selectWorld(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) selectWorld(i int) {
	if len(m.worlds) == 0 {
		return
	}
	m.cursor = (i + len(m.worlds)) % len(m.worlds)
	m.loadScores(m.worlds[m.cursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if len(m.worlds) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.worlds[m.cursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(), "  ", boxStyle.Render(m.renderTableContent())))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.currentTitle()), m.width))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(m.renderTableContent()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) currentTitle() string {
	if len(m.worlds) == 0 {
		return ""
	}
	return m.worlds[m.cursor].Title
}

func (m ScoreboardModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Worlds\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, p := range m.worlds {
		line := lipgloss.NewStyle()
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(line.Render(cursor + p.Title))
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nClear some lines to get on the board!")
	}
	return m.table.View()
}

// Scores returns the entries currently listed.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// WorldID returns the preset whose scores are shown.
func (m ScoreboardModel) WorldID() string {
	if len(m.worlds) == 0 {
		return ""
	}
	return m.worlds[m.cursor].ID
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
