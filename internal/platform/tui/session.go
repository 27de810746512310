package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacetris/internal/audio"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/registry"
	"github.com/vovakirdan/spacetris/internal/storage"
	"github.com/vovakirdan/spacetris/internal/world"
)

// Options configure a play session.
type Options struct {
	Runtime   core.RuntimeConfig
	WorldID   string
	World     world.Config
	Top       int // Places in the score table
	Field     FieldOptions
	Starfield bool
	Logger    *log.Logger
}

type page int

const (
	pageMenu page = iota
	pageGame
	pageScores
)

// SessionModel drives one player's session: menu, play screen and
// scoreboard around a single world.
type SessionModel struct {
	opts     Options
	store    *storage.Store
	sound    *audio.SoundManager
	world    *world.World
	states   chan world.State
	stars    *Starfield
	current  page
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	gen      int
	quitting bool
}

// NewSessionModel creates the world for opts.WorldID and opens on the menu.
// store and sound may be nil.
func NewSessionModel(store *storage.Store, sound *audio.SoundManager, opts Options) (SessionModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	worldOpts := []world.Option{
		world.WithLogger(opts.Logger),
		world.WithSeed(opts.Runtime.Seed),
	}
	if store != nil {
		worldOpts = append(worldOpts, world.WithScoreKeeper(store.Keeper(opts.WorldID, opts.Top, opts.Logger)))
	}
	w, err := registry.Create(opts.WorldID, opts.World, worldOpts...)
	if err != nil {
		return SessionModel{}, err
	}

	states := make(chan world.State, 16)
	w.OnStateChange(func(s world.State) {
		select {
		case states <- s:
		default:
		}
	})

	if sound != nil {
		sound.Attach(w)
		if store != nil {
			restoreAudio(store, sound)
		}
	}

	m := SessionModel{
		opts:   opts,
		store:  store,
		sound:  sound,
		world:  w,
		states: states,
	}
	if opts.Starfield {
		m.stars = NewStarfield(opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Runtime.Seed)
	}
	m.menu = m.newMenu()
	return m, nil
}

func (m SessionModel) newMenu() MenuModel {
	st := MenuState{CanContinue: m.world.State() == world.StatePause}
	if m.sound != nil {
		st.HasSound = true
		st.SoundOn = m.sound.Enabled()
		st.MusicOn = m.sound.MusicEnabled()
		st.SoundVolume = toPercent(m.sound.Volume())
		st.MusicVolume = toPercent(m.sound.MusicVolume())
	}
	return NewMenuModel(st, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// highScore returns the best stored score for the session's world, or 0.
func (m SessionModel) highScore() int {
	if m.store == nil {
		return 0
	}
	hs, err := m.store.HighScore(m.opts.WorldID)
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "world", m.opts.WorldID, "error", err)
		return 0
	}
	return hs
}

// refreshMenu rebuilds the menu after a setting changed, keeping the cursor.
func (m *SessionModel) refreshMenu() {
	cursor := m.menu.Cursor()
	m.menu = m.newMenu()
	m.menu.cursor = cursor
}

func toPercent(gain float64) int {
	return int(math.Round(gain * 100))
}

func fromPercent(p int) float64 {
	return float64(p) / 100
}

// restoreAudio applies the saved audio settings, keeping the manager's
// values for anything never saved.
func restoreAudio(store *storage.Store, sound *audio.SoundManager) {
	sound.SetEnabled(store.BoolSetting(storage.SettingSound, sound.Enabled()))
	sound.SetMusicEnabled(store.BoolSetting(storage.SettingMusic, sound.MusicEnabled()))
	sound.SetVolume(fromPercent(store.IntSetting(storage.SettingSoundVolume, toPercent(sound.Volume()))))
	sound.SetMusicVolume(fromPercent(store.IntSetting(storage.SettingMusicVolume, toPercent(sound.MusicVolume()))))
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
		if m.stars != nil {
			m.stars.Resize(wsm.Width, wsm.Height)
		}
	}

	switch m.current {
	case pageGame:
		return m.updateGame(msg)
	case pageScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(MenuModel); ok {
		m.menu = menu
	}

	if delta := m.menu.Adjust(); delta != 0 {
		m.adjustVolume(m.menu.Selected().Choice, delta)
		m.refreshMenu()
		return m, cmd
	}

	switch m.menu.Chosen() {
	case ChoiceNewGame:
		m.world.NewGame()
		return m.enterGame()
	case ChoiceContinue:
		if m.world.Continue() {
			return m.enterGame()
		}
		m.menu = m.newMenu()
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.opts.WorldID, m.opts.Top, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.current = pageScores
		return m, m.scores.Init()
	case ChoiceSound:
		m.toggleSound()
		m.refreshMenu()
	case ChoiceMusic:
		m.toggleMusic()
		m.refreshMenu()
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *SessionModel) toggleSound() {
	if m.sound == nil {
		return
	}
	on := !m.sound.Enabled()
	m.sound.SetEnabled(on)
	m.saveSetting(storage.SettingSound, func() error {
		return m.store.SetBoolSetting(storage.SettingSound, on)
	})
}

func (m *SessionModel) toggleMusic() {
	if m.sound == nil {
		return
	}
	on := !m.sound.MusicEnabled()
	m.sound.SetMusicEnabled(on)
	m.saveSetting(storage.SettingMusic, func() error {
		return m.store.SetBoolSetting(storage.SettingMusic, on)
	})
}

// adjustVolume moves the effects or music volume by delta percent.
func (m *SessionModel) adjustVolume(choice MenuChoice, delta int) {
	if m.sound == nil {
		return
	}

	var key string
	var percent int
	switch choice {
	case ChoiceSound:
		percent = core.Clamp(toPercent(m.sound.Volume())+delta, 0, 100)
		m.sound.SetVolume(fromPercent(percent))
		key = storage.SettingSoundVolume
	case ChoiceMusic:
		percent = core.Clamp(toPercent(m.sound.MusicVolume())+delta, 0, 100)
		m.sound.SetMusicVolume(fromPercent(percent))
		key = storage.SettingMusicVolume
	default:
		return
	}
	m.saveSetting(key, func() error {
		return m.store.SetIntSetting(key, percent)
	})
}

// saveSetting runs save when the session has a store, logging failures.
func (m *SessionModel) saveSetting(key string, save func() error) {
	if m.store == nil {
		return
	}
	if err := save(); err != nil {
		m.opts.Logger.Warn("could not save setting", "key", key, "error", err)
	}
}

func (m SessionModel) enterGame() (tea.Model, tea.Cmd) {
	for len(m.states) > 0 {
		<-m.states
	}
	m.gen++
	m.opts.Field.HighScore = m.highScore()
	m.game = NewGameModel(m.world, m.states, m.opts.Runtime, m.opts.Field, m.stars, m.gen)
	m.current = pageGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if game, ok := newGame.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Leaving() {
		m.current = pageMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.current = pageMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case pageGame:
		return m.game.View()
	case pageScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// World returns the session's world.
func (m SessionModel) World() *world.World {
	return m.world
}

// Run plays a local session in the alternate screen until the player quits.
func Run(store *storage.Store, sound *audio.SoundManager, opts Options) error {
	model, err := NewSessionModel(store, sound, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
