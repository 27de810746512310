// Package world runs one game of falling blocks: the state machine around
// the placement engine, the start countdown, gravity, input handling and
// name entry after game over.
//
// A World is driven from a single goroutine through Update, KeyPressed and
// the command methods. State and Countdown may be read from any goroutine.
package world

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/spacetris/internal/board"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/engine"
	"github.com/vovakirdan/spacetris/internal/tetromino"
)

// Config holds the parameters a world is built with.
type Config struct {
	Rows              int
	Columns           int
	CountdownTicks    int
	CountdownInterval time.Duration
	MaxNameLength     int
}

// DefaultConfig returns the classic 20x10 field with a 4 tick, 500ms countdown.
func DefaultConfig() Config {
	return Config{
		Rows:              20,
		Columns:           10,
		CountdownTicks:    4,
		CountdownInterval: 500 * time.Millisecond,
		MaxNameLength:     20,
	}
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

// WithSeed sets the seed for the shape randomizer.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.seed = seed
	}
}

// WithScoreKeeper sets where finished runs are recorded.
func WithScoreKeeper(k ScoreKeeper) Option {
	return func(w *World) {
		w.keeper = k
	}
}

// World is one play field and everything needed to play on it.
type World struct {
	cfg    Config
	logger *log.Logger
	seed   int64
	keeper ScoreKeeper

	grid      *board.Grid
	engine    *engine.Engine
	run       *engine.Run
	countdown *Countdown
	state     atomic.Int32

	fallTimer   float64
	softDrop    bool // Soft drop is accepted
	rotateReady bool // Rotate key was released since the last rotation
	name        []rune
	stats       *intmap.Map[tetromino.Shape, int]

	eventHandlers []func(Event)
	stateHandlers []func(State)
}

// New creates a world with no run in progress. Call NewGame to start playing.
func New(cfg Config, opts ...Option) *World {
	def := DefaultConfig()
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		cfg.Rows, cfg.Columns = def.Rows, def.Columns
	}
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = def.MaxNameLength
	}

	w := &World{
		cfg:         cfg,
		logger:      log.New(io.Discard),
		softDrop:    true,
		rotateReady: true,
		stats:       intmap.New[tetromino.Shape, int](tetromino.Count),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.grid = board.New(cfg.Rows, cfg.Columns)
	w.engine = engine.New(w.grid, tetromino.NewRandomizer(w.seed))
	w.run = engine.NewRun()
	w.countdown = NewCountdown(cfg.CountdownTicks, cfg.CountdownInterval)
	w.state.Store(int32(StateQuit))
	return w
}

// State returns the current lifecycle state.
func (w *World) State() State {
	return State(w.state.Load())
}

// SetState moves the world to s. Listeners are told only when the state
// actually changes. Entering NewGame always resets the run and starts the
// countdown; entering Continue restarts the countdown.
func (w *World) SetState(s State) {
	old := State(w.state.Swap(int32(s)))
	if old != s {
		w.logger.Debug("state changed", "from", old, "to", s)
		w.notify(s)
	}

	switch s {
	case StateNewGame:
		w.reset()
		if w.State() == StateNewGame {
			w.startCountdown()
		}
	case StateContinue:
		w.startCountdown()
	case StatePlaying, StatePause, StateGameOver, StateQuit:
		w.countdown.Stop()
	}
}

func (w *World) startCountdown() {
	if w.countdown.Start() {
		w.SetState(StatePlaying)
	}
}

func (w *World) reset() {
	w.name = w.name[:0]
	w.grid.Clear()
	w.run.Reset()
	w.stats.Clear()
	w.fallTimer = 0
	w.softDrop = true
	w.rotateReady = true
	w.spawn()
}

// spawn brings in the next piece, ending the run if it does not fit.
func (w *World) spawn() bool {
	if !w.engine.SpawnNext(w.run) {
		w.gameOver()
		return false
	}
	w.countShape(w.run.Current.Shape)
	return true
}

func (w *World) countShape(s tetromino.Shape) {
	n, _ := w.stats.Get(s)
	w.stats.Put(s, n+1)
}

func (w *World) gameOver() {
	w.logger.Debug("game over", "score", w.run.Score, "lines", w.run.Lines, "level", w.run.Level)
	w.emit(EventGameOver)
	w.SetState(StateGameOver)
}

// NewGame starts a fresh run.
func (w *World) NewGame() {
	w.SetState(StateNewGame)
}

// Continue resumes a paused run after a countdown. It reports false when
// the world is not paused.
func (w *World) Continue() bool {
	if w.State() != StatePause {
		return false
	}
	w.SetState(StateContinue)
	return true
}

// Pause freezes the run. A pending countdown is cancelled.
// Pausing after game over or without a run does nothing.
func (w *World) Pause() {
	switch w.State() {
	case StateNewGame, StatePlaying, StateContinue:
		w.SetState(StatePause)
	}
}

// Quit ends the run without recording it.
func (w *World) Quit() {
	w.SetState(StateQuit)
}

// ForceSpawn replaces the active piece with shape at the spawn position.
// The queued shape is kept. It reports whether the piece fits.
func (w *World) ForceSpawn(shape tetromino.Shape) bool {
	return w.engine.Spawn(w.run, shape)
}

// MoveTetromino translates the active piece while playing. A blocked
// downward move locks the piece and may clear rows, raise the level or
// end the run.
func (w *World) MoveTetromino(dx, dy int) engine.MoveOutcome {
	if w.State() != StatePlaying {
		return engine.MoveOutcome{}
	}

	out := w.engine.TryMove(w.run, dx, dy)
	if !out.Locked {
		return out
	}

	w.softDrop = false
	if out.Lines > 0 {
		w.logger.Debug("lines cleared", "count", out.Lines, "total", w.run.Lines)
		w.emit(EventLineClear)
	} else {
		w.emit(EventDrop)
	}
	if out.LevelUp {
		w.logger.Debug("level up", "level", w.run.Level)
		w.emit(EventLevelUp)
	}

	if out.SpawnFailed {
		w.gameOver()
	} else {
		w.countShape(w.run.Current.Shape)
	}
	return out
}

// RotateTetromino rotates the active piece while playing.
func (w *World) RotateTetromino() bool {
	if w.State() != StatePlaying {
		return false
	}
	return w.engine.TryRotate(w.run)
}

// HardDrop moves the active piece straight to its landing position and
// locks it there.
func (w *World) HardDrop() {
	if w.State() != StatePlaying {
		return
	}
	landing := w.engine.LandingPosition(w.run.Current)
	w.MoveTetromino(0, landing[0].Y-w.run.Current.Blocks[0].Y)
	w.MoveTetromino(0, 1)
}

// Update advances the world by dt seconds: the countdown first, then
// gravity. The piece steps down once every FallDelay seconds of play.
func (w *World) Update(dt float64) {
	if w.countdown.Advance(time.Duration(dt * float64(time.Second))) {
		if w.State().CountingDown() {
			w.SetState(StatePlaying)
		}
	}

	if w.State() != StatePlaying {
		return
	}
	w.fallTimer += dt
	if w.fallTimer > w.run.FallDelay {
		w.MoveTetromino(0, 1)
		w.fallTimer = 0
	}
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Grid returns the settled blocks. Callers must not modify it.
func (w *World) Grid() *board.Grid {
	return w.grid
}

// Current returns the active piece.
func (w *World) Current() engine.Piece {
	return w.run.Current
}

// Landing returns where the active piece would come to rest.
func (w *World) Landing() [4]core.Point {
	return w.engine.LandingPosition(w.run.Current)
}

// Next returns the queued shape.
func (w *World) Next() tetromino.Shape {
	return w.run.Next
}

func (w *World) Score() int { return w.run.Score }
func (w *World) Lines() int { return w.run.Lines }
func (w *World) Level() int { return w.run.Level }
func (w *World) FallDelay() float64 { return w.run.FallDelay }
func (w *World) Countdown() int { return w.countdown.Remaining() }
func (w *World) CountingDown() bool { return w.countdown.Running() }
func (w *World) Name() string { return string(w.name) }

// ShapeCount returns how many pieces of shape have spawned this run.
func (w *World) ShapeCount(shape tetromino.Shape) int {
	n, _ := w.stats.Get(shape)
	return n
}

// Qualifies reports whether the current score earns a place in the score table.
func (w *World) Qualifies() bool {
	return w.keeper != nil && w.keeper.Qualifies(w.run.Score)
}
