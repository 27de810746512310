package tui

import (
	"fmt"

	"github.com/vovakirdan/spacetris/internal/board"
	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/engine"
	"github.com/vovakirdan/spacetris/internal/tetromino"
	"github.com/vovakirdan/spacetris/internal/world"
)

// FieldView is the read-only slice of a world the play screen draws from.
type FieldView interface {
	State() world.State
	Grid() *board.Grid
	Current() engine.Piece
	Landing() [4]core.Point
	Next() tetromino.Shape
	Score() int
	Lines() int
	Level() int
	Countdown() int
	CountingDown() bool
	Name() string
	Qualifies() bool
	ShapeCount(tetromino.Shape) int
}

var _ FieldView = (*world.World)(nil)

// FieldOptions toggles optional parts of the play screen.
type FieldOptions struct {
	LandingShadow bool
	Statistics    bool
	HighScore     int // Best stored score for the world
}

// Play screen layout, in screen cells. Every grid cell is two characters wide.
const (
	cellWidth  = 2
	statsWidth = 14
	panelWidth = 14
	panelGap   = 2
)

// FieldLayout positions the panels of the play screen.
type FieldLayout struct {
	Stats core.Rect
	Field core.Rect // Border included
	Next  core.Rect
	HUD   core.Point
}

// LayoutField centers a rows x columns field on a w x h screen with the
// statistics panel on its left and the next piece and totals on its right.
func LayoutField(w, h, rows, columns int, stats bool) FieldLayout {
	fieldW := columns*cellWidth + 2
	fieldH := rows + 2
	total := fieldW + panelGap + panelWidth
	if stats {
		total += statsWidth + panelGap
	}

	x := max((w-total)/2, 0)
	y := max((h-fieldH)/2, 0)

	var l FieldLayout
	if stats {
		l.Stats = core.NewRect(x, y, statsWidth, tetromino.Count+3)
		x += statsWidth + panelGap
	}
	l.Field = core.NewRect(x, y, fieldW, fieldH)
	l.Next = core.NewRect(l.Field.Right()+panelGap, y, panelWidth, 6)
	l.HUD = core.Pt(l.Next.X, l.Next.Bottom()+1)
	return l
}

// DrawField renders the whole play screen for v into s.
func DrawField(s *core.Screen, v FieldView, opts FieldOptions) {
	g := v.Grid()
	l := LayoutField(s.Width(), s.Height(), g.Rows(), g.Columns(), opts.Statistics)

	drawGrid(s, l.Field, g)
	piece := v.Current()
	if piece.Live() && v.State() != world.StateGameOver {
		if opts.LandingShadow {
			drawBlocks(s, l.Field, v.Landing(), "::", core.ColorGray, piece)
		}
		drawBlocks(s, l.Field, piece.Blocks, "[]", core.BlockColor(piece.Color), engine.Piece{})
	}

	drawNext(s, l.Next, v.Next())
	drawTotals(s, l.HUD, v, opts.HighScore)
	if opts.Statistics {
		drawStats(s, l.Stats, v)
	}
	drawOverlay(s, l.Field, v)
}

func drawGrid(s *core.Screen, r core.Rect, g *board.Grid) {
	s.DrawBox(r, core.ColorGray)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			x := r.X + 1 + col*cellWidth
			y := r.Y + 1 + row
			if v := g.Cell(row, col); v != 0 {
				s.DrawTextColored(x, y, "[]", core.BlockColor(v))
			} else {
				s.DrawTextColored(x, y, " .", core.ColorGray)
			}
		}
	}
}

// drawBlocks paints blocks inside the field border r, clipping anything
// outside the well and any cell occupied by skip.
func drawBlocks(s *core.Screen, r core.Rect, blocks [4]core.Point, glyph string, c core.Color, skip engine.Piece) {
	well := core.NewRect(0, 0, (r.W-2)/cellWidth, r.H-2)
	for _, b := range blocks {
		if !well.Contains(b.X, b.Y) || skip.Occupies(b.X, b.Y) {
			continue
		}
		s.DrawTextColored(r.X+1+b.X*cellWidth, r.Y+1+b.Y, glyph, c)
	}
}

func drawNext(s *core.Screen, r core.Rect, next tetromino.Shape) {
	s.DrawBox(r, core.ColorGray)
	s.DrawTextColored(r.X+2, r.Y, " NEXT ", core.ColorWhite)
	if !next.Valid() {
		return
	}
	for row := 0; row < tetromino.Size; row++ {
		for col := 0; col < tetromino.Size; col++ {
			v := tetromino.Block(next, tetromino.DefaultRotation, row, col)
			if v == 0 {
				continue
			}
			x := r.X + 3 + col*cellWidth
			y := r.Y + 1 + row
			s.DrawTextColored(x, y, "[]", core.BlockColor(v))
		}
	}
}

// drawTotals prints the run totals. HIGH follows the score once the
// stored best is beaten.
func drawTotals(s *core.Screen, at core.Point, v FieldView, high int) {
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", v.Score()},
		{"HIGH", max(high, v.Score())},
		{"LINES", v.Lines()},
		{"LEVEL", v.Level()},
	}
	for i, r := range rows {
		s.DrawTextColored(at.X, at.Y+i*2, r.label, core.ColorGray)
		s.DrawTextColored(at.X, at.Y+i*2+1, fmt.Sprintf("%d", r.value), core.ColorBrightWhite)
	}
}

func drawStats(s *core.Screen, r core.Rect, v FieldView) {
	s.DrawBox(r, core.ColorGray)
	s.DrawTextColored(r.X+2, r.Y, " STATS ", core.ColorWhite)
	for i, shape := range tetromino.All() {
		y := r.Y + 2 + i
		s.DrawTextColored(r.X+2, y, shape.String(), core.BlockColor(int(shape)))
		s.DrawText(r.X+5, y, fmt.Sprintf("%6d", v.ShapeCount(shape)))
	}
}

func drawOverlay(s *core.Screen, r core.Rect, v FieldView) {
	var lines []string
	color := core.ColorBrightWhite

	switch {
	case v.State() == world.StateGameOver:
		color = core.ColorBrightRed
		lines = []string{"GAME OVER", ""}
		if v.Qualifies() {
			lines = append(lines, "HIGH SCORE!", "NAME:", v.Name()+"_", "", "ENTER save")
		} else {
			lines = append(lines, "ENTER/ESC")
		}
	case v.CountingDown():
		lines = []string{"GET READY", "", fmt.Sprintf("%d", v.Countdown())}
	case v.State() == world.StatePause:
		lines = []string{"PAUSED"}
	default:
		return
	}

	inner := r.W - 2
	top := r.Y + 1 + (r.H-2-len(lines))/2
	s.FillRect(core.NewRect(r.X+1, top-1, inner, len(lines)+2))
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > inner {
			runes = runes[len(runes)-inner:]
		}
		x := r.X + 1 + (inner-len(runes))/2
		s.DrawTextColored(x, top+i, string(runes), color)
	}
}
