package tui

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacetris/internal/core"
	"github.com/vovakirdan/spacetris/internal/engine"
	"github.com/vovakirdan/spacetris/internal/tetromino"
	"github.com/vovakirdan/spacetris/internal/world"
)

func playingWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(world.DefaultConfig(), world.WithSeed(5), world.WithLogger(log.New(io.Discard)))
	w.NewGame()
	w.SetState(world.StatePlaying)
	if !w.ForceSpawn(tetromino.O) {
		t.Fatal("ForceSpawn(O) failed on an empty field")
	}
	return w
}

func TestLayoutField(t *testing.T) {
	l := LayoutField(80, 24, 20, 10, true)

	if l.Field.W != 22 || l.Field.H != 22 {
		t.Errorf("field = %dx%d, expected 22x22", l.Field.W, l.Field.H)
	}
	if l.Stats.Right()+panelGap != l.Field.X {
		t.Errorf("stats end at %d, field starts at %d", l.Stats.Right(), l.Field.X)
	}
	if l.Next.X != l.Field.Right()+panelGap {
		t.Errorf("next panel at %d, expected %d", l.Next.X, l.Field.Right()+panelGap)
	}
	total := statsWidth + panelGap + 22 + panelGap + panelWidth
	if l.Stats.X != (80-total)/2 {
		t.Errorf("left edge = %d, expected centered at %d", l.Stats.X, (80-total)/2)
	}

	small := LayoutField(10, 5, 20, 10, false)
	if small.Field.X != 0 || small.Field.Y != 0 {
		t.Errorf("small screen field at (%d,%d), expected (0,0)", small.Field.X, small.Field.Y)
	}
}

func TestDrawFieldPiece(t *testing.T) {
	w := playingWorld(t)
	s := core.NewScreen(80, 24)
	DrawField(s, w, FieldOptions{})

	l := LayoutField(80, 24, 20, 10, false)
	for _, b := range w.Current().Blocks {
		if b.Y < 0 {
			continue
		}
		x := l.Field.X + 1 + b.X*cellWidth
		y := l.Field.Y + 1 + b.Y
		cell := s.GetCell(x, y)
		if cell.Rune != '[' || s.Get(x+1, y) != ']' {
			t.Errorf("block %v drawn as %q%q", b, cell.Rune, s.Get(x+1, y))
		}
		if cell.Color != core.ColorYellow {
			t.Errorf("block %v color = %v, expected yellow", b, cell.Color)
		}
	}
}

func TestDrawFieldShadow(t *testing.T) {
	w := playingWorld(t)
	l := LayoutField(80, 24, 20, 10, false)

	withShadow := core.NewScreen(80, 24)
	DrawField(withShadow, w, FieldOptions{LandingShadow: true})
	without := core.NewScreen(80, 24)
	DrawField(without, w, FieldOptions{})

	for _, b := range w.Landing() {
		x := l.Field.X + 1 + b.X*cellWidth
		y := l.Field.Y + 1 + b.Y
		if withShadow.Get(x, y) != ':' {
			t.Errorf("shadow missing at %v", b)
		}
		if without.Get(x, y) == ':' {
			t.Errorf("shadow drawn at %v while disabled", b)
		}
	}
}

func TestDrawFieldSettledCells(t *testing.T) {
	w := playingWorld(t)
	w.HardDrop()

	s := core.NewScreen(80, 24)
	DrawField(s, w, FieldOptions{})
	l := LayoutField(80, 24, 20, 10, false)

	bottom := s.Row(l.Field.Y + 20)
	if strings.Count(bottom, "[]") != 2 {
		t.Errorf("bottom row %q, expected two settled blocks", bottom)
	}
}

func TestDrawFieldPanels(t *testing.T) {
	w := playingWorld(t)
	s := core.NewScreen(80, 24)
	DrawField(s, w, FieldOptions{Statistics: true})

	text := s.String()
	for _, want := range []string{"NEXT", "SCORE", "LINES", "LEVEL", "STATS"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestDrawFieldOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *world.World)
		want  string
	}{
		{"countdown", func(w *world.World) { w.NewGame() }, "GET READY"},
		{"paused", func(w *world.World) { w.Pause() }, "PAUSED"},
		{"game over", func(w *world.World) { w.SetState(world.StateGameOver) }, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := playingWorld(t)
			tt.setup(w)
			s := core.NewScreen(80, 24)
			DrawField(s, w, FieldOptions{})
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("screen missing %q", tt.want)
			}
		})
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "[]", core.ColorCyan)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	if !strings.Contains(out, "[]") || !strings.Contains(out, "ok") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}

func TestDrawBlocksClipsToWell(t *testing.T) {
	s := core.NewScreen(40, 10)
	well := core.NewRect(0, 0, 4*cellWidth+2, 5+2) // 4 columns, 5 rows
	blocks := [4]core.Point{core.Pt(-1, 0), core.Pt(4, 1), core.Pt(0, -1), core.Pt(0, 0)}

	drawBlocks(s, well, blocks, "[]", core.ColorWhite, engine.Piece{})

	if got := strings.Count(s.String(), "[]"); got != 1 {
		t.Errorf("drew %d blocks, expected only the one inside the well:\n%s", got, s.String())
	}
	if !strings.HasPrefix(s.Row(1), " []") {
		t.Errorf("row 1 = %q, expected the block in the top-left cell", s.Row(1))
	}
}

func TestDrawFieldHighScore(t *testing.T) {
	w := playingWorld(t)
	s := core.NewScreen(80, 24)
	DrawField(s, w, FieldOptions{HighScore: 4321})

	l := LayoutField(80, 24, 20, 10, false)
	if got := s.Row(l.HUD.Y + 2); !strings.Contains(got, "HIGH") {
		t.Errorf("row %q, expected the HIGH label under the score", got)
	}
	if got := s.Row(l.HUD.Y + 3); !strings.Contains(got, "4321") {
		t.Errorf("row %q, expected the stored high score", got)
	}

	// A run beating the stored best shows its own score.
	w.HardDrop()
	if w.Score() == 0 {
		t.Fatal("a hard drop should score the landing bonus")
	}
	s.Clear()
	DrawField(s, w, FieldOptions{HighScore: 0})
	want := fmt.Sprintf("%d", w.Score())
	if got := lastField(s.Row(l.HUD.Y + 3)); got != want {
		t.Errorf("high score = %q, expected the run's %s", got, want)
	}
}

func lastField(row string) string {
	fields := strings.Fields(row)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
