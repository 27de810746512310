// Package tui is the Bubble Tea frontend for spacetris.
// It owns the terminal loop, key translation and drawing; all game rules
// live in the world package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the world by one frame. Gen identifies the
// tick loop that scheduled it so a loop abandoned on leaving the play
// screen dies out instead of running alongside its successor.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd schedules the next TickMsg at the given frames per second.
func tickCmd(fps, gen int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
