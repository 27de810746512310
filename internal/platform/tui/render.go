package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
