package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the play field and HUD.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorMagenta
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorBrightRed
)

// blockColors maps settled cell values (shape ids 1..7) to their colors,
// in the classic guideline order I, J, L, O, S, Z, T.
var blockColors = [...]Color{
	ColorDefault,
	ColorCyan,
	ColorBlue,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorRed,
	ColorMagenta,
}

// BlockColor returns the color used to draw a grid cell holding value v.
// Unknown values render with the default color.
func BlockColor(v int) Color {
	if v < 0 || v >= len(blockColors) {
		return ColorDefault
	}
	return blockColors[v]
}
