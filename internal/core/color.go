package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Style is the full visual attribute set of a cell.
// Reverse swaps foreground and background, which is how the selection
// and the cursor are shown without needing background colors.
type Style struct {
	Color   Color
	Bold    bool
	Reverse bool
}

// Plain returns a style with only a foreground color.
func Plain(c Color) Style {
	return Style{Color: c}
}

// ValueColor picks a stable color for a board digit so equal numbers
// read as a group at a glance.
func ValueColor(v int) Color {
	switch v {
	case 1:
		return ColorBrightCyan
	case 2:
		return ColorBrightGreen
	case 3:
		return ColorBrightYellow
	case 4:
		return ColorOrange
	case 5:
		return ColorBrightMagenta
	case 6:
		return ColorBrightBlue
	case 7:
		return ColorBrightRed
	case 8:
		return ColorCyan
	case 9:
		return ColorMagenta
	default:
		return ColorGray
	}
}
