package core

// Color represents a foreground color for a screen cell.
// Renderers map it to ANSI codes; the simulation never sees it.
type Color uint8

// Predefined colors for terrain and plane rendering.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
