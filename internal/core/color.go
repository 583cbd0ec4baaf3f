package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
)
