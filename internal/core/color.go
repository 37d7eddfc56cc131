package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the renderer. The platform maps them to terminal styles.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightWhite
)
