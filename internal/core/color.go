package core

// Color is the foreground color of a screen cell. The platform maps each
// value to a terminal color.
type Color uint8

// Colors used by the renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
