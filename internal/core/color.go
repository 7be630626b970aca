package core

// Color is a foreground colour for a screen cell.
// The platform maps it onto terminal colours.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorGray
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
)
