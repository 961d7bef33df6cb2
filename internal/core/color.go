package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the board and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorGray
	ColorBrightWhite
)

// ansiCodes holds the ANSI 256-color code for every non-default color.
var ansiCodes = map[Color]string{
	ColorRed:         "9",
	ColorGreen:       "2",
	ColorBrightGreen: "10",
	ColorYellow:      "11",
	ColorGray:        "245",
	ColorBrightWhite: "15",
}

// Code returns the ANSI 256-color code for c, or "" for the terminal default.
func (c Color) Code() string {
	return ansiCodes[c]
}
