package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code when drawing.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
	ColorOrange
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "9",
	ColorGreen:        "10",
	ColorYellow:       "11",
	ColorBlue:         "12",
	ColorMagenta:      "213",
	ColorCyan:         "14",
	ColorWhite:        "7",
	ColorGray:         "245",
	ColorBrightWhite:  "15",
	ColorBrightYellow: "228",
	ColorOrange:       "208",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
