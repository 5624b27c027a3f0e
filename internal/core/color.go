package core

// Color is the foreground color of a screen cell. The platform layer maps each
// value to a terminal color; games never deal with escape codes.
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
	ColorOrange
	ColorGray
	ColorDim
	ColorBrightYellow
	ColorBrightWhite
)

// ANSI returns the 256-color palette index for c, or "" for the terminal
// default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorDim:
		return "238"
	case ColorBrightYellow:
		return "11"
	case ColorBrightWhite:
		return "15"
	default:
		return ""
	}
}
