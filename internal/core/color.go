package core

// Color is a foreground color for a screen cell, mapped to an ANSI 256
// palette entry by the terminal frontend.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorPink
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorNavy
	ColorGray
	ColorWhite
)

// ANSI returns the 256-color palette index for the color.
// ColorDefault returns an empty string so the terminal default is kept.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "203"
	case ColorOrange:
		return "215"
	case ColorPink:
		return "205"
	case ColorYellow:
		return "229"
	case ColorGreen:
		return "71"
	case ColorCyan:
		return "80"
	case ColorBlue:
		return "68"
	case ColorNavy:
		return "17"
	case ColorGray:
		return "245"
	case ColorWhite:
		return "15"
	default:
		return ""
	}
}
