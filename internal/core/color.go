package core

// Color is a foreground color for a screen cell, written as a 6-digit
// hex string ("#rrggbb"). The zero value means the terminal default.
type Color string

const ColorDefault Color = ""

// Colors used by chrome around the balloons.
const (
	ColorText   Color = "#333333"
	ColorMuted  Color = "#666666"
	ColorAccent Color = "#6366f1"
	ColorThread Color = "#999999"
	ColorBorder Color = "#e5e7eb"
)

// Valid reports whether c is empty or a well-formed "#rrggbb" value.
func (c Color) Valid() bool {
	if c == ColorDefault {
		return true
	}
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for _, r := range c[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
