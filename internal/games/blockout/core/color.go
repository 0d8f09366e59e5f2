package core

import (
	"fmt"
	"strings"
)

// Color identifies a piece category. Pieces exit only through gates of the
// same color. ColorWall is reserved for immovable walls.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorOrange
	ColorYellow
	ColorCyan
	ColorPurple
	ColorPink
	ColorWall
	ColorCount // Sentinel value for iteration
)

// rgb values written and read by the text level format.
var rgb = [ColorCount][3]uint8{
	ColorRed:    {231, 76, 60},
	ColorBlue:   {52, 152, 219},
	ColorGreen:  {46, 204, 113},
	ColorOrange: {230, 126, 34},
	ColorYellow: {241, 196, 15},
	ColorCyan:   {52, 231, 228},
	ColorPurple: {162, 155, 254},
	ColorPink:   {253, 121, 168},
	ColorWall:   {80, 80, 90},
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	case ColorWall:
		return "wall"
	default:
		return "unknown"
	}
}

// RGB returns the theme color components.
func (c Color) RGB() (r, g, b uint8) {
	if c >= ColorCount {
		return 0, 0, 0
	}
	v := rgb[c]
	return v[0], v[1], v[2]
}

// Next returns the following playable color, wrapping around.
// The wall color is never produced.
func (c Color) Next() Color {
	if c >= ColorWall {
		return ColorRed
	}
	return (c + 1) % ColorWall
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "blue", "b":
		return ColorBlue, true
	case "green", "g":
		return ColorGreen, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "cyan", "c":
		return ColorCyan, true
	case "purple", "p":
		return ColorPurple, true
	case "pink", "k":
		return ColorPink, true
	case "wall", "w":
		return ColorWall, true
	default:
		return ColorRed, false
	}
}

// ColorFromRGB maps theme components back to a Color.
func ColorFromRGB(r, g, b uint8) (Color, error) {
	for c := Color(0); c < ColorCount; c++ {
		if rgb[c] == [3]uint8{r, g, b} {
			return c, nil
		}
	}
	return ColorRed, fmt.Errorf("unknown color rgb(%d,%d,%d)", r, g, b)
}
