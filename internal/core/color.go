package core

import "image/color"

// Color represents a foreground color for a screen cell or draw command.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorGray
)

// palette holds the RGB value used by pixel-based frontends.
var palette = map[Color]color.RGBA{
	ColorDefault:   {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	ColorRed:       {R: 0xe0, G: 0x20, B: 0x20, A: 0xff},
	ColorGreen:     {R: 0x20, G: 0xc0, B: 0x40, A: 0xff},
	ColorYellow:    {R: 0xf0, G: 0xe0, B: 0x20, A: 0xff},
	ColorBlue:      {R: 0x20, G: 0x40, B: 0xf0, A: 0xff},
	ColorMagenta:   {R: 0xc0, G: 0x30, B: 0xc0, A: 0xff},
	ColorCyan:      {R: 0x20, G: 0xc0, B: 0xd0, A: 0xff},
	ColorWhite:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightRed: {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
	ColorGray:      {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// RGBA returns the color as an opaque RGBA value.
// Unknown colors map to the default foreground.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}
