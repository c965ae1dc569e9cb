package core

import "image/color"

// Color is a palette entry shared by the terminal and window hosts.
// The terminal host renders it as an ANSI 256-color code, the window host as RGB.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

type swatch struct {
	ansi string
	rgb  color.RGBA
}

var swatches = [...]swatch{
	ColorDefault:       {"", color.RGBA{255, 255, 255, 255}},
	ColorRed:           {"1", color.RGBA{205, 49, 49, 255}},
	ColorGreen:         {"2", color.RGBA{13, 188, 121, 255}},
	ColorYellow:        {"3", color.RGBA{229, 229, 16, 255}},
	ColorBlue:          {"4", color.RGBA{36, 114, 200, 255}},
	ColorMagenta:       {"5", color.RGBA{188, 63, 188, 255}},
	ColorCyan:          {"6", color.RGBA{17, 168, 205, 255}},
	ColorWhite:         {"7", color.RGBA{229, 229, 229, 255}},
	ColorBrightRed:     {"9", color.RGBA{241, 76, 76, 255}},
	ColorBrightGreen:   {"10", color.RGBA{35, 209, 139, 255}},
	ColorBrightYellow:  {"11", color.RGBA{245, 245, 67, 255}},
	ColorBrightBlue:    {"12", color.RGBA{59, 142, 234, 255}},
	ColorBrightMagenta: {"13", color.RGBA{214, 112, 214, 255}},
	ColorBrightCyan:    {"14", color.RGBA{41, 184, 219, 255}},
	ColorBrightWhite:   {"15", color.RGBA{255, 255, 255, 255}},
	ColorOrange:        {"208", color.RGBA{255, 135, 0, 255}},
	ColorGray:          {"245", color.RGBA{138, 138, 138, 255}},
}

func (c Color) swatch() swatch {
	if int(c) < len(swatches) {
		return swatches[c]
	}
	return swatches[ColorDefault]
}

// ANSI returns the terminal color code, or "" for the terminal's own foreground.
func (c Color) ANSI() string { return c.swatch().ansi }

// RGB returns the window color. Unknown colors fall back to the default.
func (c Color) RGB() color.RGBA { return c.swatch().rgb }
