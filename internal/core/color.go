package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB pixel value.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// toColorful converts to go-colorful's float representation.
func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Lerp blends from a to b by t, clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	r, g, bl := a.toColorful().BlendRgb(b.toColorful(), t).Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}

// Mix returns the midpoint of two colors.
func Mix(a, b Color) Color {
	return Lerp(a, b, 0.5)
}

// Palette shared by the games.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorText  = RGB(240, 240, 240)
)
