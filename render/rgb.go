package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Predefined default color
var (
	ColorBlack = colorful.Color{}
	ColorWhite = colorful.Color{R: 1, G: 1, B: 1}
)

// toTcell converts a linear-clamped color to a 24-bit terminal color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// scale multiplies each channel by k
func scale(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// modulate multiplies channel-wise, the filter of a light color on a surface color
func modulate(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// add sums channel-wise without clamping
func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
