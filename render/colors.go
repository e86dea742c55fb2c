package render

import (
	"github.com/gdamore/tcell/v2"
)

// Legend bar colors
var (
	RgbLegendBg        = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbLegendKey       = tcell.NewRGBColor(255, 165, 0)   // Orange key letter
	RgbLegendLabel     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbLegendPressedBg = tcell.NewRGBColor(255, 255, 255) // Bright white flash
	RgbLegendPressedFg = tcell.NewRGBColor(0, 0, 0)       // Dark text on flash
)
