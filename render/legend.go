package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// LegendItem is one key label in the legend bar
type LegendItem struct {
	Key   rune
	Label string
}

// Legend is the key bar drawn under the kit
// Pressed keys are drawn highlighted until released
type Legend struct {
	items   []LegendItem
	pressed map[rune]bool
}

// NewLegend creates a legend listing items in order
func NewLegend(items []LegendItem) *Legend {
	return &Legend{
		items:   append([]LegendItem(nil), items...),
		pressed: make(map[rune]bool),
	}
}

// Items returns the legend entries in display order
func (l *Legend) Items() []LegendItem {
	return append([]LegendItem(nil), l.items...)
}

// Press highlights key, reports whether the legend lists it
func (l *Legend) Press(key rune) bool {
	for _, it := range l.items {
		if it.Key == key {
			l.pressed[key] = true
			return true
		}
	}
	return false
}

// Release clears the highlight of key
func (l *Legend) Release(key rune) {
	delete(l.pressed, key)
}

// Pressed reports whether key is highlighted
func (l *Legend) Pressed(key rune) bool {
	return l.pressed[key]
}

// Draw renders the bar on one screen row, truncated at width
func (l *Legend) Draw(s tcell.Screen, row, width int) {
	base := tcell.StyleDefault.Background(RgbLegendBg)
	for x := 0; x < width; x++ {
		s.SetContent(x, row, ' ', nil, base)
	}

	x := 1
	for _, it := range l.items {
		keyStyle := base.Foreground(RgbLegendKey).Bold(true)
		labelStyle := base.Foreground(RgbLegendLabel)
		if l.pressed[it.Key] {
			keyStyle = tcell.StyleDefault.Background(RgbLegendPressedBg).Foreground(RgbLegendPressedFg).Bold(true)
			labelStyle = keyStyle.Bold(false)
		}

		x = drawText(s, x, row, width, string(unicode.ToUpper(it.Key)), keyStyle)
		x = drawText(s, x, row, width, " "+it.Label, labelStyle)
		x += 2
		if x >= width {
			return
		}
	}
}

// drawText writes text from x, returns the column after the last rune
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= width {
			return x
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
