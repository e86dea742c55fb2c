package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drumkit/constant"
)

// Sizer reports a pixel extent
type Sizer interface {
	Size() (width, height int)
}

// Viewport is the drum pane: the screen minus the legend rows, in surface pixels
// It has zero extent while the screen is too small to hold the pane
type Viewport struct {
	screen     tcell.Screen
	legendRows int
}

// Size returns the pane's pixel dimensions
func (v Viewport) Size() (width, height int) {
	cols, rows := v.screen.Size()
	rows -= v.legendRows
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return cols * constant.PixelsPerCellX, rows * constant.PixelsPerCellY
}

// Window is the whole screen in surface pixels
type Window struct {
	screen tcell.Screen
}

// Size returns the screen's pixel dimensions
func (w Window) Size() (width, height int) {
	cols, rows := w.screen.Size()
	if cols < 0 || rows < 0 {
		return 0, 0
	}
	return cols * constant.PixelsPerCellX, rows * constant.PixelsPerCellY
}
