// Package terminal adapts a tcell screen into the kit's platform layer.
//
// Features:
//   - Half-block surface: one cell is PixelsPerCellX × PixelsPerCellY surface pixels
//   - Click and key events translated to surface coordinates
//   - Drum pane (Viewport) and full screen (Window) sizers
//   - Clean terminal restoration on exit/panic
package terminal
