package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PixelBuffer is a row-major framebuffer of linear colors
type PixelBuffer struct {
	pix    []colorful.Color
	width  int
	height int
}

// NewPixelBuffer creates a buffer with the specified dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *PixelBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.pix) < size {
		b.pix = make([]colorful.Color, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.width = width
	b.height = height
	b.Clear(ColorBlack)
}

// Clear fills the buffer with c using exponential copy
func (b *PixelBuffer) Clear(c colorful.Color) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one pixel, out of bounds writes are dropped
func (b *PixelBuffer) Set(x, y int, c colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

// At reads one pixel, out of bounds reads return black
func (b *PixelBuffer) At(x, y int) colorful.Color {
	if !b.inBounds(x, y) {
		return ColorBlack
	}
	return b.pix[y*b.width+x]
}

// Size returns the buffer dimensions
func (b *PixelBuffer) Size() (int, int) {
	return b.width, b.height
}
