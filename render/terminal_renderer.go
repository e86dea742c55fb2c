package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/scene"
)

// halfBlock draws the upper pixel of a cell in the foreground and the lower in the background
const halfBlock = '▀'

// TerminalRenderer ray casts a scene into terminal cells
// Each cell holds constant.PixelsPerCellX × constant.PixelsPerCellY pixels
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *PixelBuffer
	rc     scene.Raycaster
	legend *Legend
	frames uint64
}

// NewTerminalRenderer creates a renderer with an empty drawing surface
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		buf:    NewPixelBuffer(0, 0),
	}
}

// SetLegend attaches the key bar drawn under the surface
func (r *TerminalRenderer) SetLegend(l *Legend) {
	r.legend = l
}

// SetSize sets the drawing surface in pixels
func (r *TerminalRenderer) SetSize(width, height int) {
	w, h := r.buf.Size()
	if w == width && h == height {
		return
	}
	r.buf.Resize(width, height)
	r.screen.Clear()
}

// Size returns the drawing surface in pixels
func (r *TerminalRenderer) Size() (int, int) {
	return r.buf.Size()
}

// Frames returns the number of frames rendered
func (r *TerminalRenderer) Frames() uint64 {
	return r.frames
}

// Pixel returns the color of the last rendered frame at (x, y)
func (r *TerminalRenderer) Pixel(x, y int) colorful.Color {
	return r.buf.At(x, y)
}

// Render traces the scene from cam and presents it with the legend
func (r *TerminalRenderer) Render(sc *scene.Scene, cam *scene.Camera) {
	r.trace(sc, cam)
	r.blit(sc.Background)
	if r.legend != nil {
		cols, rows := r.cells()
		r.legend.Draw(r.screen, rows, cols)
	}
	r.screen.Show()
	r.frames++
}

// cells returns the surface size in terminal cells
func (r *TerminalRenderer) cells() (int, int) {
	w, h := r.buf.Size()
	return w / constant.PixelsPerCellX, (h + constant.PixelsPerCellY - 1) / constant.PixelsPerCellY
}

// trace fills the pixel buffer, one primary ray through each pixel center
func (r *TerminalRenderer) trace(sc *scene.Scene, cam *scene.Camera) {
	w, h := r.buf.Size()
	if w == 0 || h == 0 {
		return
	}

	meshes := sc.Meshes()
	light := newLighting(sc)
	r.buf.Clear(sc.Background)

	for y := 0; y < h; y++ {
		ndcY := -((float64(y)+0.5)/float64(h))*2 + 1
		for x := 0; x < w; x++ {
			ndcX := (float64(x)+0.5)/float64(w)*2 - 1
			r.rc.SetFromCamera(ndcX, ndcY, cam)
			hits := r.rc.IntersectMeshes(meshes)
			if len(hits) == 0 {
				continue
			}
			r.buf.Set(x, y, light.shade(hits[0], cam.Position))
		}
	}
}

// blit copies pixel pairs into half-block cells
func (r *TerminalRenderer) blit(bg colorful.Color) {
	w, h := r.buf.Size()
	cols, rows := r.cells()
	for cy := 0; cy < rows; cy++ {
		top := cy * constant.PixelsPerCellY
		for cx := 0; cx < cols && cx < w; cx++ {
			upper := r.buf.At(cx, top)
			lower := bg
			if top+1 < h {
				lower = r.buf.At(cx, top+1)
			}
			style := tcell.StyleDefault.Foreground(toTcell(upper)).Background(toTcell(lower))
			r.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}
