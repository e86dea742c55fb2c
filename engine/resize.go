package engine

import (
	"github.com/lixenwraith/drumkit/constant"
)

// Resize recomputes the camera aspect and surface size from the container
// A zero-extent container falls back to the window, axis by axis, and schedules one
// deferred retry; returns true when the container itself was laid out
func (r *Router) Resize() bool {
	cw, ch := r.ctx.Container.Size()
	if cw > 0 && ch > 0 {
		r.apply(cw, ch)
		return true
	}

	ww, wh := r.ctx.Window.Size()
	w, h := cw, ch
	if w <= 0 {
		w = ww
	}
	if h <= 0 {
		h = wh
	}
	r.setAspect(ww, wh)
	r.ctx.Renderer.SetSize(w, h)

	if !r.retryPending {
		r.retryPending = true
		r.ctx.Scheduler.After(constant.ResizeRetryDelay, r.retryResize)
	}
	return false
}

// retryResize is the single deferred attempt after a zero-extent container
func (r *Router) retryResize() {
	r.retryPending = false

	cw, ch := r.ctx.Container.Size()
	if cw > 0 && ch > 0 {
		r.apply(cw, ch)
	} else {
		ww, wh := r.ctx.Window.Size()
		r.ctx.Log.Warn("container has no dimensions after retry, using window dimensions",
			"width", ww, "height", wh)
		r.apply(ww, wh)
	}
	r.ctx.Renderer.Render(r.ctx.Scene, r.ctx.Camera)
}

// apply sizes the camera and the surface to width × height
func (r *Router) apply(width, height int) {
	r.setAspect(width, height)
	r.ctx.Renderer.SetSize(width, height)
	r.ctx.Log.Debug("viewport resized", "width", width, "height", height, "aspect", r.ctx.Camera.Aspect)
}

// setAspect updates the projection; a degenerate extent leaves the camera unchanged
func (r *Router) setAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.ctx.Camera.Aspect = float64(width) / float64(height)
	r.ctx.Camera.UpdateProjection()
}
