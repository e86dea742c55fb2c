package engine

import (
	"context"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/input"
	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/terminal"
)

// Router owns the single event timeline of the kit
//
// Architecture:
//   - One goroutine runs Run and is the only writer of the scene, camera and pads
//   - Platform events, due deferred tasks and the frame tick are serialized by one select
//   - Sound and strike are triggered independently; neither waits on the other
//
// Not safe for concurrent use: HandleEvent, Resize and scheduled callbacks must run on the loop
type Router struct {
	ctx  Context
	hit  input.HitTester
	keys *input.KeyDispatcher

	tick         Task
	retryPending bool
	pressed      map[rune]int // Outstanding legend highlights per key
	strikes      uint64
	stopped      bool
}

// NewRouter validates the collaborators and creates a router
func NewRouter(c Context) (*Router, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Router{
		ctx:     c,
		keys:    input.NewKeyDispatcher(c.Registry),
		pressed: make(map[rune]int),
	}, nil
}

// Start sizes the surface, renders the first frame when the container is laid out and
// starts the frame tick
func (r *Router) Start() {
	r.stopped = false
	if r.Resize() {
		r.ctx.Renderer.Render(r.ctx.Scene, r.ctx.Camera)
	}
	r.ctx.Log.Info("router started", "context", r.ctx.String())
	r.scheduleTick()
}

// Stop cancels the frame tick
func (r *Router) Stop() {
	r.stopped = true
	if r.tick != nil {
		r.tick.Cancel()
		r.tick = nil
	}
}

// Strikes returns the number of pads triggered
func (r *Router) Strikes() uint64 {
	return r.strikes
}

// Run serves events and due tasks until quit, a closed event channel or ctx is done
func (r *Router) Run(ctx context.Context, events <-chan terminal.Event, tasks <-chan func()) error {
	r.Start()
	defer r.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev) {
				return nil
			}

		case fn := <-tasks:
			fn()
		}
	}
}

// HandleEvent routes one platform event, returns false when the user asked to quit
func (r *Router) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		switch r.ctx.Keys.Lookup(ev) {
		case input.IntentStrike:
			if pad := r.keys.Resolve(ev.Rune); pad != nil {
				r.trigger(pad)
			}
		case input.IntentToggleMute:
			if r.ctx.Muter != nil {
				on := r.ctx.Muter.ToggleMute()
				r.ctx.Log.Info("sound toggled", "on", on)
			}
		case input.IntentQuit:
			return false
		}

	case terminal.EventClick:
		w, h := r.ctx.Renderer.Size()
		if pad := r.hit.Resolve(ev.X, ev.Y, w, h, r.ctx.Camera, r.ctx.Registry); pad != nil {
			r.trigger(pad)
		}

	case terminal.EventResize:
		r.Resize()
	}
	return true
}

// trigger plays and animates pad
func (r *Router) trigger(pad *kit.Pad) {
	r.strikes++
	if r.ctx.Sound != nil {
		r.ctx.Sound.Play(pad.Key)
	}
	if r.ctx.Striker != nil {
		r.ctx.Striker.Strike(pad)
	}
	r.highlight(pad.Key)
	r.ctx.Log.Debug("pad triggered", "key", string(pad.Key), "pad", pad.Name)
}

// highlight presses key in the legend and releases it once no press is outstanding
func (r *Router) highlight(key rune) {
	if r.ctx.Legend == nil || !r.ctx.Legend.Press(key) {
		return
	}
	r.pressed[key]++
	r.ctx.Scheduler.After(constant.LegendPressDuration, func() {
		r.pressed[key]--
		if r.pressed[key] > 0 {
			return
		}
		delete(r.pressed, key)
		r.ctx.Legend.Release(key)
	})
}

// scheduleTick queues the next frame
func (r *Router) scheduleTick() {
	r.tick = r.ctx.Scheduler.After(r.ctx.FrameInterval, r.frame)
}

// frame renders and reschedules itself
func (r *Router) frame() {
	if r.stopped {
		return
	}
	r.ctx.Renderer.Render(r.ctx.Scene, r.ctx.Camera)
	r.scheduleTick()
}
