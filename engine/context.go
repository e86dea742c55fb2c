package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/input"
	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/scene"
	"github.com/lixenwraith/drumkit/terminal"
)

// Surface is the rendering collaborator drawing the scene into a pixel surface
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	Render(sc *scene.Scene, cam *scene.Camera)
}

// Sound plays the sample of a pad key, reporting whether the key has one
type Sound interface {
	Play(key rune) bool
}

// Striker animates a struck pad
type Striker interface {
	Strike(pad *kit.Pad) Task
}

// Muter toggles audio output, returns true if sound is now on
type Muter interface {
	ToggleMute() bool
}

// Highlighter marks a key as pressed in the on-screen legend
type Highlighter interface {
	Press(key rune) bool
	Release(key rune)
}

// Context holds the collaborators the router drives
type Context struct {
	// ===== Required =====

	Scene     *scene.Scene
	Camera    *scene.Camera
	Renderer  Surface
	Registry  *kit.Registry  // Fully built before the router is created
	Container terminal.Sizer // Drum pane; may report zero extent before layout
	Window    terminal.Sizer // Whole-window fallback for a zero-extent container
	Scheduler Scheduler      // Deferred tasks and the frame tick run on the loop

	// ===== Optional =====

	Sound   Sound
	Striker Striker
	Muter   Muter
	Legend  Highlighter
	Keys    *input.KeyTable // DefaultKeyTable when nil

	FrameInterval time.Duration // constant.FrameInterval when zero
	Log           *slog.Logger  // slog.Default when nil
}

// validate checks required collaborators and fills defaults
func (c *Context) validate() error {
	switch {
	case c.Renderer == nil || c.Scene == nil || c.Camera == nil:
		return ErrNoRenderer
	case c.Container == nil:
		return ErrNoMountPoint
	case c.Registry == nil:
		return ErrNoKit
	case c.Scheduler == nil:
		return ErrNoScheduler
	}
	if c.Window == nil {
		c.Window = c.Container
	}
	if c.Keys == nil {
		c.Keys = input.DefaultKeyTable()
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = constant.FrameInterval
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.Sound == nil || c.Striker == nil {
		c.Log.Warn("router wired without feedback", "sound", c.Sound != nil, "striker", c.Striker != nil)
	}
	return nil
}

// String summarizes the context for startup logs
func (c *Context) String() string {
	w, h := c.Renderer.Size()
	return fmt.Sprintf("pads=%d surface=%dx%d frame=%s", c.Registry.Len(), w, h, c.FrameInterval)
}
