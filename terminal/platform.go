package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drumkit/constant"
)

// Platform owns the tcell screen
type Platform struct {
	screen     tcell.Screen
	legendRows int

	// Mouse button state of the previous mouse event, for press-edge detection
	buttons tcell.ButtonMask

	finiOnce sync.Once
}

// Open creates and initializes a terminal screen with mouse reporting
func Open(legendRows int) (*Platform, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.EnableMouse(tcell.MouseButtonEvents)
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.Clear()
	return New(s, legendRows), nil
}

// New wraps an initialized screen
func New(s tcell.Screen, legendRows int) *Platform {
	return &Platform{screen: s, legendRows: legendRows}
}

// Screen returns the underlying screen
func (p *Platform) Screen() tcell.Screen {
	return p.screen
}

// Viewport returns the drum pane sizer
func (p *Platform) Viewport() Viewport {
	return Viewport{screen: p.screen, legendRows: p.legendRows}
}

// Window returns the full-screen sizer
func (p *Platform) Window() Window {
	return Window{screen: p.screen}
}

// Events starts polling the screen and returns translated events
// The channel closes when the screen is finalized or ctx is done
func (p *Platform) Events(ctx context.Context) <-chan Event {
	out := make(chan Event, constant.EventChannelSize)
	go func() {
		defer close(out)
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			te, ok := p.Translate(ev)
			if !ok {
				continue
			}
			select {
			case out <- te:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Translate maps a tcell event onto a platform event; ok is false for ignored events
// Not safe for concurrent use: mouse press detection keeps state between calls
func (p *Platform) Translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}, true
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}, true
		case tcell.KeyCtrlQ:
			return Event{Type: EventKey, Key: KeyCtrlQ}, true
		case tcell.KeyCtrlS:
			return Event{Type: EventKey, Key: KeyCtrlS}, true
		case tcell.KeyCtrlX:
			return Event{Type: EventKey, Key: KeyCtrlX}, true
		}
		return Event{}, false

	case *tcell.EventMouse:
		btn := ev.Buttons()
		pressed := btn&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0
		p.buttons = btn
		if !pressed {
			return Event{}, false
		}
		x, y := ev.Position()
		_, rows := p.screen.Size()
		if x < 0 || y < 0 || y >= rows-p.legendRows {
			return Event{}, false
		}
		// Center of the cell's pixel block
		return Event{
			Type: EventClick,
			X:    float64(x*constant.PixelsPerCellX) + float64(constant.PixelsPerCellX)/2,
			Y:    float64(y*constant.PixelsPerCellY) + float64(constant.PixelsPerCellY)/2,
		}, true

	case *tcell.EventResize:
		return Event{Type: EventResize}, true
	}
	return Event{}, false
}

// Fini restores the terminal; safe to call more than once
func (p *Platform) Fini() {
	p.finiOnce.Do(p.screen.Fini)
}
