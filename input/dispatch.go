package input

import (
	"unicode"

	"github.com/lixenwraith/drumkit/kit"
)

// KeyDispatcher resolves typed characters to pads
type KeyDispatcher struct {
	reg *kit.Registry
}

// NewKeyDispatcher creates a dispatcher over a built registry
func NewKeyDispatcher(reg *kit.Registry) *KeyDispatcher {
	return &KeyDispatcher{reg: reg}
}

// Resolve lowercases r and returns its pad, or nil when r is not a pad key
func (d *KeyDispatcher) Resolve(r rune) *kit.Pad {
	p, ok := d.reg.Get(unicode.ToLower(r))
	if !ok {
		return nil
	}
	return p
}
