package input

import "github.com/lixenwraith/drumkit/terminal"

// KeyTable maps non-rune keys to intents; rune keys are strikes
type KeyTable struct {
	SpecialKeys map[terminal.Key]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Intent{
			terminal.KeyEscape: IntentQuit,
			terminal.KeyCtrlC:  IntentQuit,
			terminal.KeyCtrlS:  IntentToggleMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{SpecialKeys: make(map[terminal.Key]Intent, len(kt.SpecialKeys))}
	for k, in := range kt.SpecialKeys {
		c.SpecialKeys[k] = in
	}
	return c
}

// Lookup classifies a key event
func (kt *KeyTable) Lookup(ev terminal.Event) Intent {
	if ev.Type != terminal.EventKey {
		return IntentNone
	}
	if ev.Key == terminal.KeyRune {
		return IntentStrike
	}
	if in, ok := kt.SpecialKeys[ev.Key]; ok {
		return in
	}
	return IntentNone
}
