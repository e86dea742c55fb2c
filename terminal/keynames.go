package terminal

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape: "escape",
	KeyCtrlC:  "ctrl_c",
	KeyCtrlQ:  "ctrl_q",
	KeyCtrlS:  "ctrl_s",
	KeyCtrlX:  "ctrl_x",
}

// nameToKey is the reverse of keyToName plus aliases
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName)+1)
	for k, n := range keyToName {
		m[n] = k
	}
	m["esc"] = KeyEscape
	return m
}()

// KeyByName resolves a config key name
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String returns the canonical name of k
func (k Key) String() string {
	if n, ok := keyToName[k]; ok {
		return n
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}
