package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/drumkit/terminal"
)

// ParseKeyBindings converts a [keys] config table of key name → action name into a sparse
// override KeyTable
// Pad keys are fixed and cannot be rebound; only special keys are accepted
func ParseKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{SpecialKeys: make(map[terminal.Key]Intent, len(bindings))}

	for keyStr, actionName := range bindings {
		k, ok := terminal.KeyByName(strings.ToLower(strings.TrimSpace(keyStr)))
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}

		in, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.SpecialKeys[k] = in
	}

	return kt, nil
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q (known: %s)", name, strings.Join(ActionNames(), ", "))
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base bindings overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, in := range override.SpecialKeys {
		if in == IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = in
		}
	}
	return result
}
