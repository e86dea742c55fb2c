package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by the key binding loader to resolve config action strings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
}

// ActionIntent returns the intent bound to an action name
func ActionIntent(name string) (Intent, bool) {
	in, ok := actionRegistry[name]
	return in, ok
}

// IsActionName reports whether name is a known action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
