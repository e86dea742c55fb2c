package input

// Intent is what a key press asks the router to do
type Intent uint8

const (
	IntentNone Intent = iota
	IntentStrike
	IntentQuit
	IntentToggleMute
)

// String returns the intent name for logs
func (i Intent) String() string {
	switch i {
	case IntentStrike:
		return "strike"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle-mute"
	default:
		return "none"
	}
}
