package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventClick
	EventResize
)

// Key identifies the keys the kit reacts to
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyCtrlC
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlX
)

// Event is a platform input event already mapped onto the render surface
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// Pointer position in surface pixels for EventClick
	X, Y float64
}
