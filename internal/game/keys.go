package game

// Key is a discrete input intent.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEnter
	KeyEscape
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Action qualifies a key event. Only presses are acted on.
type Action int

const (
	ActionPress Action = iota
	ActionRepeat
	ActionRelease
)

// KeyEvent is one key intent from the input boundary.
type KeyEvent struct {
	Key    Key
	Action Action
}

// Press returns a press event for k.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Action: ActionPress}
}
