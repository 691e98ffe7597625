package input

// IntentType discriminates the actions the game loop reacts to
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Esc, q, Ctrl+C
	IntentLeft   // Left arrow, a, h
	IntentRight  // Right arrow, d, l
	IntentFire   // Space, Enter
	IntentResize // Terminal resize event
)

// String returns the intent name for logging
func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentFire:
		return "fire"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}
