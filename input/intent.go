package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Esc, Ctrl+C, q
	IntentResize // Terminal resize event
	IntentStart  // Left click, Space, Enter

	// Pointer moved, no button change
	IntentPointer
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentStart:
		return "start"
	case IntentPointer:
		return "pointer"
	}
	return "none"
}

// Intent is the parsed result of one terminal event
type Intent struct {
	Type IntentType
}
