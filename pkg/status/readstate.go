package status

import "fmt"

// ReadState is the read status of an inbound contact message.
type ReadState string

const (
	// Unread is the state every message arrives in.
	Unread ReadState = "unread"
	// Read marks a message whose details were opened at least once.
	Read ReadState = "read"
)

// Valid reports whether s is a known read state.
func (s ReadState) Valid() bool {
	return s == Unread || s == Read
}

func (s ReadState) String() string {
	return string(s)
}

// ParseReadState converts a wire value into a ReadState.
func ParseReadState(v string) (ReadState, error) {
	s := ReadState(v)
	if !s.Valid() {
		return "", fmt.Errorf("status: unknown read state %q", v)
	}
	return s, nil
}

// CanTransition reports whether moving from s to target is allowed.
// The only permitted transition is unread to read; a message never
// becomes unread again.
func (s ReadState) CanTransition(target ReadState) error {
	if !s.Valid() {
		return fmt.Errorf("status: unknown read state %q", string(s))
	}
	if !target.Valid() {
		return fmt.Errorf("status: unknown read state %q", string(target))
	}
	if s == Read {
		return fmt.Errorf("status: message already read")
	}
	if target == Unread {
		return fmt.Errorf("status: messages cannot be marked unread")
	}
	return nil
}
