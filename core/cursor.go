package core

// CursorKind is the pointer shape hint set by interactive components each frame
type CursorKind uint8

const (
	CursorDefault CursorKind = iota
	// CursorPointer is over something clickable
	CursorPointer
	// CursorGrab is over something draggable
	CursorGrab
	CursorGrabbing
	// CursorBlocked is dragging over an invalid target
	CursorBlocked
)

func (c CursorKind) String() string {
	names := [...]string{"default", "pointer", "grab", "grabbing", "blocked"}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}
