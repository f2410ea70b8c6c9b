package event

import (
	"fmt"

	"github.com/lixenwraith/vi-towers/vmath"
)

// Kind identifies the input event variant
type Kind uint8

const (
	KindNone Kind = iota

	// PointerMove reports absolute pointer position in world units
	// Source: mouse motion | Fields: Position, Motion
	PointerMove

	// PointerDown reports a button press at the last known position
	// Source: mouse button | Fields: Button
	PointerDown

	// PointerUp reports a button release
	// Source: mouse button | Fields: Button
	PointerUp

	// KeyDown reports a key press
	// Source: keyboard | Fields: Key
	KeyDown

	// WheelScroll reports wheel ticks, positive is towards the user
	// Source: mouse wheel | Fields: Wheel
	WheelScroll

	// FocusLost reports the pointer leaving the surface or the window losing focus
	// Source: focus/leave notifications | Fields: none
	FocusLost
)

var kindNames = [...]string{"none", "pointer_move", "pointer_down", "pointer_up", "key_down", "wheel", "focus_lost"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Button identifies a pointer button
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key identifiers shared by all input sources
// Printable keys use their lowercase character
const (
	KeyEscape    = "Escape"
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyBackspace = "Backspace"
	KeyF1        = "F1"
)

// Event is an immutable input event
// Only the fields listed for its Kind are meaningful
type Event struct {
	Kind     Kind
	Position vmath.Vec2
	Motion   vmath.Vec2
	Button   Button
	Key      string
	Wheel    float64
}

// Move creates a PointerMove event
func Move(pos, motion vmath.Vec2) Event {
	return Event{Kind: PointerMove, Position: pos, Motion: motion}
}

// Down creates a PointerDown event
func Down(b Button) Event {
	return Event{Kind: PointerDown, Button: b}
}

// Up creates a PointerUp event
func Up(b Button) Event {
	return Event{Kind: PointerUp, Button: b}
}

// Key creates a KeyDown event
func Key(key string) Event {
	return Event{Kind: KeyDown, Key: key}
}

// Wheel creates a WheelScroll event
func Wheel(ticks float64) Event {
	return Event{Kind: WheelScroll, Wheel: ticks}
}

// Lost creates a FocusLost event
func Lost() Event {
	return Event{Kind: FocusLost}
}

func (e Event) String() string {
	switch e.Kind {
	case PointerMove:
		return fmt.Sprintf("%s(%.1f,%.1f)", e.Kind, e.Position.X, e.Position.Y)
	case PointerDown, PointerUp:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Button)
	case KeyDown:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Key)
	case WheelScroll:
		return fmt.Sprintf("%s(%.1f)", e.Kind, e.Wheel)
	}
	return e.Kind.String()
}
