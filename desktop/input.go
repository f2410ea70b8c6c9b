package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

var mouseButtons = [...]struct {
	src ebiten.MouseButton
	dst event.Button
}{
	{ebiten.MouseButtonLeft, event.ButtonLeft},
	{ebiten.MouseButtonRight, event.ButtonRight},
	{ebiten.MouseButtonMiddle, event.ButtonMiddle},
}

var specialKeys = map[ebiten.Key]string{
	ebiten.KeyEscape:       event.KeyEscape,
	ebiten.KeyEnter:        event.KeyEnter,
	ebiten.KeyNumpadEnter:  event.KeyEnter,
	ebiten.KeySpace:        event.KeySpace,
	ebiten.KeyBackspace:    event.KeyBackspace,
	ebiten.KeyF1:           event.KeyF1,
	ebiten.KeyBracketLeft:  "[",
	ebiten.KeyBracketRight: "]",
	ebiten.KeyMinus:        "-",
	ebiten.KeyEqual:        "=",
}

// keyName maps an ebiten key to the shared key identifier, empty for unmapped keys
func keyName(k ebiten.Key) string {
	if name, ok := specialKeys[k]; ok {
		return name
	}
	if s := k.String(); len(s) == 1 {
		return strings.ToLower(s)
	}
	return ""
}

// cursorShape maps the frame's cursor hint to a system cursor
func cursorShape(c core.CursorKind) ebiten.CursorShapeType {
	switch c {
	case core.CursorPointer:
		return ebiten.CursorShapePointer
	case core.CursorGrab, core.CursorGrabbing:
		return ebiten.CursorShapeMove
	case core.CursorBlocked:
		return ebiten.CursorShapeNotAllowed
	}
	return ebiten.CursorShapeDefault
}

// Input polls ebiten state once per tick and emits the changes as events
type Input struct {
	sink    func(event.Event)
	last    vmath.Vec2
	seen    bool
	focused bool
	inside  bool
	keys    []ebiten.Key
}

// NewInput delivers events to sink
func NewInput(sink func(event.Event)) *Input {
	return &Input{sink: sink, focused: true, inside: true}
}

// Poll reads this tick's input, call from Game.Update
func (in *Input) Poll() {
	focused := ebiten.IsFocused()
	if in.focused && !focused {
		in.sink(event.Lost())
	}
	in.focused = focused

	x, y := ebiten.CursorPosition()
	pos := vmath.V(float64(x), float64(y))
	inside := pos.X >= 0 && pos.Y >= 0 && pos.X < parameter.ViewWidth && pos.Y < parameter.ViewHeight
	if in.inside && !inside {
		in.sink(event.Lost())
	}
	in.inside = inside

	if !in.seen || pos != in.last {
		var motion vmath.Vec2
		if in.seen {
			motion = pos.Sub(in.last)
		}
		in.last = pos
		in.seen = true
		in.sink(event.Move(pos, motion))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.src) {
			in.sink(event.Down(b.dst))
		}
		if inpututil.IsMouseButtonJustReleased(b.src) {
			in.sink(event.Up(b.dst))
		}
	}

	// ebiten reports positive y away from the user
	if _, wy := ebiten.Wheel(); wy != 0 {
		in.sink(event.Wheel(-wy))
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if name := keyName(k); name != "" {
			in.sink(event.Key(name))
		}
	}
}
