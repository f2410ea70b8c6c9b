package event

import (
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Frame is the per-frame context threaded through every update call
// Reset at frame start by Begin, drained at frame end by End
type Frame struct {
	Events *Pipeline

	// Pointer is the last known pointer position in world units
	Pointer vmath.Vec2
	// PointerInside is false after FocusLost until the next PointerMove
	PointerInside bool

	// Cursor is the shape hint, last writer wins
	Cursor core.CursorKind

	Delta  float64
	Time   float64
	Number uint64
}

func NewFrame() *Frame {
	return &Frame{Events: NewPipeline()}
}

// Begin starts a frame: clamps delta, loads events and tracks the raw pointer
func (f *Frame) Begin(delta float64, evs []Event) {
	f.Number++
	f.Delta = vmath.Clamp(delta, 0, parameter.MaxFrameDelta)
	f.Time += f.Delta
	f.Cursor = core.CursorDefault

	for _, ev := range evs {
		switch ev.Kind {
		case PointerMove:
			f.Pointer = ev.Position
			f.PointerInside = true
		case FocusLost:
			f.PointerInside = false
		}
	}
	f.Events.Begin(evs)
}

// End runs end-of-frame capture collection, returns true if a stale capture was dropped
func (f *Frame) End() bool {
	return f.Events.EndFrame()
}
