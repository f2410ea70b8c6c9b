package palette

import (
	"log"

	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/vmath"
)

// State is the interaction state of one stack
type State uint8

const (
	StateIdle State = iota
	StateHovered
	StateDragging
)

var stateNames = [...]string{"idle", "hovered", "dragging"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Target is a valid drop cell on a board
type Target struct {
	Board *board.Board
	Cell  vmath.Point
}

// Entry is one palette stack: a buildable, its stock and drag state
type Entry struct {
	Buildable *board.Buildable
	Count     int
	// Bounds is the hit rectangle in world units
	Bounds vmath.Rect

	state    State
	rotation int
	pointer  vmath.Vec2
	target   *Target

	angle physics.SmoothAngle
	popup physics.Smooth
	pulse physics.Smooth
	drag  physics.SmoothVec
}

func newEntry(bl *board.Buildable, count int) *Entry {
	return &Entry{Buildable: bl, Count: count}
}

// State returns the current interaction state
func (e *Entry) State() State { return e.state }

// Rotation returns the pending rotation in quarter turns
func (e *Entry) Rotation() int { return e.rotation }

// Target returns the current drop target or nil
func (e *Entry) Target() *Target { return e.target }

// Anchor is the world position return effects fly toward
func (e *Entry) Anchor() vmath.Vec2 {
	return e.Bounds.Center()
}

func (e *Entry) update(p *Palette, f *event.Frame, start vmath.Vec2) {
	if e.state == StateDragging && !f.Events.IsCaptured(e) {
		e.cancel(p, "capture lost")
	}

	e.pointer = start
	f.Events.Poll(e, func(ev event.Event) event.Result {
		if ev.Kind == event.PointerMove {
			e.pointer = ev.Position
		}
		if e.state == StateDragging {
			return e.handleDrag(p, f, ev)
		}
		return e.handleIdle(f, ev)
	})

	if e.state != StateDragging {
		if f.PointerInside && e.Bounds.Contains(e.pointer) {
			e.state = StateHovered
		} else {
			e.state = StateIdle
		}
	}

	if e.state == StateDragging {
		e.target = p.findTarget(e.pointer)
		if e.target != nil {
			to := e.target.Board.CellToGlobal(e.target.Cell)
			e.drag.TickDamped(f.Delta, to, parameter.PaletteDragAccel, physics.CriticalDamping(parameter.PaletteDragAccel))
		} else {
			e.drag.Set(e.pointer)
		}
	}

	e.animate(f.Delta)
	e.hint(f)
}

func (e *Entry) handleIdle(f *event.Frame, ev event.Event) event.Result {
	if ev.Kind != event.PointerDown || ev.Button != event.ButtonLeft {
		return event.Keep
	}
	if !e.Bounds.Contains(e.pointer) || e.Count <= 0 {
		return event.Keep
	}
	e.begin(f)
	return event.Consume()
}

func (e *Entry) handleDrag(p *Palette, f *event.Frame, ev event.Event) event.Result {
	switch ev.Kind {
	case event.PointerUp:
		if ev.Button == event.ButtonLeft {
			e.target = p.findTarget(e.pointer)
			e.commit(p)
			f.Events.ReleaseCapture()
		}
	case event.KeyDown:
		switch ev.Key {
		case "r":
			e.rotate(p, 1)
		case event.KeyEscape:
			e.cancel(p, "escape")
			f.Events.ReleaseCapture()
		}
	case event.WheelScroll:
		switch {
		case ev.Wheel > 0:
			e.rotate(p, 1)
		case ev.Wheel < 0:
			e.rotate(p, -1)
		}
	}
	return event.Consume()
}

// begin starts a drag: capture, rotation reset and visual snapshot at the stack
func (e *Entry) begin(f *event.Frame) {
	e.state = StateDragging
	e.rotation = 0
	e.angle = physics.NewSmoothAngle(0)
	e.drag = physics.NewSmoothVec(e.Bounds.Center())
	e.target = nil
	f.Events.Capture(e)
}

// commit places the buildable on the current target, anything else cancels
func (e *Entry) commit(p *Palette) {
	t := e.target
	e.finish()
	if t == nil || e.Count <= 0 {
		p.sound.Play(core.SoundCancel, 0.5, 0)
		return
	}
	if _, ok := t.Board.Place(e.Buildable, t.Cell, e.rotation); !ok {
		p.sound.Play(core.SoundCancel, 0.5, 0)
		return
	}
	e.setCount(e.Count - 1)
}

func (e *Entry) cancel(p *Palette, reason string) {
	e.finish()
	p.sound.Play(core.SoundCancel, 0.5, 0)
	log.Printf("[palette] %s drag cancelled: %s", e.Buildable.Key, reason)
}

func (e *Entry) finish() {
	e.state = StateIdle
	e.target = nil
}

// rotate turns by quarter steps, keeping rotation in [0,4) and the angle follower continuous
func (e *Entry) rotate(p *Palette, by int) {
	if !e.Buildable.Rotatable {
		e.rotation = 0
		return
	}
	r := e.rotation + by
	switch {
	case r >= 4:
		r -= 4
		e.angle.Shift(-vmath.TwoPi)
	case r < 0:
		r += 4
		e.angle.Shift(vmath.TwoPi)
	}
	e.rotation = r
	p.sound.Play(core.SoundRotate, 0.3, 0)
}

func (e *Entry) setCount(n int) {
	if n == e.Count {
		return
	}
	e.Count = max(n, 0)
	e.pulse.Nudge(parameter.PaletteCountPulse)
}

func (e *Entry) animate(dt float64) {
	lift := 0.0
	switch e.state {
	case StateHovered:
		lift = parameter.PalettePopupHover
	case StateDragging:
		lift = parameter.PalettePopupDrag
	}
	e.popup.TickDamped(dt, lift, parameter.PalettePopupAccel, physics.CriticalDamping(parameter.PalettePopupAccel))
	e.pulse.Tick(dt, 0, parameter.PaletteCountAccel)
	e.angle.TickDamped(dt, vmath.QuarterTurns(e.rotation), parameter.PaletteAngleAccel, physics.CriticalDamping(parameter.PaletteAngleAccel))
}

func (e *Entry) hint(f *event.Frame) {
	switch {
	case e.state == StateDragging && e.target != nil:
		f.Cursor = core.CursorGrabbing
	case e.state == StateDragging:
		f.Cursor = core.CursorBlocked
	case e.state == StateHovered && e.Count > 0:
		f.Cursor = core.CursorGrab
	}
}
