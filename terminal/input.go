package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button event.Button
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonRight},
	{tcell.Button3, event.ButtonMiddle},
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// Pump translates tcell events into world-space input events
// tcell reports mouse state, so presses and releases are found by diffing it
type Pump struct {
	sink     func(event.Event)
	buttons  tcell.ButtonMask
	pos      vmath.Vec2
	seen     bool
	OnResize func(cols, rows int)
}

// NewPump delivers translated events to sink
func NewPump(sink func(event.Event)) *Pump {
	return &Pump{sink: sink}
}

// CellCenter maps a terminal cell to world units
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.V(
		(float64(x)+0.5)*parameter.TerminalCellWidth,
		(float64(y)+0.5)*parameter.TerminalCellHeight,
	)
}

// Translate forwards ev and reports whether the user asked to quit (Ctrl-C)
func (p *Pump) Translate(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		p.mouse(ev)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			p.sink(event.Key(event.KeyEscape))
		case tcell.KeyEnter:
			p.sink(event.Key(event.KeyEnter))
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			p.sink(event.Key(event.KeyBackspace))
		case tcell.KeyF1:
			p.sink(event.Key(event.KeyF1))
		case tcell.KeyRune:
			p.sink(event.Key(strings.ToLower(string(ev.Rune()))))
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			p.release()
			p.sink(event.Lost())
		}

	case *tcell.EventResize:
		if p.OnResize != nil {
			cols, rows := ev.Size()
			p.OnResize(cols, rows)
		}
	}
	return false
}

func (p *Pump) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := CellCenter(x, y)
	if !p.seen || pos != p.pos {
		var motion vmath.Vec2
		if p.seen {
			motion = pos.Sub(p.pos)
		}
		p.pos = pos
		p.seen = true
		p.sink(event.Move(pos, motion))
	}

	btn := ev.Buttons()
	for _, b := range buttonMap {
		now := btn&b.mask != 0
		was := p.buttons&b.mask != 0
		switch {
		case now && !was:
			p.sink(event.Down(b.button))
		case !now && was:
			p.sink(event.Up(b.button))
		}
	}
	p.buttons = btn & buttonMask

	if btn&tcell.WheelUp != 0 {
		p.sink(event.Wheel(-1))
	}
	if btn&tcell.WheelDown != 0 {
		p.sink(event.Wheel(1))
	}
}

// release forgets held buttons, the release happens outside our view
func (p *Pump) release() {
	p.buttons = 0
}
