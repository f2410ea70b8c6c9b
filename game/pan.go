package game

import (
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/vmath"
)

// panner scrolls the board band horizontally
// While dragging the target follows the pointer with bounded overscroll, on release it springs into range
type panner struct {
	offset  physics.Smooth
	target  float64
	active  bool
	pointer vmath.Vec2
	last    vmath.Vec2
}

// limit is the largest in-range offset for the active slots
func (p *panner) limit(g *Game) float64 {
	content := 2*parameter.BoardLeft + float64(g.ActiveSlots())*parameter.BoardSpacing - parameter.CellSize
	return max(content-parameter.ViewWidth, 0)
}

func inBand(pt vmath.Vec2) bool {
	return pt.Y >= parameter.BoardTop && pt.Y < parameter.BoardTop+parameter.CellSize*parameter.BoardHeight
}

func (p *panner) update(g *Game, f *event.Frame) {
	if p.active && !f.Events.IsCaptured(p) {
		p.active = false
	}

	p.pointer = p.last
	f.Events.Poll(p, func(ev event.Event) event.Result {
		switch ev.Kind {
		case event.PointerMove:
			p.pointer = ev.Position
			if p.active {
				p.target -= ev.Motion.X
				return event.Consume()
			}
		case event.PointerDown:
			if ev.Button == event.ButtonLeft && !p.active && inBand(p.pointer) && !g.Palette.Contains(p.pointer) {
				p.active = true
				f.Events.Capture(p)
				return event.Consume()
			}
		case event.PointerUp:
			if ev.Button == event.ButtonLeft && p.active {
				p.active = false
				f.Events.ReleaseCapture()
				return event.Consume()
			}
		}
		return event.Keep
	})
	p.last = f.Pointer

	limit := p.limit(g)
	if p.active {
		p.target = vmath.Clamp(p.target, -parameter.PanOverscroll, limit+parameter.PanOverscroll)
		p.offset.TickDamped(f.Delta, p.target, parameter.PanAccel, physics.CriticalDamping(parameter.PanAccel))
		return
	}
	p.target = vmath.Clamp(p.target, 0, limit)
	p.offset.TickDamped(f.Delta, p.target, parameter.PanSpringAccel, physics.CriticalDamping(parameter.PanSpringAccel))
}

// Offset is the current smoothed pan in world units
func (g *Game) Offset() float64 {
	return g.pan.offset.Value
}

// Panning reports whether a pan drag is in progress
func (g *Game) Panning() bool {
	return g.pan.active
}
