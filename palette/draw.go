package palette

import (
	"fmt"

	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Draw renders the stacks, then the dragged item and its target highlight on top
func (p *Palette) Draw(ctx render.Context, c render.Canvas) {
	for _, e := range p.Entries {
		drawEntry(c, e)
	}
	if e := p.Dragging(); e != nil {
		drawDrag(c, e)
	}
}

func drawEntry(c render.Canvas, e *Entry) {
	r := e.Bounds.Translate(vmath.V(0, -e.popup.Value))
	c.FillRect(r, render.RgbPanel)
	border := render.RgbTextDim
	if e.state != StateIdle {
		border = e.Buildable.Color
	}
	c.StrokeRect(r, 1, border)

	tint := render.RgbWhite
	if e.Count == 0 {
		tint = render.RgbTextDim
	}
	if e.state != StateDragging {
		drawIcon(c, e, r.Center(), tint)
	}

	label := fmt.Sprintf("x%d", e.Count)
	pos := vmath.V(r.Max.X-4, r.Max.Y-8-e.pulse.Value)
	c.Text(pos, label, render.AlignRight, render.RgbText)
}

func drawIcon(c render.Canvas, e *Entry, at vmath.Vec2, tint render.Color) {
	opts := render.ImageOptions{
		Pos:      at,
		Size:     vmath.V(parameter.PaletteIconSize, parameter.PaletteIconSize),
		Anchor:   vmath.V(0.5, 0.5),
		Rotation: e.angle.Value,
		Turns:    e.rotation,
		Tint:     tint,
	}
	if c.Image(e.Buildable.Icon, opts) {
		return
	}
	col := e.Buildable.Color
	if tint != render.RgbWhite {
		col = tint
	}
	radius := parameter.PaletteIconSize * parameter.TurretRadius
	c.FillCircle(at, radius, col)
	if e.Buildable.Rotatable {
		c.Line(at, at.Add(vmath.Direction(e.angle.Value).Scale(radius*1.2)), 3, render.RgbWhite)
	}
}

func drawDrag(c render.Canvas, e *Entry) {
	if t := e.target; t != nil {
		center := t.Board.CellToGlobal(t.Cell)
		half := parameter.CellSize / 2
		c.FillRect(vmath.R(center.X-half, center.Y-half, parameter.CellSize, parameter.CellSize), render.RgbTargetValid)
	}
	drawIcon(c, e, e.drag.Value, render.RgbWhite)
}
