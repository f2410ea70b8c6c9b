package menu

import (
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

const (
	panelWidth  = 320.0
	rowHeight   = 24.0
	titleHeight = 56.0
)

func (m *Menu) panel() vmath.Rect {
	h := titleHeight + rowHeight*float64(len(m.items)) + rowHeight/2
	return vmath.R((parameter.ViewWidth-panelWidth)/2, (parameter.ViewHeight-h)/2, panelWidth, h)
}

func (m *Menu) row(i int) vmath.Rect {
	p := m.panel()
	return vmath.R(p.Min.X, p.Min.Y+titleHeight+rowHeight*float64(i), panelWidth, rowHeight)
}

func (m *Menu) itemAt(pt vmath.Vec2) int {
	for i := range m.items {
		if m.row(i).Contains(pt) {
			return i
		}
	}
	return -1
}

// IsVisible implements render.VisibilityToggle
func (m *Menu) IsVisible() bool {
	return m.visible
}

// Draw implements render.Layer
func (m *Menu) Draw(ctx render.Context, c render.Canvas) {
	c.FillRect(vmath.R(0, 0, ctx.View.X, ctx.View.Y), render.RgbBlack.Fade(0.5))

	p := m.panel()
	c.FillRect(p, render.RgbPanel)
	c.StrokeRect(p, 1, render.RgbTextDim)

	cx := p.Center().X
	c.Text(vmath.V(cx, p.Min.Y+20), "VI-TOWERS", render.AlignCenter, render.RgbText)
	c.Text(vmath.V(cx, p.Min.Y+40), "paused", render.AlignCenter, render.RgbTextDim)

	for i, it := range m.items {
		r := m.row(i)
		if i == m.hover && it.action != nil {
			c.FillRect(r, render.RgbGridLine)
		}
		mid := r.Center().Y
		c.Text(vmath.V(r.Min.X+24, mid), it.key, render.AlignLeft, render.RgbToken)
		c.Text(vmath.V(r.Max.X-24, mid), it.label(), render.AlignRight, render.RgbText)
	}
}
