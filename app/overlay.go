package app

import (
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/status"
	"github.com/lixenwraith/vi-towers/vmath"
)

// overlay lists telemetry in the top-right corner, toggled with F1
type overlay struct {
	status  *status.Registry
	visible bool
}

func (o *overlay) IsVisible() bool { return o.visible }

func (o *overlay) Draw(ctx render.Context, c render.Canvas) {
	lines := o.status.Lines()
	const lineHeight = 16.0
	w := 240.0
	h := lineHeight * float64(len(lines)+1)
	x := ctx.View.X - w - 4

	c.FillRect(vmath.R(x, parameter.HUDHeight+4, w, h), render.RgbPanel)
	for i, line := range lines {
		y := parameter.HUDHeight + 4 + lineHeight*(float64(i)+1)
		c.Text(vmath.V(x+8, y), line, render.AlignLeft, render.RgbTextDim)
	}
}
