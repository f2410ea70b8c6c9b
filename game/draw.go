package game

import (
	"fmt"

	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

const (
	tokenRadius  = 6.0
	tokenSpacing = 18.0
)

// DrawBoards renders every active board in slot order
func (g *Game) DrawBoards(ctx render.Context, c render.Canvas) {
	for _, b := range g.Boards() {
		b.Draw(ctx, c)
	}
}

// DrawHUD renders tokens, level and score across the top strip
func (g *Game) DrawHUD(ctx render.Context, c render.Canvas) {
	mid := parameter.HUDHeight / 2
	c.FillRect(vmath.R(0, 0, parameter.ViewWidth, parameter.HUDHeight), render.RgbPanel)

	for i := 0; i < parameter.TokensMax; i++ {
		at := vmath.V(parameter.BoardLeft+tokenRadius+float64(i)*tokenSpacing, mid)
		t := g.tokenAnim[i]
		switch {
		case i < g.Tokens:
			grow := 1.0
			if t > 0 {
				grow += 0.6 * t / parameter.TokenAnimDuration
			}
			c.FillCircle(at, tokenRadius*grow, render.RgbToken)
		case t < 0:
			p := -t / parameter.TokenAnimDuration
			c.StrokeCircle(at, tokenRadius*(2-p), 2, render.RgbBannerLost.Fade(p))
			c.StrokeCircle(at, tokenRadius, 1, render.RgbTokenEmpty)
		default:
			c.StrokeCircle(at, tokenRadius, 1, render.RgbTokenEmpty)
		}
	}

	level := fmt.Sprintf("LEVEL %.1f", g.Level)
	levelColor := render.RgbText
	if !g.Playing() {
		level = "NO TOKENS"
		levelColor = render.RgbBannerLost
	}
	c.Text(vmath.V(parameter.ViewWidth/2, mid), level, render.AlignCenter, levelColor)
	c.Text(vmath.V(parameter.ViewWidth-parameter.BoardLeft, mid), fmt.Sprintf("SCORE %d", int(g.Score)), render.AlignRight, render.RgbText)
}
