package board

import (
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// pixel is one world unit expressed in cells
const pixel = 1 / parameter.CellSize

var (
	center   = vmath.V(0.5, 0.5)
	unitSize = vmath.V(1, 1)
)

// Draw renders the grid and its entities in board space, then world-space effects unclipped
func (b *Board) Draw(ctx render.Context, c render.Canvas) {
	c.Save()
	c.Translate(b.Origin())
	c.Scale(parameter.CellSize)
	c.Clip(vmath.R(0, 0, float64(b.Width), float64(b.Height)))

	b.drawCells(c)
	for _, e := range b.Entities {
		if e.Dead {
			continue
		}
		behaviors[e.Kind].draw(b, e, ctx, c)
	}
	for _, e := range b.Entities {
		if !e.Dead && e.HasHealth() && e.Health < e.MaxHealth {
			drawHealthBar(c, e)
		}
	}
	for _, f := range b.Effects {
		if f.Kind == EffectShock {
			p := f.Progress()
			c.StrokeCircle(f.Pos, f.Radius*easeOut(p), 2*pixel, f.Color.Fade(1-p))
		}
	}
	c.Restore()

	for _, f := range b.Effects {
		switch f.Kind {
		case EffectReturn:
			drawReturn(c, f)
		case EffectBanner:
			b.drawBanner(c, f)
		}
	}
}

func (b *Board) drawCells(c render.Canvas) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := vmath.Point{X: x, Y: y}
			cell := b.Cell(p)
			span := Span(p)

			if cell.OnPath {
				c.FillRect(span, render.RgbPath)
				continue
			}
			c.FillRect(span, render.RgbGround)
			if cell.Terrain.Kind == TerrainGround {
				continue
			}
			opts := render.ImageOptions{Pos: span.Min, Size: unitSize}
			if !c.Image(cell.Terrain.Image, opts) {
				c.FillRect(vmath.R(span.Min.X+0.1, span.Min.Y+0.1, 0.8, 0.8), cell.Terrain.Color)
			}
		}
	}
	c.StrokeRect(vmath.R(0, 0, float64(b.Width), float64(b.Height)), pixel, render.RgbGridLine)
}

func drawTurret(b *Board, e *Entity, ctx render.Context, c render.Canvas) {
	t := e.Turret
	bl := t.Buildable
	facing := t.Facing()
	pos := e.Pos.Add(facing.Scale(t.Recoil.Value))

	opts := render.ImageOptions{
		Pos:      pos,
		Size:     unitSize,
		Anchor:   center,
		Rotation: vmath.QuarterTurns(t.Rotation),
		Turns:    t.Rotation,
	}
	if c.Image(bl.Icon, opts) {
		return
	}
	c.FillCircle(pos, e.Radius, bl.Color)
	if bl.Rotatable {
		c.Line(pos, pos.Add(facing.Scale(0.45)), 3*pixel, render.RgbWhite)
	}
}

func drawBullet(b *Board, e *Entity, ctx render.Context, c render.Canvas) {
	img, col := b.catalog.Art.Bullet, render.RgbBullet
	if e.Kind == KindGunnerBullet {
		img, col = b.catalog.Art.GunnerBullet, render.RgbGunner
	}
	opts := render.ImageOptions{Pos: e.Pos, Size: vmath.V(e.Radius*2, e.Radius*2), Anchor: center}
	if !c.Image(img, opts) {
		c.FillCircle(e.Pos, e.Radius, col)
	}
}

func drawEnemy(b *Board, e *Entity, ctx render.Context, c render.Canvas) {
	img, col := b.catalog.Art.Noop, render.RgbEnemyNoop
	if e.Kind == KindGunner {
		img, col = b.catalog.Art.Gunner, render.RgbGunner
	}

	angle := e.Enemy.Facing.Value
	if t := e.Enemy.Target; t != nil && !t.Dead {
		angle = vmath.Bearing(t.Pos.Sub(e.Pos))
	}

	opts := render.ImageOptions{Pos: e.Pos, Size: vmath.V(e.Radius*2, e.Radius*2), Anchor: center, Rotation: angle}
	if c.Image(img, opts) {
		return
	}
	c.FillCircle(e.Pos, e.Radius, col)
	c.Line(e.Pos, e.Pos.Add(vmath.Direction(angle).Scale(e.Radius)), 2*pixel, render.RgbBlack)
}

func drawHealthBar(c render.Canvas, e *Entity) {
	frac := vmath.Clamp(float64(e.Health)/float64(e.MaxHealth), 0, 1)
	w := parameter.HealthBarWidth
	h := parameter.HealthBarHeight * pixel
	x := e.Pos.X - w/2
	y := e.Pos.Y - parameter.HealthBarOffset

	c.FillRect(vmath.R(x, y, w, h), render.RgbHealthBack)
	c.FillRect(vmath.R(x, y, w*frac, h), render.RgbHealthLow.Lerp(render.RgbHealthHigh, frac))
}

func drawReturn(c render.Canvas, f *Effect) {
	p := easeOut(f.Progress())
	pos := f.From.Lerp(f.To, p)
	opts := render.ImageOptions{
		Pos:      pos,
		Size:     vmath.V(parameter.CellSize, parameter.CellSize),
		Anchor:   center,
		Rotation: vmath.QuarterTurns(f.Turns),
		Turns:    f.Turns,
	}
	if !c.Image(f.Image, opts) {
		c.FillCircle(pos, parameter.CellSize*parameter.TurretRadius, f.Color.Fade(1-p*0.5))
	}
}

func (b *Board) drawBanner(c render.Canvas, f *Effect) {
	at := b.RelToGlobal(f.Pos)
	fade := 1 - f.Progress()*f.Progress()
	w := float64(b.Width) * parameter.CellSize
	c.FillRect(vmath.R(at.X-w/2, at.Y-12, w, 24), render.RgbPanel.Fade(fade))
	c.Text(at, f.Text, render.AlignCenter, f.Color.Fade(fade))
}
