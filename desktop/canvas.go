package desktop

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas draws onto an ebiten image, one frame at a time
// Shapes follow translate and scale, rotation applies to images only
type Canvas struct {
	render.State
	target *ebiten.Image
	face   font.Face
	images map[image.Image]*ebiten.Image
}

// NewCanvas creates a canvas using the 7x13 bitmap face
func NewCanvas() *Canvas {
	c := &Canvas{
		face:   basicfont.Face7x13,
		images: make(map[image.Image]*ebiten.Image),
	}
	c.State.Reset()
	return c
}

// Begin targets the frame's screen image
func (c *Canvas) Begin(target *ebiten.Image) {
	c.target = target
	c.State.Reset()
}

// Size implements render.Canvas
func (c *Canvas) Size() vmath.Vec2 {
	if c.target == nil {
		return vmath.Vec2{}
	}
	b := c.target.Bounds()
	return vmath.V(float64(b.Dx()), float64(b.Dy()))
}

// Clear implements render.Canvas
func (c *Canvas) Clear(col render.Color) {
	c.State.Reset()
	c.target.Fill(col)
}

// FillRect implements render.Canvas
func (c *Canvas) FillRect(r vmath.Rect, col render.Color) {
	d := c.DeviceRect(r)
	vector.DrawFilledRect(c.dst(), float32(d.Min.X), float32(d.Min.Y), float32(d.W()), float32(d.H()), col, true)
}

// StrokeRect implements render.Canvas
func (c *Canvas) StrokeRect(r vmath.Rect, width float64, col render.Color) {
	d := c.DeviceRect(r)
	vector.StrokeRect(c.dst(), float32(d.Min.X), float32(d.Min.Y), float32(d.W()), float32(d.H()), c.width(width), col, true)
}

// FillCircle implements render.Canvas
func (c *Canvas) FillCircle(center vmath.Vec2, radius float64, col render.Color) {
	d := c.Apply(center)
	vector.DrawFilledCircle(c.dst(), float32(d.X), float32(d.Y), float32(radius*c.Matrix().ScaleFactor()), col, true)
}

// StrokeCircle implements render.Canvas
func (c *Canvas) StrokeCircle(center vmath.Vec2, radius, width float64, col render.Color) {
	d := c.Apply(center)
	vector.StrokeCircle(c.dst(), float32(d.X), float32(d.Y), float32(radius*c.Matrix().ScaleFactor()), c.width(width), col, true)
}

// Line implements render.Canvas
func (c *Canvas) Line(a, b vmath.Vec2, width float64, col render.Color) {
	da, db := c.Apply(a), c.Apply(b)
	vector.StrokeLine(c.dst(), float32(da.X), float32(da.Y), float32(db.X), float32(db.Y), c.width(width), col, true)
}

// Text implements render.Canvas, pos is the vertical middle of the line
func (c *Canvas) Text(pos vmath.Vec2, s string, align render.Align, col render.Color) {
	d := c.Apply(pos)
	x, y := textOrigin(c.face, s, d, align)
	text.Draw(c.dst(), s, c.face, x, y, col)
}

// Image implements render.Canvas, unresolved handles draw nothing
func (c *Canvas) Image(img *asset.Image, opts render.ImageOptions) bool {
	if img == nil {
		return false
	}
	src, ok := img.Get()
	if !ok {
		return false
	}
	eimg := c.image(src)
	b := eimg.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return false
	}

	size := opts.Size
	if size == (vmath.Vec2{}) {
		size = vmath.V(w, h)
	}
	scale := c.Matrix().ScaleFactor()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-opts.Anchor.X*w, -opts.Anchor.Y*h)
	op.GeoM.Scale(size.X*scale/w, size.Y*scale/h)
	op.GeoM.Rotate(opts.Rotation)
	d := c.Apply(opts.Pos)
	op.GeoM.Translate(d.X, d.Y)
	if opts.Tint.A > 0 {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	op.Filter = ebiten.FilterLinear
	c.dst().DrawImage(eimg, op)
	return true
}

// dst is the target narrowed to the current clip
func (c *Canvas) dst() *ebiten.Image {
	clip, ok := c.ClipRect()
	if !ok {
		return c.target
	}
	r := image.Rect(
		int(math.Floor(clip.Min.X)), int(math.Floor(clip.Min.Y)),
		int(math.Ceil(clip.Max.X)), int(math.Ceil(clip.Max.Y)),
	)
	return c.target.SubImage(r).(*ebiten.Image)
}

func (c *Canvas) width(w float64) float32 {
	return float32(math.Max(w*c.Matrix().ScaleFactor(), 1))
}

// image uploads a decoded bitmap once
func (c *Canvas) image(src image.Image) *ebiten.Image {
	if eimg, ok := c.images[src]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(src)
	c.images[src] = eimg
	return eimg
}

// textOrigin returns the baseline origin placing s around d
func textOrigin(face font.Face, s string, d vmath.Vec2, align render.Align) (int, int) {
	m := face.Metrics()
	width := font.MeasureString(face, s).Ceil()
	x := int(math.Round(d.X))
	switch align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}
	y := int(math.Round(d.Y)) + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	return x, y
}
