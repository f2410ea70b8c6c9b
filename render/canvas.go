package render

import (
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Align selects horizontal text anchoring
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ImageOptions positions an image blit
// Anchor is normalized within the image, (0.5,0.5) centers it on Pos
type ImageOptions struct {
	Pos      vmath.Vec2
	Size     vmath.Vec2
	Anchor   vmath.Vec2
	Rotation float64
	// Turns is the quarter-turn count used by glyph stand-ins
	Turns int
	Tint  Color
}

// Canvas is a stateful 2D surface in world units
// Transform and clip calls affect subsequent draws until the matching Restore
type Canvas interface {
	// Size returns the visible area in world units
	Size() vmath.Vec2

	Clear(c Color)

	Save()
	Restore()
	Translate(d vmath.Vec2)
	Rotate(angle float64)
	Scale(s float64)
	// Clip intersects the clip region with r in current coordinates
	Clip(r vmath.Rect)

	FillRect(r vmath.Rect, c Color)
	StrokeRect(r vmath.Rect, width float64, c Color)
	FillCircle(center vmath.Vec2, radius float64, c Color)
	StrokeCircle(center vmath.Vec2, radius, width float64, c Color)
	Line(a, b vmath.Vec2, width float64, c Color)
	Text(pos vmath.Vec2, s string, align Align, c Color)

	// Image draws img and reports whether anything was drawn
	// Surfaces that cannot show img draw nothing so callers can fall back to shapes
	Image(img *asset.Image, opts ImageOptions) bool
}
