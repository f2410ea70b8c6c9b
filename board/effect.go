package board

import (
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// EffectKind selects how an effect animates
type EffectKind uint8

const (
	// EffectShock is an expanding ring, board-relative
	EffectShock EffectKind = iota
	// EffectReturn is an icon flying back to the palette, world space
	EffectReturn
	// EffectBanner is outcome text over the board
	EffectBanner
)

// Effect is a purely visual, self-expiring animation
type Effect struct {
	Kind EffectKind

	// Pos is board-relative for shock and banner effects
	Pos vmath.Vec2
	// From and To are world positions for return effects
	From, To vmath.Vec2

	Radius float64
	Text   string
	Color  render.Color
	Image  *asset.Image
	Turns  int

	Age      float64
	Duration float64
	Dead     bool
}

// Progress is the normalized age in [0, 1]
func (f *Effect) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return vmath.Clamp(f.Age/f.Duration, 0, 1)
}

func (f *Effect) update(dt float64) {
	f.Age += dt
	if f.Age >= f.Duration {
		f.Dead = true
	}
}

func newShockEffect(at vmath.Vec2) *Effect {
	return &Effect{
		Kind:     EffectShock,
		Pos:      at,
		Radius:   parameter.ShockwaveRadius,
		Color:    render.RgbShockRing,
		Duration: parameter.ShockEffectDuration,
	}
}

func newReturnEffect(from, to vmath.Vec2, bl *Buildable, turns int) *Effect {
	return &Effect{
		Kind:     EffectReturn,
		From:     from,
		To:       to,
		Image:    bl.Icon,
		Turns:    turns,
		Color:    bl.Color,
		Duration: parameter.ReturnEffectDuration,
	}
}

func newBannerEffect(text string, c render.Color, at vmath.Vec2) *Effect {
	return &Effect{
		Kind:     EffectBanner,
		Pos:      at,
		Text:     text,
		Color:    c,
		Duration: parameter.BannerDuration,
	}
}

// easeOut is a quadratic deceleration curve
func easeOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
