package render

// Color stores straight (non-premultiplied) 8-bit RGBA, decoupled from any backend
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA implements color.Color with premultiplied 16-bit channels
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// Fade scales alpha by f in [0,1]
func (c Color) Fade(f float64) Color {
	if f <= 0 {
		c.A = 0
		return c
	}
	if f < 1 {
		c.A = uint8(float64(c.A) * f)
	}
	return c
}

// Blend performs alpha blending of src over dst using src alpha, result is opaque
func (dst Color) Blend(src Color) Color {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	alpha := float64(src.A) / 255
	inv := 1.0 - alpha
	return Color{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: 255,
	}
}

// Lerp interpolates channels by t in [0,1]
func (c Color) Lerp(o Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return Color{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B), mix(c.A, o.A)}
}
