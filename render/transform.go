package render

import (
	"math"

	"github.com/lixenwraith/vi-towers/vmath"
)

// Affine is a 2x3 matrix: x' = A*x + C*y + E, y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the unit transform
var Identity = Affine{A: 1, D: 1}

// Apply maps p through the transform
func (m Affine) Apply(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Mul returns m applied after n (m * n)
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Invert returns the inverse, ok is false for singular matrices
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// ScaleFactor returns the mean axis scale
func (m Affine) ScaleFactor() float64 {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	return (sx + sy) / 2
}

// Angle returns the rotation component
func (m Affine) Angle() float64 {
	return math.Atan2(m.B, m.A)
}

type stateFrame struct {
	m       Affine
	clip    vmath.Rect
	clipped bool
}

// State is the transform and clip stack shared by canvas backends
// Backends embed it and map points through Apply before rasterizing
type State struct {
	cur   stateFrame
	stack []stateFrame
}

// Reset drops the stack, used at frame start
func (s *State) Reset() {
	s.cur = stateFrame{m: Identity}
	s.stack = s.stack[:0]
}

func (s *State) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore pops the last Save, unbalanced calls reset to identity
func (s *State) Restore() {
	if len(s.stack) == 0 {
		s.cur = stateFrame{m: Identity}
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *State) Translate(d vmath.Vec2) {
	s.cur.m = s.matrix().Mul(Affine{A: 1, D: 1, E: d.X, F: d.Y})
}

func (s *State) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	s.cur.m = s.matrix().Mul(Affine{A: cos, B: sin, C: -sin, D: cos})
}

func (s *State) Scale(f float64) {
	s.cur.m = s.matrix().Mul(Affine{A: f, D: f})
}

// Clip intersects the device clip with the bounding box of r
func (s *State) Clip(r vmath.Rect) {
	box := s.DeviceRect(r)
	if s.cur.clipped {
		box = intersect(box, s.cur.clip)
	}
	s.cur.clip = box
	s.cur.clipped = true
}

// Matrix returns the current transform
func (s *State) Matrix() Affine {
	return s.matrix()
}

func (s *State) matrix() Affine {
	if s.cur.m == (Affine{}) {
		return Identity
	}
	return s.cur.m
}

// Apply maps a point to device coordinates
func (s *State) Apply(p vmath.Vec2) vmath.Vec2 {
	return s.matrix().Apply(p)
}

// DeviceRect returns the device bounding box of r
func (s *State) DeviceRect(r vmath.Rect) vmath.Rect {
	m := s.matrix()
	pts := [4]vmath.Vec2{
		m.Apply(r.Min),
		m.Apply(vmath.V(r.Max.X, r.Min.Y)),
		m.Apply(r.Max),
		m.Apply(vmath.V(r.Min.X, r.Max.Y)),
	}
	out := vmath.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		out.Min.X = math.Min(out.Min.X, p.X)
		out.Min.Y = math.Min(out.Min.Y, p.Y)
		out.Max.X = math.Max(out.Max.X, p.X)
		out.Max.Y = math.Max(out.Max.Y, p.Y)
	}
	return out
}

// ClipRect returns the device clip, ok is false when unclipped
func (s *State) ClipRect() (vmath.Rect, bool) {
	return s.cur.clip, s.cur.clipped
}

// Visible tests a device point against the clip
func (s *State) Visible(p vmath.Vec2) bool {
	if !s.cur.clipped {
		return true
	}
	return s.cur.clip.Contains(p)
}

func intersect(a, b vmath.Rect) vmath.Rect {
	r := vmath.Rect{
		Min: vmath.V(math.Max(a.Min.X, b.Min.X), math.Max(a.Min.Y, b.Min.Y)),
		Max: vmath.V(math.Min(a.Max.X, b.Max.X), math.Min(a.Max.Y, b.Max.Y)),
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}
