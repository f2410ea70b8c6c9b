package physics

import (
	"math"

	"github.com/lixenwraith/vi-towers/vmath"
)

// DefaultDamping is used by Tick when no damping is given
const DefaultDamping = 0.15

// CriticalDamping returns the damping that settles without ringing for the given acceleration
func CriticalDamping(acceleration float64) float64 {
	if acceleration <= 0 {
		return 0
	}
	return 2 * math.Sqrt(acceleration)
}

// Smooth is a spring follower: value chases a target, velocity carries momentum
// Tick once per frame with delta <= 1/30
type Smooth struct {
	Value    float64
	Velocity float64
}

// NewSmooth starts at rest on v
func NewSmooth(v float64) Smooth {
	return Smooth{Value: v}
}

// Set snaps to v and drops momentum
func (s *Smooth) Set(v float64) {
	s.Value = v
	s.Velocity = 0
}

// Tick pulls Value toward target with DefaultDamping
func (s *Smooth) Tick(delta, target, acceleration float64) {
	s.TickDamped(delta, target, acceleration, DefaultDamping)
}

// TickDamped pulls Value toward target
// The target is offset against current velocity so the follower brakes before arriving
func (s *Smooth) TickDamped(delta, target, acceleration, damping float64) {
	if acceleration <= 0 || delta <= 0 {
		return
	}
	adjusted := target
	if damping > 0 {
		adjusted -= s.Velocity / (acceleration / damping)
	}
	s.Velocity += (adjusted - s.Value) * acceleration * delta
	s.Value += s.Velocity * delta
}

// Nudge adds an impulse without moving the value
func (s *Smooth) Nudge(impulse float64) {
	s.Velocity += impulse
}

// SmoothVec is the 2D form of Smooth sharing one acceleration for both axes
type SmoothVec struct {
	Value    vmath.Vec2
	Velocity vmath.Vec2
}

// NewSmoothVec starts at rest on v
func NewSmoothVec(v vmath.Vec2) SmoothVec {
	return SmoothVec{Value: v}
}

// Set snaps to v and drops momentum
func (s *SmoothVec) Set(v vmath.Vec2) {
	s.Value = v
	s.Velocity = vmath.Vec2{}
}

// Tick pulls Value toward target with DefaultDamping
func (s *SmoothVec) Tick(delta float64, target vmath.Vec2, acceleration float64) {
	s.TickDamped(delta, target, acceleration, DefaultDamping)
}

// TickDamped pulls Value toward target
func (s *SmoothVec) TickDamped(delta float64, target vmath.Vec2, acceleration, damping float64) {
	if acceleration <= 0 || delta <= 0 {
		return
	}
	adjusted := target
	if damping > 0 {
		adjusted = adjusted.Sub(s.Velocity.Scale(damping / acceleration))
	}
	s.Velocity = s.Velocity.Add(adjusted.Sub(s.Value).Scale(acceleration * delta))
	s.Value = s.Value.Add(s.Velocity.Scale(delta))
}

// SmoothAngle follows an angle along the shortest arc
// Value is kept within π of the target before every step so crossing ±π never detours
type SmoothAngle struct {
	Smooth
}

// NewSmoothAngle starts at rest on a
func NewSmoothAngle(a float64) SmoothAngle {
	return SmoothAngle{Smooth{Value: a}}
}

// Tick pulls Value toward target with DefaultDamping
func (s *SmoothAngle) Tick(delta, target, acceleration float64) {
	s.TickDamped(delta, target, acceleration, DefaultDamping)
}

// TickDamped rewraps Value next to target and integrates
func (s *SmoothAngle) TickDamped(delta, target, acceleration, damping float64) {
	s.Value = target + vmath.WrapAngle(s.Value-target)
	s.Smooth.TickDamped(delta, target, acceleration, damping)
}

// Shift moves value and target frame by a full turn offset without visible motion
// Used when the logical target wraps (e.g. rotation 3 -> 0)
func (s *SmoothAngle) Shift(by float64) {
	s.Value += by
}
