package vmath

import "math"

// Angles are radians, 0 points north (screen -Y), positive turns clockwise

const (
	TwoPi      = 2 * math.Pi
	QuarterTau = math.Pi / 2
)

// WrapAngle maps a into (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, TwoPi)
	if a <= 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// AngleDelta returns the shortest signed turn from a to b, in (-π, π]
func AngleDelta(a, b float64) float64 {
	return WrapAngle(b - a)
}

// Bearing returns the heading of direction d
func Bearing(d Vec2) float64 {
	return math.Atan2(d.X, -d.Y)
}

// Direction returns the unit vector for heading a
func Direction(a float64) Vec2 {
	return Vec2{math.Sin(a), -math.Cos(a)}
}

// QuarterTurns converts a rotation count to radians
func QuarterTurns(r int) float64 {
	return float64(r) * QuarterTau
}

// Rotate rotates v clockwise by a (screen coordinates)
func (v Vec2) Rotate(a float64) Vec2 {
	s, c := math.Sincos(a)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
