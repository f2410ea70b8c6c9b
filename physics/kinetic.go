package physics

import "github.com/lixenwraith/vi-towers/vmath"

// Kinetic is a point mass in board-relative units
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
	Acc vmath.Vec2
}

// Integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
func (k *Kinetic) Integrate(dt float64) vmath.Vec2 {
	k.Vel = k.Vel.Add(k.Acc.Scale(dt))
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
	return k.Pos
}
