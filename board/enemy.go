package board

import (
	"math"

	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/vmath"
)

func newEnemy(kind Kind, at vmath.Vec2, facing float64) *Entity {
	speed, health := parameter.NoopSpeed, parameter.NoopHealth
	if kind == KindGunner {
		speed, health = parameter.GunnerSpeed, parameter.GunnerHealth
	}
	return &Entity{
		Kind:      kind,
		Pos:       at,
		Radius:    parameter.EnemyRadius,
		Health:    health,
		MaxHealth: health,
		Enemy: &EnemyState{
			Next:   1,
			Speed:  speed,
			Facing: physics.NewSmoothAngle(facing),
			Fire:   parameter.GunnerPeriod,
			Armed:  !parameter.EnemySpawnGrace,
		},
	}
}

// walk advances along the waypoints, carrying overshoot into the next segment
func walk(b *Board, e *Entity, dt float64) {
	es := e.Enemy
	step := es.Speed * dt
	for step > 0 && es.Next < len(b.waypoints) {
		target := b.waypoints[es.Next]
		dist := e.Pos.Dist(target)
		if dist > step {
			e.Pos = e.Pos.Add(target.Sub(e.Pos).Scale(step / dist))
			break
		}
		e.Pos = target
		step -= dist
		es.Next++
		es.Armed = true
	}

	if es.Next >= len(b.waypoints) {
		e.Dead = true
		if !es.reachedEnd {
			es.reachedEnd = true
			b.resolve(true)
		}
		return
	}

	es.Facing.TickDamped(dt, heading(b, e), parameter.EnemyTurnAccel, physics.CriticalDamping(parameter.EnemyTurnAccel))
}

// heading is the bearing of the current segment, blended toward the next one near the corner
func heading(b *Board, e *Entity) float64 {
	es := e.Enemy
	target := b.waypoints[es.Next]
	current := vmath.Bearing(target.Sub(e.Pos))
	if e.Pos.DistSq(target) < 1e-12 {
		current = es.Facing.Value
	}
	if es.Next+1 >= len(b.waypoints) {
		return current
	}
	dist := e.Pos.Dist(target)
	if dist >= parameter.EnemyTurnLookahead {
		return current
	}
	next := vmath.Bearing(b.waypoints[es.Next+1].Sub(target))
	t := 1 - dist/parameter.EnemyTurnLookahead
	return current + vmath.AngleDelta(current, next)*t
}

func updateEnemy(b *Board, e *Entity, dt float64) {
	walk(b, e, dt)
}

func updateGunner(b *Board, e *Entity, dt float64) {
	walk(b, e, dt)
	if e.Dead {
		return
	}

	es := e.Enemy
	es.Target = nearestTurret(b, e.Pos, parameter.GunnerRange)
	if es.Target == nil {
		es.Fire = math.Max(es.Fire-dt, 0)
		return
	}

	es.Fire -= dt
	if es.Fire >= 0 {
		return
	}
	es.Fire += parameter.GunnerPeriod
	if es.Fire < 0 {
		es.Fire = 0
	}

	dir := es.Target.Pos.Sub(e.Pos).Normalize()
	b.Add(&Entity{
		Kind:   KindGunnerBullet,
		Pos:    e.Pos,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{
			Owner:  e,
			Damage: parameter.GunnerBulletDamage,
			Motion: physics.Kinetic{Pos: e.Pos, Vel: dir.Scale(parameter.GunnerBulletSpeed)},
		},
	})
	b.play(core.SoundShoot, 0.25, e.World)
}

func nearestTurret(b *Board, at vmath.Vec2, radius float64) *Entity {
	var best *Entity
	bestDist := math.Inf(1)
	for _, other := range b.EntitiesNear(at, radius) {
		if other.Kind.Class() != ClassTurret {
			continue
		}
		if d := other.Pos.DistSq(at); d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}
