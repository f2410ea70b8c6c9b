package board

import (
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
)

func repeaterBulletAccepts(e, target *Entity) bool {
	return target.HasHealth() && target != e.Bullet.Owner
}

func gunnerBulletAccepts(e, target *Entity) bool {
	return target.Kind.Class() == ClassTurret
}

func updateBullet(b *Board, e *Entity, dt float64) {
	bs := e.Bullet
	e.Pos = bs.Motion.Integrate(dt)

	cell := e.Pos.Floor()
	if !b.InBounds(cell) {
		bs.OutOfBounds += dt
		if bs.OutOfBounds > parameter.BulletOutOfBoundsGrace {
			e.Dead = true
		}
		return
	}
	bs.OutOfBounds = 0

	if !b.Cell(cell).Fliable() {
		e.Dead = true
		return
	}

	accepts := behaviors[e.Kind].accepts
	for _, target := range b.EntitiesNear(e.Pos, e.Radius) {
		if target == e || target.Kind.Class() == ClassBullet {
			continue
		}
		if accepts != nil && !accepts(e, target) {
			continue
		}
		b.Damage(target, bs.Damage)
		e.Dead = true
		b.play(core.SoundHit, 0.3, e.World)
		return
	}
}
