package board

import (
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/vmath"
)

func newTurret(bl *Buildable, cell vmath.Point, rotation int) *Entity {
	return &Entity{
		Kind:      bl.Kind,
		Pos:       cell.Center(),
		Radius:    parameter.TurretRadius,
		Health:    parameter.TurretHealth,
		MaxHealth: parameter.TurretHealth,
		Turret: &TurretState{
			Buildable: bl,
			Cell:      cell,
			Rotation:  rotation,
		},
	}
}

// Facing returns the unit direction the turret points at
func (t *TurretState) Facing() vmath.Vec2 {
	return vmath.Direction(vmath.QuarterTurns(t.Rotation))
}

// tickRefire counts down and reports a shot, rewinding by reload without carrying a backlog
func (t *TurretState) tickRefire(dt, reload float64) bool {
	t.Refire -= dt
	if t.Refire >= 0 {
		return false
	}
	t.Refire += reload
	if t.Refire < 0 {
		t.Refire = 0
	}
	return true
}

func updateRepeater(b *Board, e *Entity, dt float64) {
	t := e.Turret
	t.Recoil.TickDamped(dt, 0, parameter.RepeaterRecoilAccel, physics.CriticalDamping(parameter.RepeaterRecoilAccel))

	if !t.tickRefire(dt, parameter.RepeaterReload) {
		return
	}

	dir := t.Facing()
	bullet := &Entity{
		Kind:   KindRepeaterBullet,
		Pos:    e.Pos,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{
			Owner:  e,
			Damage: parameter.BulletDamage,
			Motion: physics.Kinetic{Pos: e.Pos, Vel: dir.Scale(parameter.BulletSpeed)},
		},
	}
	b.Add(bullet)
	t.Recoil.Nudge(parameter.RepeaterRecoil)
	b.play(core.SoundShoot, 0.4, e.World)
}

func updateShockwave(b *Board, e *Entity, dt float64) {
	t := e.Turret
	if !t.tickRefire(dt, parameter.ShockwaveReload) {
		return
	}

	for _, target := range b.EntitiesNear(e.Pos, parameter.ShockwaveRadius) {
		if target == e {
			continue
		}
		b.Damage(target, parameter.ShockwaveDamage)
	}
	b.AddEffect(newShockEffect(e.Pos))
	b.play(core.SoundShock, 0.6, e.World)
}
