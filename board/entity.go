package board

import (
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Kind tags the entity variant
type Kind uint8

const (
	KindRepeater Kind = iota
	KindShockwave
	KindRepeaterBullet
	KindGunnerBullet
	KindNoop
	KindGunner
	kindCount
)

var kindNames = [kindCount]string{"repeater", "shockwave", "repeater_bullet", "gunner_bullet", "noop", "gunner"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Class groups kinds sharing base behavior
type Class uint8

const (
	ClassTurret Class = iota
	ClassBullet
	ClassEnemy
)

// Class returns the base class of k
func (k Kind) Class() Class {
	switch k {
	case KindRepeater, KindShockwave:
		return ClassTurret
	case KindRepeaterBullet, KindGunnerBullet:
		return ClassBullet
	}
	return ClassEnemy
}

// Entity is the shared record of every board entity
// Exactly one payload matching Kind.Class() is set
type Entity struct {
	ID   uint32
	Kind Kind

	// Pos is the board-relative position in fractional cells
	Pos vmath.Vec2
	// World is derived from Pos each update
	World vmath.Vec2

	Radius float64
	Dead   bool

	// MaxHealth of zero means the entity has no health
	Health    int
	MaxHealth int

	Turret *TurretState
	Bullet *BulletState
	Enemy  *EnemyState
}

// HasHealth reports whether damage applies
func (e *Entity) HasHealth() bool {
	return e.MaxHealth > 0
}

// TurretState is the turret payload
type TurretState struct {
	Buildable *Buildable
	Cell      vmath.Point
	// Rotation is in quarter turns, 0 faces north
	Rotation int
	// Refire counts down to the next shot
	Refire float64
	Recoil physics.Smooth
}

// BulletState is the bullet payload
type BulletState struct {
	Owner  *Entity
	Motion physics.Kinetic
	Damage int
	// OutOfBounds accumulates time spent outside the grid
	OutOfBounds float64
}

// EnemyState is the enemy payload
type EnemyState struct {
	// Next is the index of the waypoint being walked to
	Next   int
	Speed  float64
	Facing physics.SmoothAngle
	// Fire counts down to the next gunner shot
	Fire   float64
	Target *Entity
	// Armed is false during spawn grace
	Armed      bool
	reachedEnd bool
}

// behavior is the per-kind function table
type behavior struct {
	update func(b *Board, e *Entity, dt float64)
	draw   func(b *Board, e *Entity, ctx render.Context, c render.Canvas)
	// accepts reports whether bullet e may hit target, bullets only
	accepts func(e, target *Entity) bool
}

var behaviors [kindCount]behavior

func init() {
	behaviors = [kindCount]behavior{
		KindRepeater:       {update: updateRepeater, draw: drawTurret},
		KindShockwave:      {update: updateShockwave, draw: drawTurret},
		KindRepeaterBullet: {update: updateBullet, draw: drawBullet, accepts: repeaterBulletAccepts},
		KindGunnerBullet:   {update: updateBullet, draw: drawBullet, accepts: gunnerBulletAccepts},
		KindNoop:           {update: updateEnemy, draw: drawEnemy},
		KindGunner:         {update: updateGunner, draw: drawEnemy},
	}
}
