package parameter

// Turrets
const (
	TurretHealth = 10
	TurretRadius = 0.4

	RepeaterReload = 0.5

	// RepeaterRecoil is the velocity kick applied to the recoil follower per shot
	RepeaterRecoil      = -4.0
	RepeaterRecoilAccel = 300.0

	ShockwaveReload = 1.5
	ShockwaveRadius = 1.5
	ShockwaveDamage = 1
)

// Bullets
const (
	BulletSpeed  = 4.0
	BulletRadius = 0.12
	BulletDamage = 1

	// BulletOutOfBoundsGrace tolerates edge excursions before the bullet dies
	BulletOutOfBoundsGrace = 0.2

	GunnerBulletSpeed  = 3.0
	GunnerBulletDamage = 1
)

// Enemies
const (
	EnemyRadius = 0.3

	NoopSpeed  = 1.0
	NoopHealth = 3

	GunnerSpeed  = 0.7
	GunnerHealth = 4
	GunnerRange  = 3.0
	GunnerPeriod = 1.5

	// EnemyTurnLookahead is the distance before a waypoint where facing starts blending into the next segment
	EnemyTurnLookahead = 0.5
	EnemyTurnAccel     = 150.0

	// EnemySpawnGrace keeps enemies invulnerable until the second waypoint, superseded and off
	EnemySpawnGrace = false
)

// Effects (seconds)
const (
	ShockEffectDuration  = 0.35
	ReturnEffectDuration = 0.8
	BannerDuration       = BoardReplaceAfter
)
