package core

// SoundType represents game sound cues
type SoundType int

// Cue order matches soundNames
const (
	SoundPlace SoundType = iota
	SoundCancel
	SoundRotate
	SoundShoot
	SoundShock
	SoundHit
	SoundEnemyDeath
	SoundTurretDeath
	SoundBoardWon
	SoundBoardLost
	SoundTokenGained
	SoundTokenLost
	SoundMenu
	SoundTypeCount
)

var soundNames = [...]string{
	"place", "cancel", "rotate", "shoot", "shock", "hit", "enemy_death",
	"turret_death", "board_won", "board_lost", "token_gained", "token_lost", "menu",
}

func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// Sound is the playback capability consumed by the simulation
// Implementations no-op when audio is disabled or the sound is not loaded
type Sound interface {
	// Play starts a one-shot cue, gain in [0,1], pan in [-1,1]
	Play(st SoundType, gain, pan float64)
}

// SoundFunc adapts a function to Sound
type SoundFunc func(st SoundType, gain, pan float64)

// Play implements Sound
func (f SoundFunc) Play(st SoundType, gain, pan float64) {
	f(st, gain, pan)
}

// Silent discards all cues
var Silent Sound = SoundFunc(func(SoundType, float64, float64) {})
