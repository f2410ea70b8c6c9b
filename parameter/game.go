package parameter

// Session Slots
const (
	MaxSlots = 4

	// BoardSpacing is the world distance between slot origins
	BoardSpacing = CellSize * (BoardWidth + 1)
)

// LevelSlotThresholds holds the level at which each slot activates
var LevelSlotThresholds = [MaxSlots]float64{0, 2, 5, 9}

// Token Economy
const (
	TokensInitial = 3
	TokensMax     = 6

	// TokenAnimDuration is the settle time of gained/lost token animations
	TokenAnimDuration = 0.8
)

// Score
const (
	ScorePerSecond = 1.0
	ScorePerKill   = 10
	ScorePerBoard  = 100
)

// Camera Pan
const (
	PanAccel       = 600.0
	PanSpringAccel = 120.0

	// PanOverscroll is how far the pan can be dragged past its bounds before springing back
	PanOverscroll = CellSize * 2
)

// Initial palette stock per buildable key
var PaletteStock = map[string]int{
	"repeater":  3,
	"shockwave": 1,
}
