package parameter

// Board Geometry
const (
	// BoardWidth and BoardHeight are the grid size in cells
	BoardWidth  = 7
	BoardHeight = 12

	// CellSize is the world size of one grid cell
	CellSize = 32.0

	// BoardPlaceRowMin and BoardPlaceRowMax bound the placeable row band, entry and exit rows are reserved
	BoardPlaceRowMin = 1
	BoardPlaceRowMax = BoardHeight - 2
)

// Path & Terrain Generation
const (
	// BoardTemperatureMin/Max bound the per-board chance of continuing near the previous column
	BoardTemperatureMin = 0.35
	BoardTemperatureMax = 0.9

	// BoardPathWobble is the max column drift when continuing near
	BoardPathWobble = 1

	// BoardObstacleChanceMin/Max bound the per-board obstacle fill probability
	BoardObstacleChanceMin = 0.05
	BoardObstacleChanceMax = 0.2

	// BoardRockShare is the fraction of obstacles that block bullets
	BoardRockShare = 0.5
)

// Board Lifecycle (seconds)
const (
	BoardSlideInDuration = 0.6

	// BoardSlideOutDelay holds the result banner before sliding out
	BoardSlideOutDelay    = 1.8
	BoardSlideOutDuration = 0.7

	// BoardReplaceAfter is the resolved time after which the slot is regenerated
	BoardReplaceAfter = BoardSlideOutDelay + BoardSlideOutDuration

	BoardSlideAccel = 160.0
)

// Wave Schedule
const (
	WaveInitialDelay = 2.5

	WaveGapMin = 5.0
	WaveGapMax = 9.0

	WaveSpacingMin = 0.7
	WaveSpacingMax = 1.5

	WaveCountBase     = 2
	WaveCountPerLevel = 0.75
	WaveCountMax      = 9

	WaveSizeBase     = 2
	WaveSizePerLevel = 1.0
	WaveSizeMax      = 12

	// WaveGunnerLevel is the level from which gunner waves can appear
	WaveGunnerLevel  = 1.0
	WaveGunnerChance = 0.35
)
