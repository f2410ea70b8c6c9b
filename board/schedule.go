package board

import (
	"math"
	"slices"

	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Spawn is one scheduled enemy
type Spawn struct {
	At   float64
	Kind Kind
}

// generateWaves builds the roster sorted by time descending so due spawns pop from the end
func generateWaves(rng *vmath.FastRand, level float64) []Spawn {
	waves := min(parameter.WaveCountBase+int(math.Floor(level*parameter.WaveCountPerLevel))+rng.Intn(2), parameter.WaveCountMax)

	var roster []Spawn
	at := parameter.WaveInitialDelay
	for w := 0; w < waves; w++ {
		kind := KindNoop
		if level >= parameter.WaveGunnerLevel && rng.Chance(parameter.WaveGunnerChance) {
			kind = KindGunner
		}
		size := min(parameter.WaveSizeBase+int(math.Floor(level*parameter.WaveSizePerLevel))+rng.Intn(2), parameter.WaveSizeMax)
		spacing := rng.Range(parameter.WaveSpacingMin, parameter.WaveSpacingMax)
		for i := 0; i < size; i++ {
			roster = append(roster, Spawn{At: at, Kind: kind})
			at += spacing
		}
		at += rng.Range(parameter.WaveGapMin, parameter.WaveGapMax)
	}

	sortRoster(roster)
	return roster
}

func sortRoster(roster []Spawn) {
	slices.SortStableFunc(roster, func(a, b Spawn) int {
		switch {
		case a.At > b.At:
			return -1
		case a.At < b.At:
			return 1
		}
		return 0
	})
}
