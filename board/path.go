package board

import (
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// generatePath walks top to bottom, one target column per row, stepping horizontally then down
// temperature is the chance of staying near the previous column
func generatePath(rng *vmath.FastRand, width, height int, temperature float64) []vmath.Point {
	col := rng.Intn(width)
	path := []vmath.Point{{X: col, Y: 0}}

	for y := 1; y < height; y++ {
		var next int
		if rng.Chance(temperature) {
			next = vmath.ClampInt(col+rng.IntRange(-parameter.BoardPathWobble, parameter.BoardPathWobble), 0, width-1)
		} else {
			next = rng.Intn(width)
		}

		for col != next {
			col += vmath.Sign(next - col)
			path = append(path, vmath.Point{X: col, Y: y - 1})
		}
		path = append(path, vmath.Point{X: col, Y: y})
	}
	return path
}

// validPath reports whether consecutive points are orthogonal neighbors spanning top to bottom
func validPath(path []vmath.Point, width, height int) bool {
	if len(path) == 0 || path[0].Y != 0 || path[len(path)-1].Y != height-1 {
		return false
	}
	for i, p := range path {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return false
		}
		if i == 0 {
			continue
		}
		d := p.Add(vmath.Point{X: -path[i-1].X, Y: -path[i-1].Y})
		if abs(d.X)+abs(d.Y) != 1 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// decorate scatters obstacles on cells off the path
func (b *Board) decorate(chance float64) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Cell(vmath.Point{X: x, Y: y})
			if c.OnPath || !b.rng.Chance(chance) {
				continue
			}
			if b.rng.Chance(parameter.BoardRockShare) {
				c.Terrain = &b.catalog.Terrain[TerrainRock]
			} else {
				c.Terrain = &b.catalog.Terrain[TerrainBush]
			}
		}
	}
}
