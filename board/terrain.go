package board

import (
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// TerrainKind indexes the shared terrain table
type TerrainKind uint8

const (
	TerrainGround TerrainKind = iota
	// TerrainRock blocks building and bullets
	TerrainRock
	// TerrainBush blocks building, bullets pass
	TerrainBush
	TerrainCount
)

// Terrain is the immutable backing of a cell, shared by every cell of that kind
type Terrain struct {
	Kind      TerrainKind
	Name      string
	Buildable bool
	Fliable   bool
	Image     *asset.Image
	Color     render.Color
}

// Cell is one grid slot
type Cell struct {
	Terrain  *Terrain
	Occupant *Entity
	OnPath   bool
}

// Placeable reports whether a buildable may go here
func (c *Cell) Placeable() bool {
	return c.Terrain != nil && c.Terrain.Buildable && !c.OnPath && c.Occupant == nil
}

// Fliable reports whether bullets may cross this cell
func (c *Cell) Fliable() bool {
	return c.Terrain == nil || c.Terrain.Fliable
}

// Span returns the relative rectangle covered by cell p
func Span(p vmath.Point) vmath.Rect {
	return vmath.R(float64(p.X), float64(p.Y), 1, 1)
}
