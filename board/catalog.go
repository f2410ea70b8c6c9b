package board

import (
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Buildable is the immutable catalog entry for a placeable turret kind
// Palette stacks and placed turrets share the same pointer
type Buildable struct {
	Key       string
	Name      string
	Kind      Kind
	Icon      *asset.Image
	Rotatable bool
	Color     render.Color
}

// Build creates the turret entity for cell and rotation, rotation is ignored when not rotatable
func (bl *Buildable) Build(cell vmath.Point, rotation int) *Entity {
	if !bl.Rotatable {
		rotation = 0
	}
	return newTurret(bl, cell, rotation)
}

// Art holds the non-buildable sprites
type Art struct {
	Noop         *asset.Image
	Gunner       *asset.Image
	Bullet       *asset.Image
	GunnerBullet *asset.Image
}

// Catalog is the flyweight table of terrains, buildables and sprites
// Built once per session, read-only afterwards
type Catalog struct {
	Terrain    [TerrainCount]Terrain
	Buildables []*Buildable
	Art        Art

	byKey map[string]*Buildable
}

// NewCatalog registers all images with lib, nil lib leaves every image on its fallback
func NewCatalog(lib *asset.Library) *Catalog {
	c := &Catalog{byKey: make(map[string]*Buildable)}

	c.Terrain[TerrainGround] = Terrain{
		Kind: TerrainGround, Name: "ground", Buildable: true, Fliable: true,
		Image: lib.Image("terrain/ground.png"),
		Color: render.RgbGround,
	}
	c.Terrain[TerrainRock] = Terrain{
		Kind: TerrainRock, Name: "rock", Buildable: false, Fliable: false,
		Image: lib.Image("terrain/rock.png", '▓'),
		Color: render.RgbRock,
	}
	c.Terrain[TerrainBush] = Terrain{
		Kind: TerrainBush, Name: "bush", Buildable: false, Fliable: true,
		Image: lib.Image("terrain/bush.png", '♣'),
		Color: render.RgbBush,
	}

	c.add(&Buildable{
		Key: "repeater", Name: "Repeater", Kind: KindRepeater, Rotatable: true,
		Icon:  lib.Image("turret/repeater.png", '▲', '▶', '▼', '◀'),
		Color: render.RgbRepeater,
	})
	c.add(&Buildable{
		Key: "shockwave", Name: "Shockwave", Kind: KindShockwave, Rotatable: false,
		Icon:  lib.Image("turret/shockwave.png", '◉'),
		Color: render.RgbShockwave,
	})

	c.Art = Art{
		Noop:         lib.Image("enemy/noop.png", '●'),
		Gunner:       lib.Image("enemy/gunner.png", '◆'),
		Bullet:       lib.Image("bullet/repeater.png", '•'),
		GunnerBullet: lib.Image("bullet/gunner.png", '∙'),
	}
	return c
}

func (c *Catalog) add(bl *Buildable) {
	c.Buildables = append(c.Buildables, bl)
	c.byKey[bl.Key] = bl
}

// Buildable looks up a catalog entry by key
func (c *Catalog) Buildable(key string) (*Buildable, bool) {
	bl, ok := c.byKey[key]
	return bl, ok
}
