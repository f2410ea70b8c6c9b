package board

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Options configures a new board
type Options struct {
	Catalog *Catalog
	Host    Host
	Sound   core.Sound
	Seed    uint64
	Level   float64
	// Base is the resting world position of the top-left corner
	Base vmath.Vec2

	// Path replaces the generated path when set, must be a valid path
	Path []vmath.Point
	// NoWaves leaves the roster empty
	NoWaves bool
	// NoObstacles skips terrain decoration
	NoObstacles bool
	// Settled starts the board at rest instead of sliding in
	Settled bool
}

// Board is one playfield: grid, enemy path, entities, effects and outcome
type Board struct {
	ID     uuid.UUID
	Width  int
	Height int
	Level  float64

	Temperature float64

	cells    []Cell
	Entities []*Entity
	Effects  []*Effect

	Path      []vmath.Point
	waypoints []vmath.Vec2

	roster     []Spawn
	spawnClock float64

	GameOver    bool
	Lost        bool
	resolvedFor float64

	base  vmath.Vec2
	slide physics.Smooth

	host    Host
	sound   core.Sound
	catalog *Catalog
	rng     *vmath.FastRand

	nextID uint32
	near   []*Entity
}

// New generates a board with a fresh path, obstacle layout and wave roster
func New(opts Options) *Board {
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog(nil)
	}
	if opts.Host == nil {
		opts.Host = nopHost{}
	}
	if opts.Sound == nil {
		opts.Sound = core.Silent
	}

	b := &Board{
		ID:      uuid.New(),
		Width:   parameter.BoardWidth,
		Height:  parameter.BoardHeight,
		Level:   opts.Level,
		host:    opts.Host,
		sound:   opts.Sound,
		catalog: opts.Catalog,
		rng:     vmath.NewFastRand(opts.Seed),
		base:    opts.Base,
		slide:   physics.NewSmooth(parameter.ViewHeight),
	}

	if opts.Settled {
		b.slide.Set(0)
	}

	b.cells = make([]Cell, b.Width*b.Height)
	for i := range b.cells {
		b.cells[i].Terrain = &b.catalog.Terrain[TerrainGround]
	}

	b.Temperature = b.rng.Range(parameter.BoardTemperatureMin, parameter.BoardTemperatureMax)
	if opts.Path != nil {
		b.Path = opts.Path
	} else {
		b.Path = generatePath(b.rng, b.Width, b.Height, b.Temperature)
	}
	b.waypoints = make([]vmath.Vec2, len(b.Path))
	for i, p := range b.Path {
		b.Cell(p).OnPath = true
		b.waypoints[i] = p.Center()
	}

	if !opts.NoObstacles {
		b.decorate(b.rng.Range(parameter.BoardObstacleChanceMin, parameter.BoardObstacleChanceMax))
	}
	if !opts.NoWaves {
		b.roster = generateWaves(b.rng, b.Level)
	}

	log.Printf("[board] %s created: level=%.2f path=%d roster=%d", b.ID, b.Level, len(b.Path), len(b.roster))
	return b
}

// Update advances spawns, entities, effects and outcome by dt seconds
func (b *Board) Update(dt float64) {
	b.tickSlide(dt)

	if !b.GameOver {
		b.spawnClock += dt
		for n := len(b.roster); n > 0 && b.roster[n-1].At <= b.spawnClock; n = len(b.roster) {
			b.spawn(b.roster[n-1].Kind)
			b.roster = b.roster[:n-1]
		}
	}

	// Entities appended during the pass are updated in the same pass
	for i := 0; i < len(b.Entities); i++ {
		b.updateEntity(b.Entities[i], dt)
	}
	b.compact()

	for _, f := range b.Effects {
		f.update(dt)
	}
	b.Effects = compactEffects(b.Effects)

	if !b.GameOver && len(b.roster) == 0 && b.Enemies() == 0 {
		b.resolve(false)
	}
	if b.GameOver {
		b.resolvedFor += dt
	}
}

func (b *Board) updateEntity(e *Entity, dt float64) {
	if e.HasHealth() && e.Health <= 0 {
		e.Dead = true
	}
	e.World = b.RelToGlobal(e.Pos)
	if e.Dead {
		return
	}
	behaviors[e.Kind].update(b, e, dt)
	e.World = b.RelToGlobal(e.Pos)
}

func (b *Board) spawn(kind Kind) {
	facing := 0.0
	if len(b.waypoints) > 1 {
		facing = vmath.Bearing(b.waypoints[1].Sub(b.waypoints[0]))
	}
	b.Add(newEnemy(kind, b.waypoints[0], facing))
}

// Add appends e to the entity list, assigning its ID
func (b *Board) Add(e *Entity) {
	b.nextID++
	e.ID = b.nextID
	e.World = b.RelToGlobal(e.Pos)
	b.Entities = append(b.Entities, e)
}

// AddEffect appends a visual effect
func (b *Board) AddEffect(f *Effect) {
	b.Effects = append(b.Effects, f)
}

// compact drops dead entities in place, preserving order
func (b *Board) compact() {
	live := b.Entities[:0]
	for _, e := range b.Entities {
		if !e.Dead {
			live = append(live, e)
			continue
		}
		b.retire(e)
	}
	clear(b.Entities[len(live):])
	b.Entities = live
}

func (b *Board) retire(e *Entity) {
	killed := e.HasHealth() && e.Health <= 0
	switch e.Kind.Class() {
	case ClassTurret:
		if c := b.Cell(e.Turret.Cell); c.Occupant == e {
			c.Occupant = nil
		}
		if killed {
			b.play(core.SoundTurretDeath, 0.7, e.World)
		}
	case ClassEnemy:
		if killed {
			b.host.EnemyKilled(b, e)
			b.play(core.SoundEnemyDeath, 0.5, e.World)
		}
	}
}

func compactEffects(effects []*Effect) []*Effect {
	live := effects[:0]
	for _, f := range effects {
		if !f.Dead {
			live = append(live, f)
		}
	}
	clear(effects[len(live):])
	return live
}

// resolve records the outcome once per board lifetime
func (b *Board) resolve(lost bool) {
	if b.GameOver {
		return
	}
	b.GameOver = true
	b.Lost = lost

	center := vmath.V(float64(b.Width)/2, float64(b.Height)/2)
	if lost {
		b.roster = nil
		b.host.BoardLost(b)
		b.AddEffect(newBannerEffect("OVERRUN", render.RgbBannerLost, center))
		b.play(core.SoundBoardLost, 1, b.RelToGlobal(center))
		log.Printf("[board] %s lost", b.ID)
		return
	}

	returned := 0
	for _, e := range b.Entities {
		if e.Dead || e.Turret == nil {
			continue
		}
		bl := e.Turret.Buildable
		if to, ok := b.host.ReturnBuildable(bl); ok {
			b.AddEffect(newReturnEffect(e.World, to, bl, e.Turret.Rotation))
		}
		e.Dead = true
		returned++
	}
	b.host.BoardWon(b)
	b.AddEffect(newBannerEffect("CLEARED", render.RgbBannerWon, center))
	b.play(core.SoundBoardWon, 1, b.RelToGlobal(center))
	log.Printf("[board] %s won, %d turrets returned", b.ID, returned)
}

// Damage subtracts n health, marking e dead at zero
func (b *Board) Damage(e *Entity, n int) {
	if e.Dead || !e.HasHealth() {
		return
	}
	if e.Enemy != nil && !e.Enemy.Armed {
		return
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Dead = true
	}
}

// EntitiesNear returns live entities whose radius overlaps the circle at p
// The returned slice is reused by the next call
func (b *Board) EntitiesNear(p vmath.Vec2, r float64) []*Entity {
	b.near = b.near[:0]
	for _, e := range b.Entities {
		if e.Dead {
			continue
		}
		reach := r + e.Radius
		if e.Pos.DistSq(p) < reach*reach {
			b.near = append(b.near, e)
		}
	}
	return b.near
}

// Enemies counts live enemies
func (b *Board) Enemies() int {
	n := 0
	for _, e := range b.Entities {
		if !e.Dead && e.Kind.Class() == ClassEnemy {
			n++
		}
	}
	return n
}

// Pending is the number of enemies not yet spawned
func (b *Board) Pending() int {
	return len(b.roster)
}

// Expired reports whether the slide-out has finished and the slot may be replaced
func (b *Board) Expired() bool {
	return b.GameOver && b.resolvedFor >= parameter.BoardReplaceAfter
}

// SetBase moves the resting world position, used by the owning game while panning
func (b *Board) SetBase(base vmath.Vec2) {
	b.base = base
}

// Origin is the current world position of the top-left corner including slide
func (b *Board) Origin() vmath.Vec2 {
	return b.base.Add(vmath.V(0, b.slide.Value))
}

func (b *Board) tickSlide(dt float64) {
	target := 0.0
	if b.GameOver && b.resolvedFor >= parameter.BoardSlideOutDelay {
		target = -(parameter.BoardTop + parameter.CellSize*float64(b.Height))
	}
	b.slide.TickDamped(dt, target, parameter.BoardSlideAccel, physics.CriticalDamping(parameter.BoardSlideAccel))
}

// Settled reports whether the board has finished sliding in
func (b *Board) Settled() bool {
	return !b.GameOver && vmath.NearlyEqual(b.slide.Value, 0, 0.5)
}

// RelToGlobal maps fractional cells to world units
func (b *Board) RelToGlobal(rel vmath.Vec2) vmath.Vec2 {
	return b.Origin().Add(rel.Scale(parameter.CellSize))
}

// GlobalToRel maps world units to fractional cells
func (b *Board) GlobalToRel(g vmath.Vec2) vmath.Vec2 {
	return g.Sub(b.Origin()).Scale(1 / parameter.CellSize)
}

// CellToGlobal returns the world center of cell p
func (b *Board) CellToGlobal(p vmath.Point) vmath.Vec2 {
	return b.RelToGlobal(p.Center())
}

// GlobalToCell returns the cell under world position g
func (b *Board) GlobalToCell(g vmath.Vec2) (vmath.Point, bool) {
	p := b.GlobalToRel(g).Floor()
	return p, b.InBounds(p)
}

// Bounds is the world rectangle covered by the grid
func (b *Board) Bounds() vmath.Rect {
	o := b.Origin()
	return vmath.R(o.X, o.Y, float64(b.Width)*parameter.CellSize, float64(b.Height)*parameter.CellSize)
}

// InBounds reports whether p is a grid cell
func (b *Board) InBounds(p vmath.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cell returns the cell at p, p must be in bounds
func (b *Board) Cell(p vmath.Point) *Cell {
	return &b.cells[p.Y*b.Width+p.X]
}

// CanPlace reports whether a buildable may be dropped on p now
func (b *Board) CanPlace(p vmath.Point) bool {
	if b.GameOver || !b.InBounds(p) {
		return false
	}
	if p.Y < parameter.BoardPlaceRowMin || p.Y > parameter.BoardPlaceRowMax {
		return false
	}
	return b.Cell(p).Placeable()
}

// Place builds bl on p, returning false and leaving the board untouched when p is not placeable
func (b *Board) Place(bl *Buildable, p vmath.Point, rotation int) (*Entity, bool) {
	if bl == nil || !b.CanPlace(p) {
		return nil, false
	}
	e := bl.Build(p, rotation)
	b.Cell(p).Occupant = e
	b.Add(e)
	b.play(core.SoundPlace, 0.6, e.World)
	return e, true
}

func (b *Board) play(st core.SoundType, gain float64, at vmath.Vec2) {
	half := parameter.ViewWidth / 2.0
	b.sound.Play(st, gain, vmath.Clamp((at.X-half)/half, -1, 1))
}
