package board

import (
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/physics"
	"github.com/lixenwraith/vi-towers/vmath"
)

type recordHost struct {
	won, lost, killed int
	returned          []*Buildable
}

func (h *recordHost) BoardWon(*Board)  { h.won++ }
func (h *recordHost) BoardLost(*Board) { h.lost++ }
func (h *recordHost) ReturnBuildable(bl *Buildable) (vmath.Vec2, bool) {
	h.returned = append(h.returned, bl)
	return vmath.V(10, 500), true
}
func (h *recordHost) EnemyKilled(*Board, *Entity) { h.killed++ }

func straightPath(col int) []vmath.Point {
	path := make([]vmath.Point, parameter.BoardHeight)
	for y := range path {
		path[y] = vmath.Point{X: col, Y: y}
	}
	return path
}

// newTestBoard builds a settled board with a straight path in column 0 and a far-off pending spawn
func newTestBoard(h Host) *Board {
	b := New(Options{Host: h, Seed: 7, Path: straightPath(0), NoWaves: true, NoObstacles: true, Settled: true, Base: vmath.V(100, 40)})
	b.roster = []Spawn{{At: 1000, Kind: KindNoop}}
	return b
}

func countKind(b *Board, k Kind) int {
	n := 0
	for _, e := range b.Entities {
		if e.Kind == k && !e.Dead {
			n++
		}
	}
	return n
}

func TestCoordinateRoundTrip(t *testing.T) {
	b := newTestBoard(nil)

	for _, rel := range []vmath.Vec2{{X: 0, Y: 0}, {X: 3.25, Y: 7.5}, {X: 6.99, Y: 11.01}} {
		got := b.GlobalToRel(b.RelToGlobal(rel))
		if !vmath.NearlyEqual(got.X, rel.X, 1e-9) || !vmath.NearlyEqual(got.Y, rel.Y, 1e-9) {
			t.Errorf("Expected %v, got %v", rel, got)
		}
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := vmath.Point{X: x, Y: y}
			got, ok := b.GlobalToCell(b.CellToGlobal(p))
			if !ok || got != p {
				t.Errorf("Expected cell %v, got %v (ok=%v)", p, got, ok)
			}
		}
	}

	if _, ok := b.GlobalToCell(vmath.V(0, 0)); ok {
		t.Error("Expected point left of the board to be out of bounds")
	}
}

func TestPlacementRejection(t *testing.T) {
	b := newTestBoard(nil)
	repeater, _ := b.catalog.Buildable("repeater")

	rock := vmath.Point{X: 4, Y: 4}
	b.Cell(rock).Terrain = &b.catalog.Terrain[TerrainRock]

	if _, ok := b.Place(repeater, vmath.Point{X: 3, Y: 5}, 0); !ok {
		t.Fatal("Expected placement on open ground to succeed")
	}
	before := len(b.Entities)

	cases := map[string]vmath.Point{
		"path":     {X: 0, Y: 5},
		"occupied": {X: 3, Y: 5},
		"rock":     rock,
		"top row":  {X: 3, Y: 0},
		"last row": {X: 3, Y: parameter.BoardHeight - 1},
		"outside":  {X: 9, Y: 5},
	}
	for name, p := range cases {
		if _, ok := b.Place(repeater, p, 0); ok {
			t.Errorf("%s: expected placement to be rejected", name)
		}
	}
	if len(b.Entities) != before {
		t.Errorf("Expected %d entities, got %d", before, len(b.Entities))
	}
}

func TestRepeaterFiresNorth(t *testing.T) {
	b := newTestBoard(nil)
	repeater, _ := b.catalog.Buildable("repeater")
	turret, ok := b.Place(repeater, vmath.Point{X: 3, Y: 5}, 0)
	if !ok {
		t.Fatal("Expected placement to succeed")
	}
	turret.Turret.Refire = 0

	b.Update(0.01)

	var bullets []*Entity
	for _, e := range b.Entities {
		if e.Kind == KindRepeaterBullet {
			bullets = append(bullets, e)
		}
	}
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	vel := bullets[0].Bullet.Motion.Vel
	if !vmath.NearlyEqual(vel.X, 0, 1e-9) || !vmath.NearlyEqual(vel.Y, -4.0, 1e-9) {
		t.Errorf("Expected velocity (0, -4), got %v", vel)
	}
	if turret.Turret.Refire < 0 {
		t.Errorf("Expected non-negative refire, got %f", turret.Turret.Refire)
	}
}

func TestRotatedRepeaterFiresEast(t *testing.T) {
	b := newTestBoard(nil)
	repeater, _ := b.catalog.Buildable("repeater")
	turret, _ := b.Place(repeater, vmath.Point{X: 3, Y: 5}, 1)
	turret.Turret.Refire = 0

	b.Update(0.01)

	for _, e := range b.Entities {
		if e.Kind != KindRepeaterBullet {
			continue
		}
		vel := e.Bullet.Motion.Vel
		if !vmath.NearlyEqual(vel.X, 4, 1e-9) || !vmath.NearlyEqual(vel.Y, 0, 1e-9) {
			t.Errorf("Expected velocity (4, 0), got %v", vel)
		}
		return
	}
	t.Error("Expected a bullet")
}

func TestEmptyRosterWinsNextUpdate(t *testing.T) {
	h := &recordHost{}
	b := New(Options{Host: h, Seed: 3, NoWaves: true})

	b.Update(0.016)
	if !b.GameOver || b.Lost {
		t.Fatalf("Expected won game over, got game_over=%v lost=%v", b.GameOver, b.Lost)
	}

	b.Update(0.016)
	b.resolve(true)
	if h.won != 1 || h.lost != 0 {
		t.Errorf("Expected exactly one win, got won=%d lost=%d", h.won, h.lost)
	}
}

func TestWinReturnsTurrets(t *testing.T) {
	h := &recordHost{}
	b := newTestBoard(h)
	b.roster = nil
	shock, _ := b.catalog.Buildable("shockwave")
	cell := vmath.Point{X: 4, Y: 6}
	b.Place(shock, cell, 0)

	b.Update(0.016)
	if len(h.returned) != 1 || h.returned[0] != shock {
		t.Fatalf("Expected shockwave returned, got %v", h.returned)
	}

	b.Update(0.016)
	if countKind(b, KindShockwave) != 0 {
		t.Error("Expected returned turret removed from the board")
	}
	if b.Cell(cell).Occupant != nil {
		t.Error("Expected cell occupancy cleared")
	}
	if b.CanPlace(vmath.Point{X: 5, Y: 6}) {
		t.Error("Expected resolved board to reject placement")
	}
}

func TestEnemyPastLastWaypointLosesOnce(t *testing.T) {
	h := &recordHost{}
	b := newTestBoard(h)

	e := newEnemy(KindNoop, b.waypoints[len(b.waypoints)-1], 0)
	e.Enemy.Next = len(b.waypoints)
	b.Add(e)

	b.Update(0.016)
	if !e.Dead {
		t.Error("Expected enemy dead")
	}
	if !b.GameOver || !b.Lost {
		t.Errorf("Expected lost game over, got game_over=%v lost=%v", b.GameOver, b.Lost)
	}

	second := newEnemy(KindNoop, b.waypoints[len(b.waypoints)-1], 0)
	second.Enemy.Next = len(b.waypoints)
	b.Add(second)
	b.Update(0.016)

	if h.lost != 1 {
		t.Errorf("Expected exactly one loss, got %d", h.lost)
	}
	if h.killed != 0 {
		t.Errorf("Expected escaped enemies not counted as kills, got %d", h.killed)
	}
}

func TestEnemyCarriesOvershoot(t *testing.T) {
	b := newTestBoard(nil)
	e := newEnemy(KindNoop, b.waypoints[0], math.Pi)
	b.Add(e)

	// Speed 1 for 1.5s crosses waypoint 1 and continues half a cell
	b.Update(1.5)

	if !vmath.NearlyEqual(e.Pos.Y, 2.0, 1e-9) || !vmath.NearlyEqual(e.Pos.X, 0.5, 1e-9) {
		t.Errorf("Expected (0.5, 2.0), got %v", e.Pos)
	}
	if e.Enemy.Next != 2 {
		t.Errorf("Expected next waypoint 2, got %d", e.Enemy.Next)
	}
}

func TestBulletHitsSingleTarget(t *testing.T) {
	h := &recordHost{}
	b := newTestBoard(h)
	at := vmath.V(3.5, 5.5)

	first := newEnemy(KindNoop, at, 0)
	second := newEnemy(KindNoop, at, 0)
	for _, e := range []*Entity{first, second} {
		e.Enemy.Speed = 0
		b.Add(e)
	}
	b.Add(&Entity{
		Kind:   KindRepeaterBullet,
		Pos:    at,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{Damage: 1, Motion: physics.Kinetic{Pos: at}},
	})

	b.Update(0.001)

	if first.Health != parameter.NoopHealth-1 {
		t.Errorf("Expected first enemy health %d, got %d", parameter.NoopHealth-1, first.Health)
	}
	if second.Health != parameter.NoopHealth {
		t.Errorf("Expected second enemy untouched, got %d", second.Health)
	}
	if countKind(b, KindRepeaterBullet) != 0 {
		t.Error("Expected bullet consumed")
	}
}

func TestGunnerBulletIgnoresEnemies(t *testing.T) {
	b := newTestBoard(nil)
	at := vmath.V(3.5, 5.5)

	enemy := newEnemy(KindNoop, at, 0)
	enemy.Enemy.Speed = 0
	b.Add(enemy)
	b.Add(&Entity{
		Kind:   KindGunnerBullet,
		Pos:    at,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{Damage: 1, Motion: physics.Kinetic{Pos: at}},
	})

	b.Update(0.001)

	if enemy.Health != parameter.NoopHealth {
		t.Errorf("Expected enemy untouched by gunner bullet, got %d", enemy.Health)
	}
	if countKind(b, KindGunnerBullet) != 1 {
		t.Error("Expected gunner bullet still flying")
	}
}

func TestBulletStopsAtRock(t *testing.T) {
	b := newTestBoard(nil)
	b.Cell(vmath.Point{X: 3, Y: 4}).Terrain = &b.catalog.Terrain[TerrainRock]
	at := vmath.V(3.5, 4.6)
	bullet := &Entity{
		Kind:   KindRepeaterBullet,
		Pos:    at,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{Damage: 1, Motion: physics.Kinetic{Pos: at}},
	}
	b.Add(bullet)

	b.Update(0.01)
	if !bullet.Dead {
		t.Error("Expected bullet stopped by rock")
	}
}

func TestShockwaveSparesItself(t *testing.T) {
	h := &recordHost{}
	b := newTestBoard(h)
	shock, _ := b.catalog.Buildable("shockwave")
	turret, _ := b.Place(shock, vmath.Point{X: 3, Y: 5}, 0)

	near := newEnemy(KindNoop, vmath.V(4.5, 5.5), 0)
	far := newEnemy(KindNoop, vmath.V(6.5, 10.5), 0)
	for _, e := range []*Entity{near, far} {
		e.Enemy.Speed = 0
		b.Add(e)
	}

	b.Update(0.01)

	if turret.Health != parameter.TurretHealth {
		t.Errorf("Expected shockwave undamaged, got %d", turret.Health)
	}
	if near.Health != parameter.NoopHealth-parameter.ShockwaveDamage {
		t.Errorf("Expected near enemy damaged, got %d", near.Health)
	}
	if far.Health != parameter.NoopHealth {
		t.Errorf("Expected far enemy untouched, got %d", far.Health)
	}
	if len(b.Effects) != 1 || b.Effects[0].Kind != EffectShock {
		t.Errorf("Expected one shock effect, got %d", len(b.Effects))
	}
}

func TestDeadTurretFreesCell(t *testing.T) {
	var sounds []core.SoundType
	b := New(Options{
		Seed: 9, Path: straightPath(0), NoWaves: true, NoObstacles: true,
		Sound: core.SoundFunc(func(st core.SoundType, _, _ float64) { sounds = append(sounds, st) }),
	})
	b.roster = []Spawn{{At: 1000, Kind: KindNoop}}
	repeater, _ := b.catalog.Buildable("repeater")
	cell := vmath.Point{X: 2, Y: 3}
	turret, _ := b.Place(repeater, cell, 0)

	b.Damage(turret, parameter.TurretHealth)
	b.Update(0.01)

	if b.Cell(cell).Occupant != nil {
		t.Error("Expected occupancy cleared")
	}
	if !slices.Contains(sounds, core.SoundTurretDeath) {
		t.Errorf("Expected turret death cue, got %v", sounds)
	}
}

func TestGeneratedPathValid(t *testing.T) {
	for seed := uint64(1); seed <= 64; seed++ {
		rng := vmath.NewFastRand(seed)
		path := generatePath(rng, parameter.BoardWidth, parameter.BoardHeight, rng.Float64())
		if !validPath(path, parameter.BoardWidth, parameter.BoardHeight) {
			t.Fatalf("seed %d: invalid path %v", seed, path)
		}
		seen := make(map[vmath.Point]bool, len(path))
		for _, p := range path {
			if seen[p] {
				t.Fatalf("seed %d: path revisits %v", seed, p)
			}
			seen[p] = true
		}
	}
}

func TestObstaclesAvoidPath(t *testing.T) {
	for seed := uint64(1); seed <= 16; seed++ {
		b := New(Options{Seed: seed, NoWaves: true})
		for _, p := range b.Path {
			if b.Cell(p).Terrain.Kind != TerrainGround {
				t.Fatalf("seed %d: obstacle on path cell %v", seed, p)
			}
		}
	}
}

func TestWaveRosterSortedDescending(t *testing.T) {
	roster := generateWaves(vmath.NewFastRand(11), 4)
	if len(roster) == 0 {
		t.Fatal("Expected a non-empty roster")
	}
	descending := slices.IsSortedFunc(roster, func(a, b Spawn) int {
		switch {
		case a.At > b.At:
			return -1
		case a.At < b.At:
			return 1
		}
		return 0
	})
	if !descending {
		t.Error("Expected roster sorted by time descending")
	}
	if last := roster[len(roster)-1].At; last != parameter.WaveInitialDelay {
		t.Errorf("Expected first spawn at %f, got %f", parameter.WaveInitialDelay, last)
	}

	for _, s := range generateWaves(vmath.NewFastRand(11), 0) {
		if s.Kind != KindNoop {
			t.Fatalf("Expected only noop enemies at level 0, got %v", s.Kind)
		}
	}
}

func TestHigherLevelSpawnsMore(t *testing.T) {
	low := len(generateWaves(vmath.NewFastRand(5), 0))
	high := len(generateWaves(vmath.NewFastRand(5), 6))
	if high <= low {
		t.Errorf("Expected more enemies at level 6 than level 0, got %d <= %d", high, low)
	}
}

func TestSpawnsPopInOrder(t *testing.T) {
	b := newTestBoard(nil)
	b.roster = []Spawn{{At: 2, Kind: KindGunner}, {At: 1, Kind: KindNoop}}

	b.Update(1.0)
	if countKind(b, KindNoop) != 1 || countKind(b, KindGunner) != 0 {
		t.Errorf("Expected only the first spawn, got noop=%d gunner=%d", countKind(b, KindNoop), countKind(b, KindGunner))
	}
	b.Update(1.0)
	if countKind(b, KindGunner) != 1 {
		t.Error("Expected gunner spawned at t=2")
	}
	if b.Pending() != 0 {
		t.Errorf("Expected empty roster, got %d", b.Pending())
	}
}

func TestExpiredAfterSlideOut(t *testing.T) {
	b := New(Options{Seed: 2, NoWaves: true})
	for i := 0; i < 9; i++ {
		b.Update(parameter.BoardReplaceAfter / 10)
	}
	if b.Expired() {
		t.Error("Expected board not yet expired")
	}
	b.Update(parameter.BoardReplaceAfter / 5)
	if !b.Expired() {
		t.Error("Expected board expired after slide-out")
	}
}

func TestBulletOutOfBoundsGrace(t *testing.T) {
	b := newTestBoard(nil)
	at := vmath.V(float64(b.Width)+0.3, 5.5)
	bullet := &Entity{
		Kind:   KindRepeaterBullet,
		Pos:    at,
		Radius: parameter.BulletRadius,
		Bullet: &BulletState{Damage: 1, Motion: physics.Kinetic{Pos: at}},
	}
	b.Add(bullet)

	b.Update(0.1)
	if bullet.Dead {
		t.Fatal("Expected bullet alive within the grace period")
	}

	b.Update(0.15)
	if !bullet.Dead {
		t.Errorf("Expected bullet dead after %.2fs outside, grace is %.2fs", 0.25, parameter.BulletOutOfBoundsGrace)
	}
}

func TestGunnerTargetsNearestTurret(t *testing.T) {
	b := newTestBoard(nil)
	repeater, _ := b.catalog.Buildable("repeater")
	near, _ := b.Place(repeater, vmath.Point{X: 4, Y: 5}, 0)
	far, _ := b.Place(repeater, vmath.Point{X: 5, Y: 5}, 0)
	near.Turret.Refire = 100
	far.Turret.Refire = 100

	gunner := newEnemy(KindGunner, vmath.V(3.5, 5.5), 0)
	gunner.Enemy.Speed = 0
	gunner.Enemy.Fire = 0.005
	b.Add(gunner)

	b.Update(0.01)

	if gunner.Enemy.Target != near {
		t.Errorf("Expected nearer turret targeted, got %v", gunner.Enemy.Target)
	}
	if n := countKind(b, KindGunnerBullet); n != 1 {
		t.Errorf("Expected 1 gunner bullet, got %d", n)
	}

	// Refire rewinds by a full period, nothing more this frame
	b.Update(0.01)
	if n := countKind(b, KindGunnerBullet); n != 1 {
		t.Errorf("Expected still 1 gunner bullet before the next period, got %d", n)
	}
}

func TestGunnerHoldsFireWithoutTarget(t *testing.T) {
	b := newTestBoard(nil)
	gunner := newEnemy(KindGunner, vmath.V(3.5, 5.5), 0)
	gunner.Enemy.Speed = 0
	gunner.Enemy.Fire = 0.005
	b.Add(gunner)

	b.Update(0.01)

	if gunner.Enemy.Target != nil {
		t.Errorf("Expected no target, got %v", gunner.Enemy.Target)
	}
	if n := countKind(b, KindGunnerBullet); n != 0 {
		t.Errorf("Expected no gunner bullets, got %d", n)
	}
}

// elbowPath runs south down column 3 to row 5, east to column 6, then south to the exit
func elbowPath() []vmath.Point {
	var path []vmath.Point
	for y := 0; y <= 5; y++ {
		path = append(path, vmath.Point{X: 3, Y: y})
	}
	for x := 4; x <= 6; x++ {
		path = append(path, vmath.Point{X: x, Y: 5})
	}
	for y := 6; y < parameter.BoardHeight; y++ {
		path = append(path, vmath.Point{X: 6, Y: y})
	}
	return path
}

func TestEnemyFacingBlendsAtCorner(t *testing.T) {
	path := elbowPath()
	if !validPath(path, parameter.BoardWidth, parameter.BoardHeight) {
		t.Fatal("Expected elbow path to be valid")
	}
	b := New(Options{Seed: 7, Path: path, NoWaves: true, NoObstacles: true, Settled: true})
	b.roster = []Spawn{{At: 1000, Kind: KindNoop}}

	south, east := math.Pi, math.Pi/2
	corner := 5 // index of (3,5)

	e := newEnemy(KindNoop, b.waypoints[4], south)
	e.Enemy.Next = corner
	b.Add(e)

	// Outside the lookahead the segment bearing is used as is
	e.Pos = vmath.V(3.5, 4.8)
	if h := heading(b, e); !vmath.NearlyEqual(h, south, 1e-9) {
		t.Errorf("Expected heading %f before the lookahead, got %f", south, h)
	}

	e.Pos = b.waypoints[4]
	for e.Pos.Y < 5.2 {
		b.Update(0.01)
		if e.Enemy.Next != corner {
			t.Fatalf("Expected enemy still walking to the corner, next=%d", e.Enemy.Next)
		}
	}

	target := heading(b, e)
	if target <= east || target >= south {
		t.Errorf("Expected blended heading in (%f, %f), got %f", east, south, target)
	}
	if f := e.Enemy.Facing.Value; f <= east || f >= south {
		t.Errorf("Expected facing in (%f, %f), got %f", east, south, f)
	}
}
