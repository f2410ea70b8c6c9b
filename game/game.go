package game

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/palette"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/status"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Options configures a session
type Options struct {
	Catalog *board.Catalog
	Sound   core.Sound
	Music   core.Music
	Status  *status.Registry
	Seed    uint64
	// Stock overrides the initial palette counts
	Stock map[string]int
	// NoWaves creates boards without enemies
	NoWaves bool
}

// Game is one session: board slots, palette, pan, tokens, score and level
type Game struct {
	Palette *palette.Palette

	slots   [parameter.MaxSlots]*board.Board
	catalog *board.Catalog
	sound   core.Sound
	music   core.Music
	rng     *vmath.FastRand
	noWaves bool

	Tokens int
	// tokenAnim holds per-slot timers, positive while a gain animates and negative while a loss does
	tokenAnim [parameter.TokensMax]float64
	Score     float64
	Level     float64
	Kills     int

	pan   panner
	track core.MusicTrack

	status  *status.Registry
	metrics metrics
	visible []*board.Board
}

type metrics struct {
	tokens   *atomic.Int64
	kills    *atomic.Int64
	slots    *atomic.Int64
	resolved *atomic.Int64
	score    *status.AtomicFloat
	level    *status.AtomicFloat
	pan      *status.AtomicFloat
	music    *status.AtomicString
}

// New starts a session with the first board sliding in
func New(opts Options) *Game {
	if opts.Catalog == nil {
		opts.Catalog = board.NewCatalog(nil)
	}
	if opts.Sound == nil {
		opts.Sound = core.Silent
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	stock := opts.Stock
	if stock == nil {
		stock = parameter.PaletteStock
	}

	g := &Game{
		catalog: opts.Catalog,
		sound:   opts.Sound,
		music:   opts.Music,
		rng:     vmath.NewFastRand(opts.Seed),
		noWaves: opts.NoWaves,
		Tokens:  parameter.TokensInitial,
		status:  opts.Status,
	}
	g.Palette = palette.New(opts.Catalog, stock, g.Boards, opts.Sound)

	reg := g.status
	g.metrics = metrics{
		tokens:   reg.Ints.Get("game.tokens"),
		kills:    reg.Ints.Get("game.kills"),
		slots:    reg.Ints.Get("game.slots"),
		resolved: reg.Ints.Get("game.resolved"),
		score:    reg.Floats.Get("game.score"),
		level:    reg.Floats.Get("game.level"),
		pan:      reg.Floats.Get("game.pan"),
		music:    reg.Strings.Get("audio.track"),
	}

	g.fillSlots()
	g.updateMusic()
	return g
}

// Update advances one frame: palette first, then pan, then every board
func (g *Game) Update(f *event.Frame) {
	g.Palette.Update(f)
	g.pan.update(g, f)

	g.fillSlots()
	for i, b := range g.slots[:g.ActiveSlots()] {
		b.SetBase(g.slotBase(i))
		b.Update(f.Delta)
		if b.Expired() {
			g.status.Forget(boardPrefix(b))
			g.slots[i] = g.newBoard(i)
		}
	}

	for i, t := range g.tokenAnim {
		switch {
		case t > 0:
			g.tokenAnim[i] = max(t-f.Delta, 0)
		case t < 0:
			g.tokenAnim[i] = min(t+f.Delta, 0)
		}
	}

	if g.Tokens > 0 {
		g.Score += parameter.ScorePerSecond * f.Delta
	}

	g.updateMusic()
	g.publish()
}

// ActiveSlots is the number of concurrent boards for the current level
func (g *Game) ActiveSlots() int {
	n := 0
	for _, threshold := range parameter.LevelSlotThresholds {
		if g.Level >= threshold {
			n++
		}
	}
	return max(n, 1)
}

// Boards returns the live boards in slot order, valid until the next call
func (g *Game) Boards() []*board.Board {
	g.visible = g.visible[:0]
	for _, b := range g.slots[:g.ActiveSlots()] {
		if b != nil {
			g.visible = append(g.visible, b)
		}
	}
	return g.visible
}

// Slot returns the board in slot i or nil
func (g *Game) Slot(i int) *board.Board {
	if i < 0 || i >= len(g.slots) {
		return nil
	}
	return g.slots[i]
}

// Playing reports whether score still accrues
func (g *Game) Playing() bool {
	return g.Tokens > 0
}

// TokenAnim returns the animation timer of token slot i
func (g *Game) TokenAnim(i int) float64 {
	if i < 0 || i >= len(g.tokenAnim) {
		return 0
	}
	return g.tokenAnim[i]
}

func (g *Game) fillSlots() {
	for i := range g.slots[:g.ActiveSlots()] {
		if g.slots[i] == nil {
			g.slots[i] = g.newBoard(i)
		}
	}
}

func (g *Game) newBoard(slot int) *board.Board {
	return board.New(board.Options{
		Catalog: g.catalog,
		Host:    g,
		Sound:   g.sound,
		Seed:    g.rng.Next(),
		Level:   g.Level,
		Base:    g.slotBase(slot),
		NoWaves: g.noWaves,
	})
}

// slotBase is the resting world position of slot i under the current pan
func (g *Game) slotBase(i int) vmath.Vec2 {
	return vmath.V(parameter.BoardLeft+float64(i)*parameter.BoardSpacing-g.pan.offset.Value, parameter.BoardTop)
}

// gainToken awards one token up to the cap
func (g *Game) gainToken() {
	if g.Tokens >= parameter.TokensMax {
		return
	}
	g.tokenAnim[g.Tokens] = parameter.TokenAnimDuration
	g.Tokens++
	g.sound.Play(core.SoundTokenGained, 0.8, 0)
}

// loseToken removes one token down to zero
func (g *Game) loseToken() {
	if g.Tokens <= 0 {
		return
	}
	g.Tokens--
	g.tokenAnim[g.Tokens] = -parameter.TokenAnimDuration
	g.sound.Play(core.SoundTokenLost, 0.8, 0)
	if g.Tokens == 0 {
		log.Printf("[game] out of tokens, score frozen at %.0f", g.Score)
	}
}

// advanceLevel steps the level by one resolved board's share of the active slots
func (g *Game) advanceLevel() {
	before := g.ActiveSlots()
	g.Level += 1 / float64(before)
	g.metrics.resolved.Add(1)
	if after := g.ActiveSlots(); after != before {
		log.Printf("[game] level %.2f opens slot %d", g.Level, after)
	}
}

func (g *Game) updateMusic() {
	track := core.MusicCalm
	switch {
	case g.Level >= parameter.MusicIntenseLevel:
		track = core.MusicIntense
	case g.Level >= parameter.MusicTenseLevel:
		track = core.MusicTense
	}
	if track == g.track {
		return
	}
	g.track = track
	g.metrics.music.Store(track.String())
	if g.music != nil {
		g.music.PlayMusic(track)
	}
}

// Track returns the music track matching the current level
func (g *Game) Track() core.MusicTrack {
	return g.track
}

func (g *Game) publish() {
	m := g.metrics
	m.tokens.Store(int64(g.Tokens))
	m.kills.Store(int64(g.Kills))
	m.slots.Store(int64(g.ActiveSlots()))
	m.score.Set(g.Score)
	m.level.Set(g.Level)
	m.pan.Set(g.pan.offset.Value)

	for _, b := range g.Boards() {
		prefix := boardPrefix(b)
		g.status.Ints.Get(prefix + "entities").Store(int64(len(b.Entities)))
		g.status.Ints.Get(prefix + "enemies").Store(int64(b.Enemies()))
		g.status.Ints.Get(prefix + "pending").Store(int64(b.Pending()))
	}
}

func boardPrefix(b *board.Board) string {
	return "board." + b.ID.String()[:8] + "."
}
