package app

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/game"
	"github.com/lixenwraith/vi-towers/menu"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/render"
	"github.com/lixenwraith/vi-towers/status"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Options wires the frontends' capabilities into a session
type Options struct {
	Catalog *board.Catalog
	Sound   core.Sound
	Music   core.Music
	// Audio backs the menu's sound controls, nil hides them
	Audio  menu.Controls
	Status *status.Registry
	Seed   uint64
	// Debug starts with the telemetry overlay shown
	Debug bool
	// Glyphs marks character-cell surfaces
	Glyphs bool
	Stock  map[string]int
}

// App is one running session: input inbox, frame context, menu, game and draw layers
// Push may be called from any goroutine, everything else from the frame loop
type App struct {
	Inbox  *event.Inbox
	Frame  *event.Frame
	Menu   *menu.Menu
	Game   *game.Game
	Status *status.Registry

	orchestrator *render.Orchestrator
	overlay      *overlay
	music        core.Music
	ctx          render.Context
	events       []event.Event
	paused       bool

	fps    *status.AtomicFloat
	owner  *status.AtomicString
	stale  *atomic.Int64
	queued *atomic.Int64
}

// New composes a session with the menu shown
func New(opts Options) *App {
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Catalog == nil {
		opts.Catalog = board.NewCatalog(nil)
	}

	a := &App{
		Inbox:  event.NewInbox(),
		Frame:  event.NewFrame(),
		Status: opts.Status,
		music:  opts.Music,
		events: make([]event.Event, 0, 64),
	}
	a.Menu = menu.New(opts.Audio, opts.Sound)
	a.Game = game.New(game.Options{
		Catalog: opts.Catalog,
		Sound:   opts.Sound,
		Music:   opts.Music,
		Status:  opts.Status,
		Seed:    opts.Seed,
		Stock:   opts.Stock,
	})
	a.overlay = &overlay{status: opts.Status, visible: opts.Debug}

	a.orchestrator = render.NewOrchestrator(render.RgbBackground)
	a.orchestrator.Register(render.LayerFunc(drawBackdrop), render.PriorityBackground)
	a.orchestrator.Register(render.LayerFunc(a.Game.DrawBoards), render.PriorityBoards)
	a.orchestrator.Register(render.LayerFunc(a.Game.Palette.Draw), render.PriorityPalette)
	a.orchestrator.Register(render.LayerFunc(a.Game.DrawHUD), render.PriorityHUD)
	a.orchestrator.Register(a.Menu, render.PriorityMenu)
	a.orchestrator.Register(a.overlay, render.PriorityDebug)

	a.fps = opts.Status.Floats.Get("app.fps")
	a.owner = opts.Status.Strings.Get("event.owner")
	a.stale = opts.Status.Ints.Get("event.stale")
	a.queued = opts.Status.Ints.Get("event.queued")

	a.ctx = render.Context{View: vmath.V(parameter.ViewWidth, parameter.ViewHeight), Glyphs: opts.Glyphs}
	a.paused = a.Menu.Visible()
	a.syncMusic()
	return a
}

// Push queues a raw input event for the next frame
func (a *App) Push(ev event.Event) {
	a.Inbox.Push(ev)
}

// Step runs one frame and reports whether the player asked to quit
func (a *App) Step(delta float64) bool {
	a.events = a.Inbox.Drain(a.events[:0])
	a.queued.Store(int64(len(a.events)))
	a.Frame.Begin(delta, a.events)

	for _, ev := range a.events {
		if ev.Kind == event.KeyDown && ev.Key == event.KeyF1 {
			a.overlay.visible = !a.overlay.visible
		}
	}

	a.Menu.Update(a.Frame)
	if !a.Menu.Visible() {
		a.Game.Update(a.Frame)
	}
	if a.Menu.Visible() != a.paused {
		a.paused = a.Menu.Visible()
		a.syncMusic()
	}

	a.owner.Store(ownerName(a.Frame.Events.Owner()))
	if a.Frame.End() {
		a.stale.Add(1)
		log.Printf("[app] stale capture released at frame %d", a.Frame.Number)
	}
	if delta > 0 {
		a.fps.Smooth(1/delta, 0.05)
	}

	a.ctx.Time = a.Frame.Time
	a.ctx.Delta = a.Frame.Delta
	a.ctx.Frame = a.Frame.Number
	a.ctx.Paused = a.paused
	a.ctx.Pointer = a.Frame.Pointer
	a.ctx.Cursor = a.Frame.Cursor

	return a.Menu.QuitRequested()
}

// Draw renders the last stepped frame onto c
func (a *App) Draw(c render.Canvas) {
	a.ctx.View = c.Size()
	a.orchestrator.RenderFrame(a.ctx, c)
}

// Cursor is the shape hint from the last frame
func (a *App) Cursor() core.CursorKind {
	return a.ctx.Cursor
}

// Paused reports whether the menu holds the session
func (a *App) Paused() bool {
	return a.paused
}

func (a *App) syncMusic() {
	if a.music == nil {
		return
	}
	if a.paused {
		a.music.PlayMusic(core.MusicMenu)
		return
	}
	a.music.PlayMusic(a.Game.Track())
}

func ownerName(owner any) string {
	if owner == nil {
		return "-"
	}
	return fmt.Sprintf("%T", owner)
}

func drawBackdrop(ctx render.Context, c render.Canvas) {
	band := vmath.R(0, parameter.BoardTop-4, ctx.View.X, parameter.CellSize*parameter.BoardHeight+8)
	c.FillRect(band, render.RgbGround.Fade(0.35))
}
