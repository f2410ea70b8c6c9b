package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/vi-towers/app"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
)

// Game adapts an app session to ebiten's Update/Draw/Layout loop
type Game struct {
	app    *app.App
	canvas *Canvas
	input  *Input
	cursor core.CursorKind
}

// NewGame wraps a session
func NewGame(a *app.App) *Game {
	return &Game{
		app:    a,
		canvas: NewCanvas(),
		input:  NewInput(a.Push),
		cursor: core.CursorDefault,
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	g.input.Poll()

	delta := 1.0 / float64(ebiten.TPS())
	if g.app.Step(delta) {
		return ebiten.Termination
	}

	if c := g.app.Cursor(); c != g.cursor {
		g.cursor = c
		ebiten.SetCursorShape(cursorShape(c))
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.app.Draw(g.canvas)
}

// Layout implements ebiten.Game, the logical screen is the world view
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.ViewWidth, parameter.ViewHeight
}

// Run opens the window and blocks until the session quits or the window closes
func Run(a *app.App, scale int) error {
	if scale < 1 {
		scale = parameter.DesktopScale
	}
	ebiten.SetWindowSize(parameter.ViewWidth*scale, parameter.ViewHeight*scale)
	ebiten.SetWindowTitle(parameter.DesktopTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(a))
}
