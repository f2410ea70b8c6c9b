package game

import (
	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// BoardWon implements board.Host
func (g *Game) BoardWon(b *board.Board) {
	g.gainToken()
	if g.Playing() {
		g.Score += parameter.ScorePerBoard
	}
	g.advanceLevel()
}

// BoardLost implements board.Host
func (g *Game) BoardLost(b *board.Board) {
	g.loseToken()
	g.advanceLevel()
}

// ReturnBuildable implements board.Host
func (g *Game) ReturnBuildable(bl *board.Buildable) (vmath.Vec2, bool) {
	return g.Palette.Restock(bl)
}

// EnemyKilled implements board.Host
// Kills on a resolved board, e.g. during the slide-out after a loss, score nothing
func (g *Game) EnemyKilled(b *board.Board, e *board.Entity) {
	g.Kills++
	if g.Playing() && (b == nil || !b.GameOver) {
		g.Score += parameter.ScorePerKill
	}
}
