package board

import "github.com/lixenwraith/vi-towers/vmath"

// Host receives board outcomes, implemented by the game
// Calls arrive synchronously from within Board.Update
type Host interface {
	// BoardWon fires once when the roster is exhausted and no enemies remain
	BoardWon(b *Board)
	// BoardLost fires once when an enemy passes the last waypoint
	BoardLost(b *Board)
	// ReturnBuildable restocks bl and returns the world position to animate toward
	ReturnBuildable(bl *Buildable) (vmath.Vec2, bool)
	// EnemyKilled fires for enemies removed with zero health
	EnemyKilled(b *Board, e *Entity)
}

type nopHost struct{}

func (nopHost) BoardWon(*Board)                               {}
func (nopHost) BoardLost(*Board)                              {}
func (nopHost) ReturnBuildable(*Buildable) (vmath.Vec2, bool) { return vmath.Vec2{}, false }
func (nopHost) EnemyKilled(*Board, *Entity)                   {}
