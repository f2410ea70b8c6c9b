package render

import (
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Context provides frame state for layers, passed by value
type Context struct {
	// Time is seconds of simulated time, Delta the last step
	Time  float64
	Delta float64
	Frame uint64

	Paused bool

	// Pointer is the last known pointer position in world units
	Pointer vmath.Vec2
	Cursor  core.CursorKind

	// View is the visible area in world units
	View vmath.Vec2

	// Glyphs is true on character-cell surfaces where shapes are coarse
	Glyphs bool
}
