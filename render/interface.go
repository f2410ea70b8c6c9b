package render

// Layer is implemented by components with visual output
type Layer interface {
	Draw(ctx Context, c Canvas)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(ctx Context, c Canvas)

func (f LayerFunc) Draw(ctx Context, c Canvas) { f(ctx, c) }

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
