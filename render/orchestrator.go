package render

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator draws registered layers back to front onto a canvas
type Orchestrator struct {
	layers     []layerEntry
	regCount   int
	background Color
}

// NewOrchestrator creates an orchestrator that clears to background each frame
func NewOrchestrator(background Color) *Orchestrator {
	return &Orchestrator{
		layers:     make([]layerEntry, 0, 8),
		background: background,
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the registered layer count
func (o *Orchestrator) Len() int {
	return len(o.layers)
}

// RenderFrame clears the canvas and draws every visible layer
// Each layer runs inside its own Save/Restore so transform leaks stay local
func (o *Orchestrator) RenderFrame(ctx Context, c Canvas) {
	c.Clear(o.background)

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		c.Save()
		entry.layer.Draw(ctx, c)
		c.Restore()
	}
}
