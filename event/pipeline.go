package event

import "log"

// Result tells the pipeline what to do with a polled event
// The zero value keeps the event for the next listener
type Result struct {
	replace bool
	events  []Event
}

// Keep retains the event unchanged
var Keep = Result{}

// Consume removes the event from the queue
func Consume() Result {
	return Result{replace: true}
}

// Replace substitutes the event with evs in order, Replace() with no events consumes
func Replace(evs ...Event) Result {
	return Result{replace: true, events: evs}
}

// Handler inspects one event and returns its fate
type Handler func(Event) Result

// Pipeline is the frame-scoped event queue with single-owner capture
// Listeners poll in front-to-back order; each sees what earlier listeners left
// Identities are compared with ==, use pointers
type Pipeline struct {
	pending []Event
	scratch []Event

	owner       any
	ownerPolled bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		pending: make([]Event, 0, 32),
		scratch: make([]Event, 0, 32),
	}
}

// Begin loads the frame's events, anything left from a previous frame is dropped
func (p *Pipeline) Begin(evs []Event) {
	p.pending = append(p.pending[:0], evs...)
	p.ownerPolled = false
}

// Push appends a synthetic event for listeners that have not polled yet
func (p *Pipeline) Push(ev Event) {
	p.pending = append(p.pending, ev)
}

// Pending returns the current queue, valid until the next Poll
func (p *Pipeline) Pending() []Event {
	return p.pending
}

// Poll runs handler over every pending event unless another listener holds capture
func (p *Pipeline) Poll(id any, handler Handler) {
	if p.owner != nil {
		if p.owner != id {
			return
		}
		p.ownerPolled = true
	}

	p.scratch = p.scratch[:0]
	n := len(p.pending)
	for i := 0; i < n; i++ {
		ev := p.pending[i]
		res := handler(ev)
		if !res.replace {
			p.scratch = append(p.scratch, ev)
			continue
		}
		p.scratch = append(p.scratch, res.events...)
	}
	// Events pushed by the handler go to later listeners untouched
	p.scratch = append(p.scratch, p.pending[n:]...)
	p.pending, p.scratch = p.scratch, p.pending
}

// Capture gives id exclusive access to polled events
// An existing owner is displaced, the new owner counts as polled for this frame
func (p *Pipeline) Capture(id any) {
	if id == nil {
		return
	}
	if p.owner != nil && p.owner != id {
		log.Printf("[event] capture displaced: %T -> %T", p.owner, id)
	}
	p.owner = id
	p.ownerPolled = true
}

// ReleaseCapture clears ownership unconditionally
func (p *Pipeline) ReleaseCapture() {
	p.owner = nil
	p.ownerPolled = false
}

// IsCaptured reports whether id currently owns capture
func (p *Pipeline) IsCaptured(id any) bool {
	return p.owner != nil && p.owner == id
}

// Captured reports whether any listener owns capture
func (p *Pipeline) Captured() bool {
	return p.owner != nil
}

// Owner returns the capture owner or nil
func (p *Pipeline) Owner() any {
	return p.owner
}

// EndFrame drops a capture whose owner did not poll and clears the queue
// Returns true when a stale capture was released
func (p *Pipeline) EndFrame() bool {
	stale := p.owner != nil && !p.ownerPolled
	if stale {
		p.owner = nil
	}
	p.ownerPolled = false
	p.pending = p.pending[:0]
	return stale
}
