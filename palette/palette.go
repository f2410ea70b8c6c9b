package palette

import (
	"github.com/lixenwraith/vi-towers/board"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Palette is the row of buildable stacks below the boards
type Palette struct {
	Entries []*Entry

	boards  func() []*board.Board
	sound   core.Sound
	pointer vmath.Vec2
}

// New creates one stack per catalog buildable with counts from stock
// boards is queried every frame for drop targets in slot order
func New(cat *board.Catalog, stock map[string]int, boards func() []*board.Board, sound core.Sound) *Palette {
	if sound == nil {
		sound = core.Silent
	}
	p := &Palette{boards: boards, sound: sound}
	for _, bl := range cat.Buildables {
		p.Entries = append(p.Entries, newEntry(bl, stock[bl.Key]))
	}
	p.Layout(vmath.V(parameter.PaletteEntryGap, parameter.PaletteTop))
	return p
}

// Layout places the stacks left to right starting at origin
func (p *Palette) Layout(origin vmath.Vec2) {
	step := parameter.PaletteEntrySize + parameter.PaletteEntryGap
	for i, e := range p.Entries {
		e.Bounds = vmath.R(origin.X+float64(i)*step, origin.Y, parameter.PaletteEntrySize, parameter.PaletteEntrySize)
	}
}

// Update polls events for every stack and advances animations
func (p *Palette) Update(f *event.Frame) {
	start := p.pointer
	for _, e := range p.Entries {
		e.update(p, f, start)
	}
	p.pointer = f.Pointer
}

// Dragging returns the stack being dragged or nil
func (p *Palette) Dragging() *Entry {
	for _, e := range p.Entries {
		if e.state == StateDragging {
			return e
		}
	}
	return nil
}

// Contains reports whether pt is over any stack
func (p *Palette) Contains(pt vmath.Vec2) bool {
	for _, e := range p.Entries {
		if e.Bounds.Contains(pt) {
			return true
		}
	}
	return false
}

// Entry finds the stack for bl
func (p *Palette) Entry(bl *board.Buildable) (*Entry, bool) {
	for _, e := range p.Entries {
		if e.Buildable == bl {
			return e, true
		}
	}
	return nil, false
}

// Restock returns one bl to its stack and reports where the stack sits
func (p *Palette) Restock(bl *board.Buildable) (vmath.Vec2, bool) {
	e, ok := p.Entry(bl)
	if !ok {
		return vmath.Vec2{}, false
	}
	e.setCount(e.Count + 1)
	return e.Anchor(), true
}

// findTarget returns the first board cell under pt that accepts a placement
func (p *Palette) findTarget(pt vmath.Vec2) *Target {
	if p.boards == nil {
		return nil
	}
	for _, b := range p.boards() {
		if b == nil {
			continue
		}
		cell, ok := b.GlobalToCell(pt)
		if ok && b.CanPlace(cell) {
			return &Target{Board: b, Cell: cell}
		}
	}
	return nil
}
