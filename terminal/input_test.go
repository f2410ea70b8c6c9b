package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-towers/event"
	"github.com/lixenwraith/vi-towers/vmath"
)

func newTestPump() (*Pump, *[]event.Event) {
	var got []event.Event
	return NewPump(func(ev event.Event) { got = append(got, ev) }), &got
}

func TestMouseMoveAndMotion(t *testing.T) {
	p, got := newTestPump()

	p.Translate(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	p.Translate(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
	p.Translate(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))

	if len(*got) != 2 {
		t.Fatalf("Expected 2 moves (repeat suppressed), got %d", len(*got))
	}
	first, second := (*got)[0], (*got)[1]
	if first.Position != vmath.V(20, 24) || first.Motion != (vmath.Vec2{}) {
		t.Errorf("Expected first move at (20,24) without motion, got %v %v", first.Position, first.Motion)
	}
	if second.Motion != vmath.V(8, 0) {
		t.Errorf("Expected motion (8,0), got %v", second.Motion)
	}
}

func TestMouseButtonsDiffed(t *testing.T) {
	p, got := newTestPump()

	p.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	p.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	p.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	var kinds []event.Kind
	for _, ev := range *got {
		kinds = append(kinds, ev.Kind)
	}
	want := []event.Kind{event.PointerMove, event.PointerDown, event.PointerUp}
	if len(kinds) != len(want) {
		t.Fatalf("Expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, kinds[i])
		}
	}
	if (*got)[1].Button != event.ButtonLeft {
		t.Errorf("Expected left button, got %d", (*got)[1].Button)
	}
}

func TestWheelTicks(t *testing.T) {
	p, got := newTestPump()
	p.Translate(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	p.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))

	var ticks []float64
	for _, ev := range *got {
		if ev.Kind == event.WheelScroll {
			ticks = append(ticks, ev.Wheel)
		}
	}
	if len(ticks) != 2 || ticks[0] != 1 || ticks[1] != -1 {
		t.Errorf("Expected [1 -1], got %v", ticks)
	}
}

func TestKeysTranslate(t *testing.T) {
	p, got := newTestPump()

	p.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	p.Translate(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone))
	p.Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))

	want := []string{event.KeyEscape, "r", event.KeyF1}
	if len(*got) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(*got))
	}
	for i, k := range want {
		if (*got)[i].Key != k {
			t.Errorf("Expected key %q, got %q", k, (*got)[i].Key)
		}
	}

	if !p.Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to request quit")
	}
}

func TestFocusLossReleasesButtons(t *testing.T) {
	p, got := newTestPump()
	p.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	p.Translate(tcell.NewEventFocus(false))

	last := (*got)[len(*got)-1]
	if last.Kind != event.FocusLost {
		t.Errorf("Expected FocusLost, got %s", last.Kind)
	}

	// Next press is a fresh down, not a continuation
	*got = nil
	p.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if len(*got) != 1 || (*got)[0].Kind != event.PointerDown {
		t.Errorf("Expected a fresh PointerDown, got %v", *got)
	}
}

func TestResizeCallback(t *testing.T) {
	p, _ := newTestPump()
	var cols, rows int
	p.OnResize = func(c, r int) { cols, rows = c, r }
	p.Translate(tcell.NewEventResize(100, 40))
	if cols != 100 || rows != 40 {
		t.Errorf("Expected 100x40, got %dx%d", cols, rows)
	}
}

func TestServiceLifecycle(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	s := NewService()
	if err := s.Init(ColorModeTrueColor, tcell.Screen(scr)); err != nil {
		t.Fatalf("Expected Init to succeed, got %v", err)
	}
	if s.Canvas() == nil {
		t.Fatal("Expected a canvas after Init")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Expected Start to succeed, got %v", err)
	}

	scr.InjectKey(tcell.KeyRune, 'm', tcell.ModNone)
	deadline := time.After(2 * time.Second)
	for got := false; !got; {
		select {
		case ev := <-s.Events():
			// Screens announce their size first
			if k, ok := ev.(*tcell.EventKey); ok {
				if k.Rune() != 'm' {
					t.Errorf("Expected key 'm', got %q", k.Rune())
				}
				got = true
			}
		case <-deadline:
			t.Fatal("Expected injected key to arrive")
		}
	}

	s.Present()
	if err := s.Stop(); err != nil {
		t.Errorf("Expected Stop to succeed, got %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected second Stop to be a no-op, got %v", err)
	}
}
