package event

import (
	"testing"

	"github.com/lixenwraith/vi-towers/vmath"
)

type listener struct{ name string }

func countingHandler(n *int) Handler {
	return func(Event) Result {
		*n++
		return Keep
	}
}

func TestPollKeepConsumeReplace(t *testing.T) {
	p := NewPipeline()
	p.Begin([]Event{Key("a"), Key("b"), Key("c")})

	first := &listener{"first"}
	p.Poll(first, func(ev Event) Result {
		switch ev.Key {
		case "a":
			return Consume()
		case "b":
			return Replace(Key("x"), Key("y"))
		}
		return Keep
	})

	var seen []string
	p.Poll(&listener{"second"}, func(ev Event) Result {
		seen = append(seen, ev.Key)
		return Keep
	})

	want := []string{"x", "y", "c"}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Index %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestReplaceWithNothingConsumes(t *testing.T) {
	p := NewPipeline()
	p.Begin([]Event{Wheel(1)})
	p.Poll(&listener{}, func(Event) Result { return Replace() })
	if n := len(p.Pending()); n != 0 {
		t.Errorf("Expected empty queue, got %d events", n)
	}
}

func TestCaptureExclusivity(t *testing.T) {
	p := NewPipeline()
	a, b := &listener{"a"}, &listener{"b"}

	p.Begin([]Event{Down(ButtonLeft), Move(vmath.V(1, 2), vmath.V(1, 0))})
	p.Capture(a)

	calls := 0
	p.Poll(b, countingHandler(&calls))
	if calls != 0 {
		t.Errorf("Expected non-owner handler not to run, ran %d times", calls)
	}

	p.Poll(a, countingHandler(&calls))
	if calls != 2 {
		t.Errorf("Expected owner to see 2 events, got %d", calls)
	}

	// Exclusivity persists across frames while the owner keeps polling
	if stale := p.EndFrame(); stale {
		t.Error("Expected capture to survive, owner polled")
	}
	p.Begin([]Event{Key("r")})
	calls = 0
	p.Poll(b, countingHandler(&calls))
	p.Poll(a, func(Event) Result { return Keep })
	if calls != 0 {
		t.Errorf("Expected non-owner to stay blocked, ran %d times", calls)
	}

	p.ReleaseCapture()
	p.Poll(b, countingHandler(&calls))
	if calls != 1 {
		t.Errorf("Expected 1 call after release, got %d", calls)
	}
}

func TestStaleCaptureCollection(t *testing.T) {
	p := NewPipeline()
	owner, other := &listener{"owner"}, &listener{"other"}

	p.Begin(nil)
	p.Capture(owner)
	p.EndFrame()

	// Owner skips polling this frame
	p.Begin([]Event{Key("q")})
	calls := 0
	p.Poll(other, countingHandler(&calls))
	if calls != 0 {
		t.Errorf("Expected no delivery while captured, got %d", calls)
	}
	if !p.EndFrame() {
		t.Error("Expected stale capture to be released")
	}
	if p.Captured() {
		t.Fatal("Expected no owner after stale collection")
	}

	p.Begin([]Event{Key("q")})
	p.Poll(other, countingHandler(&calls))
	if calls != 1 {
		t.Errorf("Expected delivery after collection, got %d", calls)
	}
}

func TestCaptureOverwrite(t *testing.T) {
	p := NewPipeline()
	a, b := &listener{"a"}, &listener{"b"}
	p.Capture(a)
	p.Capture(b)
	if p.IsCaptured(a) {
		t.Error("Expected previous owner displaced")
	}
	if !p.IsCaptured(b) {
		t.Error("Expected new owner to hold capture")
	}
}

func TestEndFrameClearsQueue(t *testing.T) {
	p := NewPipeline()
	p.Begin([]Event{Key("a"), Key("b")})
	p.EndFrame()
	if len(p.Pending()) != 0 {
		t.Errorf("Expected empty queue, got %d", len(p.Pending()))
	}
}

func TestPushDuringPollReachesLaterListeners(t *testing.T) {
	p := NewPipeline()
	p.Begin([]Event{Key("a")})
	p.Poll(&listener{}, func(ev Event) Result {
		p.Push(Key("pushed"))
		return Keep
	})
	var keys []string
	p.Poll(&listener{}, func(ev Event) Result {
		keys = append(keys, ev.Key)
		return Keep
	})
	if len(keys) != 2 || keys[1] != "pushed" {
		t.Errorf("Expected [a pushed], got %v", keys)
	}
}

func TestFrameTracksPointerAndClampsDelta(t *testing.T) {
	f := NewFrame()
	f.Begin(1.0, []Event{Move(vmath.V(10, 20), vmath.V(0, 0))})
	if f.Delta > 1.0/30.0+1e-12 {
		t.Errorf("Expected clamped delta, got %v", f.Delta)
	}
	if f.Pointer != vmath.V(10, 20) || !f.PointerInside {
		t.Errorf("Expected pointer (10,20) inside, got %+v inside=%v", f.Pointer, f.PointerInside)
	}
	f.End()

	f.Begin(0.01, []Event{Lost()})
	if f.PointerInside {
		t.Error("Expected pointer outside after FocusLost")
	}
}

func TestInboxDrainFIFO(t *testing.T) {
	q := NewInbox()
	q.Push(Key("a"))
	q.Push(Key("b"))
	if q.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Len())
	}
	got := q.Drain(nil)
	if len(got) != 2 || got[0].Key != "a" || got[1].Key != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
	if more := q.Drain(nil); len(more) != 0 {
		t.Errorf("Expected empty drain, got %v", more)
	}
}

func TestInboxOverflowKeepsNewest(t *testing.T) {
	q := NewInbox()
	total := cap(q.events) + 10
	for i := 0; i < total; i++ {
		q.Push(Wheel(float64(i)))
	}
	got := q.Drain(nil)
	if len(got) != cap(q.events) {
		t.Fatalf("Expected %d events, got %d", cap(q.events), len(got))
	}
	if got[len(got)-1].Wheel != float64(total-1) {
		t.Errorf("Expected newest event last, got %v", got[len(got)-1])
	}
}
