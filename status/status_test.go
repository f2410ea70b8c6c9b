package status

import (
	"sync"
	"testing"
)

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 4000 {
		t.Errorf("Expected 4000, got %f", got)
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.1); got != 60 {
		t.Errorf("Expected first sample taken as-is, got %f", got)
	}
	if got := f.Smooth(30, 0.5); got != 45 {
		t.Errorf("Expected 45, got %f", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(got))
	}
}

func TestMetricMapStablePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("fps")
	b := m.Get("fps")
	if a != b {
		t.Error("Expected cached pointer")
	}
	if m.Count() != 1 || !m.Has("fps") {
		t.Errorf("Expected one key, got %d", m.Count())
	}
}

func TestRegistryForgetAndLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("board.1.enemies").Store(3)
	r.Ints.Get("board.2.enemies").Store(5)
	r.Floats.Get("game.level").Set(1.25)
	r.Strings.Get("event.owner").Store("palette")
	r.Bools.Get("menu.visible").Store(true)

	r.Forget("board.1.")

	want := []string{
		"board.2.enemies 5",
		"event.owner palette",
		"game.level 1.25",
		"menu.visible true",
	}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: Expected %q, got %q", i, want[i], got[i])
		}
	}
}
