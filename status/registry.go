package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry is the telemetry facade read by the debug overlay
// Writers cache cell pointers and store into them every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of cells across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Forget drops all cells under prefix, used when a board leaves its slot
func (r *Registry) Forget(prefix string) {
	r.Bools.DeletePrefix(prefix)
	r.Ints.DeletePrefix(prefix)
	r.Floats.DeletePrefix(prefix)
	r.Strings.DeletePrefix(prefix)
}

// Lines formats every cell as "key value", sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, k+" "+strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.2f", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, k+" "+v.Load())
	})
	sort.Strings(lines)
	return lines
}
