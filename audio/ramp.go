package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// ramp scales a stream by a gain that slews linearly toward its target
type ramp struct {
	Streamer beep.Streamer

	current float64
	target  float64
	step    float64 // largest change per sample

	// endAtZero finishes the stream once the gain settles at zero
	endAtZero bool
}

// newRamp starts at gain and needs slew to cover a full-scale change
func newRamp(s beep.Streamer, gain float64, slew time.Duration, rate beep.SampleRate) *ramp {
	n := rate.N(slew)
	if n < 1 {
		n = 1
	}
	return &ramp{Streamer: s, current: gain, target: gain, step: 1 / float64(n)}
}

func (r *ramp) set(gain float64) { r.target = gain }

func (r *ramp) settled() bool { return r.current == r.target }

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	if r.endAtZero && r.current == 0 && r.target == 0 {
		return 0, false
	}
	n, ok = r.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d := r.target - r.current; d > r.step {
			r.current += r.step
		} else if d < -r.step {
			r.current -= r.step
		} else {
			r.current = r.target
		}
		samples[i][0] *= r.current
		samples[i][1] *= r.current
	}
	return n, ok
}

func (r *ramp) Err() error { return r.Streamer.Err() }
