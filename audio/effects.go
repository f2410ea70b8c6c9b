package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-towers/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the wave value at phase in [0,1), noise draws from rng
func (w WaveType) sample(phase float64, rng *vmath.FastRand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rng.Range(-1, 1)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator generates a finite wave with an optional linear glide
type oscillator struct {
	freq     float64
	glide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// noiseSeed keeps procedural cues identical between runs
const noiseSeed = 0x5eed

// newOscillator creates a fixed-pitch oscillator
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(noiseSeed),
	}
}

// newSweep creates an oscillator gliding from one pitch to another over duration
func newSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	o := newOscillator(from, duration, wave, rate)
	if duration > 0 {
		o.glide = (to - from) / duration.Seconds()
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := o.wave.sample(o.phase, o.rng)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.glide / float64(o.rate)
		if o.freq < 1 {
			o.freq = 1
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope creates an attack/sustain/release envelope
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.level(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) level(pos int) float64 {
	if pos < e.attackSamples && e.attackSamples > 0 {
		return float64(pos) / float64(e.attackSamples)
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if pos >= releaseStart && e.releaseSamples > 0 {
		vol := float64(e.totalSamples-pos) / float64(e.releaseSamples)
		if vol < 0 {
			return 0
		}
		return vol
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, log2(0) is -Inf so zero is silenced instead
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// tone is one enveloped oscillator voice
func tone(from, to float64, d time.Duration, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	attack := d / 20
	if attack > 5*time.Millisecond {
		attack = 5 * time.Millisecond
	}
	env := newEnvelope(newSweep(from, to, d, wave, rate), d, attack, d*3/5, rate)
	return newVolume(env, gain)
}
