package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/vmath"
)

// noteFreq returns the equal-tempered frequency of a MIDI note, A4 (69) = 440Hz
func noteFreq(midi int) float64 {
	if midi <= 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// groove describes a looping 16-step pattern
type groove struct {
	bpm  float64
	bass [16]int // MIDI notes, 0 rests
	wave WaveType
	kick uint16 // step bitmasks, bit i fires on step i
	hat  uint16
	pad  []int // held chord
}

var grooves = [core.MusicTrackCount]groove{
	core.MusicMenu: {
		bpm: 60,
		pad: []int{57, 60, 64},
	},
	core.MusicCalm: {
		bpm:  80,
		bass: [16]int{45, 0, 0, 0, 0, 0, 52, 0, 45, 0, 0, 0, 48, 0, 50, 0},
		wave: WaveSine,
		kick: 0x0101,
		pad:  []int{57, 64},
	},
	core.MusicTense: {
		bpm:  100,
		bass: [16]int{45, 0, 45, 0, 45, 0, 48, 0, 45, 0, 45, 0, 43, 0, 44, 0},
		wave: WaveSaw,
		kick: 0x1111,
		hat:  0x4444,
	},
	core.MusicIntense: {
		bpm:  132,
		bass: [16]int{45, 45, 57, 45, 45, 57, 45, 48, 45, 45, 57, 45, 43, 43, 44, 46},
		wave: WaveSquare,
		kick: 0x1111,
		hat:  0x5555,
	},
}

// sequencer renders a groove forever
type sequencer struct {
	g    groove
	rate beep.SampleRate
	step int // samples per step
	pos  int
	rng  *vmath.FastRand

	bassPhase float64
	kickPhase float64
	padPhase  []float64
}

// newSequencer returns nil for tracks without a groove
func newSequencer(track core.MusicTrack, rate beep.SampleRate) *sequencer {
	if track <= core.MusicNone || track >= core.MusicTrackCount {
		return nil
	}
	g := grooves[track]
	step := rate.N(time.Duration(float64(time.Minute) / (g.bpm * 4)))
	if step < 1 {
		step = 1
	}
	return &sequencer{
		g:        g,
		rate:     rate,
		step:     step,
		rng:      vmath.NewFastRand(noiseSeed + uint64(track)),
		padPhase: make([]float64, len(g.pad)),
	}
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(s.rate)
	for i := range samples {
		idx := (s.pos / s.step) % 16
		within := s.pos % s.step
		t := float64(within) / float64(s.step)
		if within == 0 {
			s.kickPhase = 0
		}

		var val float64
		if note := s.g.bass[idx]; note > 0 {
			val += 0.22 * s.g.wave.sample(s.bassPhase, s.rng) * (1 - 0.6*t)
			s.bassPhase += noteFreq(note) / sr
			s.bassPhase -= math.Floor(s.bassPhase)
		}
		if s.g.kick>>idx&1 == 1 {
			val += 0.45 * math.Sin(2*math.Pi*s.kickPhase) * math.Exp(-8*t)
			s.kickPhase += (55 + 110*math.Exp(-20*t)) / sr
		}
		if s.g.hat>>idx&1 == 1 {
			val += 0.08 * s.rng.Range(-1, 1) * math.Exp(-30*t)
		}
		for k, note := range s.g.pad {
			val += 0.07 * math.Sin(2*math.Pi*s.padPhase[k])
			s.padPhase[k] += noteFreq(note) / sr
			s.padPhase[k] -= math.Floor(s.padPhase[k])
		}

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *sequencer) Err() error { return nil }
