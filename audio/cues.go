package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-towers/core"
)

// synthesize builds the procedural rendition of a cue, nil for unknown types
func synthesize(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch st {
	case core.SoundPlace:
		return beep.Seq(
			tone(330, 330, 40*ms, WaveSquare, 0.4, rate),
			tone(495, 495, 60*ms, WaveSquare, 0.4, rate),
		)
	case core.SoundCancel:
		return tone(300, 150, 120*ms, WaveSaw, 0.4, rate)
	case core.SoundRotate:
		return tone(900, 1100, 25*ms, WaveSine, 0.5, rate)
	case core.SoundShoot:
		return beep.Mix(
			tone(1200, 600, 50*ms, WaveSquare, 0.3, rate),
			tone(1, 1, 20*ms, WaveNoise, 0.2, rate),
		)
	case core.SoundShock:
		return beep.Mix(
			tone(90, 40, 300*ms, WaveSine, 0.8, rate),
			tone(1, 1, 200*ms, WaveNoise, 0.3, rate),
		)
	case core.SoundHit:
		return tone(1, 1, 40*ms, WaveNoise, 0.5, rate)
	case core.SoundEnemyDeath:
		return beep.Mix(
			tone(400, 80, 180*ms, WaveSaw, 0.4, rate),
			tone(1, 1, 150*ms, WaveNoise, 0.3, rate),
		)
	case core.SoundTurretDeath:
		return beep.Mix(
			tone(200, 50, 400*ms, WaveSquare, 0.4, rate),
			tone(1, 1, 350*ms, WaveNoise, 0.4, rate),
		)
	case core.SoundBoardWon:
		return arpeggio([]int{72, 76, 79, 84}, 90*ms, WaveSquare, 0.35, rate)
	case core.SoundBoardLost:
		return arpeggio([]int{67, 64, 60, 55}, 130*ms, WaveSaw, 0.35, rate)
	case core.SoundTokenGained:
		return beep.Seq(
			tone(noteFreq(81), noteFreq(81), 60*ms, WaveSine, 0.5, rate),
			tone(noteFreq(88), noteFreq(88), 120*ms, WaveSine, 0.5, rate),
		)
	case core.SoundTokenLost:
		return beep.Seq(
			tone(noteFreq(69), noteFreq(69), 80*ms, WaveSine, 0.5, rate),
			tone(noteFreq(64), noteFreq(60), 160*ms, WaveSine, 0.5, rate),
		)
	case core.SoundMenu:
		return tone(660, 660, 40*ms, WaveSine, 0.4, rate)
	}
	return nil
}

// arpeggio plays MIDI notes back to back
func arpeggio(notes []int, each time.Duration, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		f := noteFreq(n)
		parts[i] = tone(f, f, each, wave, gain, rate)
	}
	return beep.Seq(parts...)
}
