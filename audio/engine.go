package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-towers/asset"
	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/lixenwraith/vi-towers/vmath"
)

// Engine mixes one-shot cues and a looped music track into the speaker
// Every method is safe before Start and after Stop, output is silent then
type Engine struct {
	cfg    Config
	format beep.Format
	cache  *cueCache

	cues   [core.SoundTypeCount]*Sample
	tracks [core.MusicTrackCount]*Sample

	mu         sync.Mutex
	effects    *beep.Mixer
	music      *beep.Mixer
	effectsBus *ramp
	musicBus   *ramp
	master     beep.Streamer
	track      core.MusicTrack
	voice      *ramp // current music voice, nil when silent

	musicVolume   float64
	effectsVolume float64

	enabled  atomic.Bool
	running  atomic.Bool
	attached bool // speaker goroutine reads the mixers
}

// NewEngine builds the mixer graph without touching the output device
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if cfg.BufferDuration <= 0 {
		cfg.BufferDuration = parameter.AudioBufferDuration
	}
	rate := beep.SampleRate(cfg.SampleRate)

	e := &Engine{
		cfg:           cfg,
		format:        beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		cache:         newCueCache(rate),
		effects:       &beep.Mixer{},
		music:         &beep.Mixer{},
		musicVolume:   clamp01(cfg.MusicVolume),
		effectsVolume: clamp01(cfg.EffectsVolume),
	}
	e.effectsBus = newRamp(e.effects, e.effectsVolume*e.effectsVolume, parameter.VolumeRamp, rate)
	e.musicBus = newRamp(e.music, e.musicVolume*e.musicVolume, parameter.VolumeRamp, rate)
	e.master = beep.Mix(e.musicBus, e.effectsBus)
	e.enabled.Store(cfg.Enabled)
	return e
}

// Register adds WAV overrides for every cue and track to lib
// Unresolved handles fall back to the procedural renditions
func (e *Engine) Register(lib *asset.Library) {
	if lib == nil {
		return
	}
	rate := e.format.SampleRate
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		e.cues[st] = NewSample("sound/"+st.String()+".wav", rate)
		lib.Register(e.cues[st])
	}
	for tr := core.MusicMenu; tr < core.MusicTrackCount; tr++ {
		e.tracks[tr] = NewSample("music/"+tr.String()+".wav", rate)
		lib.Register(e.tracks[tr])
	}
}

// Start opens the speaker and resumes the current track
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running.Load() {
		return nil
	}
	rate := e.format.SampleRate
	if err := speaker.Init(rate, rate.N(e.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	e.cache.preload()
	speaker.Play(e.master)
	e.attached = true
	e.running.Store(true)
	e.startVoice()
	log.Printf("[audio] started at %d Hz", e.cfg.SampleRate)
	return nil
}

// Stop silences output and detaches from the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running.Swap(false) {
		return
	}
	if e.attached {
		speaker.Clear()
		e.attached = false
	}
	e.effects.Clear()
	e.music.Clear()
	e.voice = nil
}

// Running reports whether output is live
func (e *Engine) Running() bool { return e.running.Load() }

// Play implements core.Sound
func (e *Engine) Play(st core.SoundType, gain, pan float64) {
	if !e.playable() || st < 0 || st >= core.SoundTypeCount {
		return
	}
	src := e.cueStreamer(st)
	if src == nil {
		return
	}
	var s beep.Streamer = &effects.Pan{Streamer: src, Pan: vmath.Clamp(pan, -1, 1)}
	s = newVolume(s, clamp01(gain)*e.cfg.CueGain(st))

	e.mu.Lock()
	defer e.mu.Unlock()
	e.locked(func() {
		if e.effects.Len() < parameter.MaxEffectVoices {
			e.effects.Add(s)
		}
	})
}

// PlayMusic implements core.Music
func (e *Engine) PlayMusic(track core.MusicTrack) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if track == e.track && e.voice != nil {
		return
	}
	e.track = track
	e.startVoice()
}

// Track returns the requested music track
func (e *Engine) Track() core.MusicTrack {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.track
}

// Enabled reports whether output is unmuted
func (e *Engine) Enabled() bool { return e.enabled.Load() }

// SetEnabled mutes or unmutes, unmuting restarts the current track
func (e *Engine) SetEnabled(on bool) {
	if e.enabled.Swap(on) == on {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !on {
		e.locked(func() {
			e.effects.Clear()
			e.music.Clear()
		})
		e.voice = nil
		log.Printf("[audio] muted")
		return
	}
	e.startVoice()
	log.Printf("[audio] unmuted")
}

// MusicVolume returns the music slider position in [0,1]
func (e *Engine) MusicVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.musicVolume
}

// SetMusicVolume sets the slider, the applied gain is its square
func (e *Engine) SetMusicVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.musicVolume = clamp01(v)
	e.locked(func() { e.musicBus.set(e.musicVolume * e.musicVolume) })
}

// EffectsVolume returns the effects slider position in [0,1]
func (e *Engine) EffectsVolume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effectsVolume
}

// SetEffectsVolume sets the slider, the applied gain is its square
func (e *Engine) SetEffectsVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.effectsVolume = clamp01(v)
	e.locked(func() { e.effectsBus.set(e.effectsVolume * e.effectsVolume) })
}

func (e *Engine) playable() bool {
	return e.enabled.Load() && e.running.Load()
}

// locked runs fn under the speaker lock while the speaker owns the graph
// Caller holds e.mu
func (e *Engine) locked(fn func()) {
	if e.attached {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// startVoice fades out the current voice and starts e.track
// Caller holds e.mu
func (e *Engine) startVoice() {
	if old := e.voice; old != nil {
		e.locked(func() { old.set(0) })
		e.voice = nil
	}
	if !e.playable() || e.track == core.MusicNone {
		return
	}
	src := e.trackStreamer(e.track)
	if src == nil {
		return
	}
	v := newRamp(src, 1, parameter.MusicFadeOut, e.format.SampleRate)
	v.endAtZero = true
	e.locked(func() { e.music.Add(v) })
	e.voice = v
}

func (e *Engine) cueStreamer(st core.SoundType) beep.Streamer {
	if buf, ok := e.cues[st].Get(); ok {
		return buf.Streamer(0, buf.Len())
	}
	if buf := e.cache.get(st); buf != nil {
		return buf.Streamer(0, buf.Len())
	}
	return nil
}

func (e *Engine) trackStreamer(track core.MusicTrack) beep.Streamer {
	if track < 0 || track >= core.MusicTrackCount {
		return nil
	}
	if buf, ok := e.tracks[track].Get(); ok && buf.Len() > 0 {
		return beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	if s := newSequencer(track, e.format.SampleRate); s != nil {
		return s
	}
	return nil
}
