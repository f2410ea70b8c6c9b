package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/vi-towers/core"
	"github.com/lixenwraith/vi-towers/parameter"
)

// Config holds engine settings, volumes are linear slider positions in [0,1]
type Config struct {
	Enabled        bool
	MusicVolume    float64
	EffectsVolume  float64
	SampleRate     int
	BufferDuration time.Duration

	// CueGains trims individual cues before the effects volume
	CueGains map[core.SoundType]float64
}

// DefaultConfig returns the compiled-in defaults
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		MusicVolume:    parameter.DefaultMusicVolume,
		EffectsVolume:  parameter.DefaultEffectsVolume,
		SampleRate:     parameter.AudioSampleRate,
		BufferDuration: parameter.AudioBufferDuration,
		CueGains: map[core.SoundType]float64{
			core.SoundShoot:       0.35,
			core.SoundHit:         0.5,
			core.SoundShock:       0.7,
			core.SoundRotate:      0.5,
			core.SoundEnemyDeath:  0.6,
			core.SoundTurretDeath: 0.8,
		},
	}
}

// LoadConfig overlays VI_TOWERS_AUDIO_* environment variables on the defaults
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("VI_TOWERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are given as 0-100
	if v, ok := envPercent("VI_TOWERS_AUDIO_MUSIC_VOLUME"); ok {
		cfg.MusicVolume = v
	}
	if v, ok := envPercent("VI_TOWERS_AUDIO_EFFECTS_VOLUME"); ok {
		cfg.EffectsVolume = v
	}

	if sampleRate := os.Getenv("VI_TOWERS_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	// Cue trims from JSON keyed by cue name
	if gains := os.Getenv("VI_TOWERS_AUDIO_CUE_GAINS"); gains != "" {
		var byName map[string]float64
		if err := json.Unmarshal([]byte(gains), &byName); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := byName[st.String()]; ok {
					cfg.CueGains[st] = clamp01(v)
				}
			}
		}
	}

	return cfg
}

// CueGain returns the trim for st, untrimmed cues play at unity
func (c Config) CueGain(st core.SoundType) float64 {
	if g, ok := c.CueGains[st]; ok {
		return g
	}
	return 1
}

func envPercent(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return clamp01(float64(val) / 100.0), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
