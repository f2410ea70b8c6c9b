package audio

import (
	"testing"

	"github.com/lixenwraith/vi-towers/core"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.MusicVolume <= 0 || cfg.MusicVolume > 1 {
		t.Errorf("Expected music volume in (0,1], got %f", cfg.MusicVolume)
	}
	if g := cfg.CueGain(core.SoundPlace); g != 1 {
		t.Errorf("Expected untrimmed cue at unity, got %f", g)
	}
	if g := cfg.CueGain(core.SoundShoot); g >= 1 {
		t.Errorf("Expected shoot cue trimmed below unity, got %f", g)
	}
}

// TestLoadConfigDefaults verifies loading with no env vars
func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"VI_TOWERS_AUDIO_ENABLED",
		"VI_TOWERS_AUDIO_MUSIC_VOLUME",
		"VI_TOWERS_AUDIO_EFFECTS_VOLUME",
		"VI_TOWERS_AUDIO_SAMPLE_RATE",
		"VI_TOWERS_AUDIO_CUE_GAINS",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.MusicVolume != def.MusicVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigFromEnv verifies environment overrides
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VI_TOWERS_AUDIO_ENABLED", "false")
	t.Setenv("VI_TOWERS_AUDIO_MUSIC_VOLUME", "30")
	t.Setenv("VI_TOWERS_AUDIO_EFFECTS_VOLUME", "150")
	t.Setenv("VI_TOWERS_AUDIO_SAMPLE_RATE", "48000")
	t.Setenv("VI_TOWERS_AUDIO_CUE_GAINS", `{"place":0.25,"bogus":1}`)

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false from env")
	}
	if cfg.MusicVolume != 0.3 {
		t.Errorf("Expected music volume 0.3, got %f", cfg.MusicVolume)
	}
	if cfg.EffectsVolume != 1 {
		t.Errorf("Expected effects volume clamped to 1, got %f", cfg.EffectsVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if g := cfg.CueGain(core.SoundPlace); g != 0.25 {
		t.Errorf("Expected place gain 0.25, got %f", g)
	}
}

// TestLoadConfigInvalidValues verifies malformed values keep the defaults
func TestLoadConfigInvalidValues(t *testing.T) {
	t.Setenv("VI_TOWERS_AUDIO_ENABLED", "maybe")
	t.Setenv("VI_TOWERS_AUDIO_MUSIC_VOLUME", "loud")
	t.Setenv("VI_TOWERS_AUDIO_SAMPLE_RATE", "-1")
	t.Setenv("VI_TOWERS_AUDIO_CUE_GAINS", "{not json")

	cfg := LoadConfig()
	def := DefaultConfig()

	if cfg.Enabled != def.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", def.Enabled, cfg.Enabled)
	}
	if cfg.MusicVolume != def.MusicVolume {
		t.Errorf("Expected music volume %f, got %f", def.MusicVolume, cfg.MusicVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected sample rate %d, got %d", def.SampleRate, cfg.SampleRate)
	}
	if len(cfg.CueGains) != len(def.CueGains) {
		t.Errorf("Expected %d cue gains, got %d", len(def.CueGains), len(cfg.CueGains))
	}
}
