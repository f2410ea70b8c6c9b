package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 80 * time.Millisecond
)

// Audio Mixing
const (
	// MusicFadeOut is the fade applied to the outgoing track on switch
	MusicFadeOut = 100 * time.Millisecond

	// VolumeRamp is the gain slew applied on volume changes
	VolumeRamp = 20 * time.Millisecond

	DefaultMusicVolume   = 0.5
	DefaultEffectsVolume = 0.8

	// VolumeStep is the menu volume increment
	VolumeStep = 0.1

	// MaxEffectVoices drops new cues while this many are sounding
	MaxEffectVoices = 24
)

// Music Level Thresholds
const (
	MusicTenseLevel   = 2.0
	MusicIntenseLevel = 5.0
)
