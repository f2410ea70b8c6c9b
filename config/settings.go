package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-towers/audio"
	"github.com/lixenwraith/vi-towers/parameter"
	"github.com/urfave/cli/v3"
)

// Settings is the runtime configuration shared by both frontends
type Settings struct {
	Debug         bool
	Mute          bool
	MusicVolume   float64
	EffectsVolume float64
	Seed          uint64
	Assets        string
	FPS           int
	Color         string
	Scale         int
	Stock         map[string]int

	musicSet   bool
	effectsSet bool
}

// Flags returns the command-line flags, each also read from a VI_TOWERS_* variable
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "write logs/vi-towers.log and show the telemetry overlay",
			Sources: cli.EnvVars("VI_TOWERS_DEBUG"),
		},
		&cli.BoolFlag{
			Name:    "mute",
			Usage:   "start with sound disabled",
			Sources: cli.EnvVars("VI_TOWERS_MUTE"),
		},
		&cli.FloatFlag{
			Name:    "music-volume",
			Usage:   "music volume in [0,1]",
			Value:   parameter.DefaultMusicVolume,
			Sources: cli.EnvVars("VI_TOWERS_MUSIC_VOLUME"),
		},
		&cli.FloatFlag{
			Name:    "effects-volume",
			Usage:   "effects volume in [0,1]",
			Value:   parameter.DefaultEffectsVolume,
			Sources: cli.EnvVars("VI_TOWERS_EFFECTS_VOLUME"),
		},
		&cli.IntFlag{
			Name:    "seed",
			Usage:   "world seed, 0 picks one from the clock",
			Sources: cli.EnvVars("VI_TOWERS_SEED"),
		},
		&cli.StringFlag{
			Name:    "assets",
			Usage:   "directory of PNG and WAV overrides",
			Sources: cli.EnvVars("VI_TOWERS_ASSETS"),
		},
		&cli.IntFlag{
			Name:    "fps",
			Usage:   "frame rate of the terminal loop",
			Value:   parameter.DefaultFPS,
			Sources: cli.EnvVars("VI_TOWERS_FPS"),
		},
		&cli.StringFlag{
			Name:    "color",
			Usage:   "terminal color mode: auto, truecolor, 256",
			Value:   "auto",
			Sources: cli.EnvVars("VI_TOWERS_COLOR"),
		},
		&cli.IntFlag{
			Name:    "scale",
			Usage:   "desktop window scale",
			Value:   parameter.DesktopScale,
			Sources: cli.EnvVars("VI_TOWERS_SCALE"),
		},
		&cli.StringFlag{
			Name:    "stock",
			Usage:   "initial palette counts, e.g. repeater=5,shockwave=2",
			Sources: cli.EnvVars("VI_TOWERS_STOCK"),
		},
	}
}

// FromCommand reads the parsed flags
func FromCommand(cmd *cli.Command) (Settings, error) {
	s := Settings{
		Debug:         cmd.Bool("debug"),
		Mute:          cmd.Bool("mute"),
		MusicVolume:   clamp01(cmd.Float("music-volume")),
		EffectsVolume: clamp01(cmd.Float("effects-volume")),
		Seed:          uint64(cmd.Int("seed")),
		Assets:        cmd.String("assets"),
		FPS:           int(cmd.Int("fps")),
		Color:         cmd.String("color"),
		Scale:         int(cmd.Int("scale")),
		musicSet:      cmd.IsSet("music-volume"),
		effectsSet:    cmd.IsSet("effects-volume"),
	}
	if spec := cmd.String("stock"); spec != "" {
		stock, err := ParseStock(spec)
		if err != nil {
			return s, fmt.Errorf("--stock: %w", err)
		}
		s.Stock = stock
	}
	return s, nil
}

// Audio applies the audio flags over base, explicit flags win over the environment
func (s Settings) Audio(base audio.Config) audio.Config {
	if s.Mute {
		base.Enabled = false
	}
	if s.musicSet {
		base.MusicVolume = s.MusicVolume
	}
	if s.effectsSet {
		base.EffectsVolume = s.EffectsVolume
	}
	return base
}

// FrameInterval converts FPS to a ticker period
func (s Settings) FrameInterval() time.Duration {
	if s.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(s.FPS)
}

// WorldSeed returns the seed, drawing one from the clock when unset
func (s Settings) WorldSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}

// ParseStock reads "key=count" pairs separated by commas
func ParseStock(spec string) (map[string]int, error) {
	out := make(map[string]int)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("missing '=' in %q", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad count in %q", part)
		}
		out[strings.TrimSpace(key)] = n
	}
	return out, nil
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
