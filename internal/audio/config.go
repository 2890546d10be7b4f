package audio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Config holds mixer levels. Volumes are linear gains in [0, 1].
type Config struct {
	SampleRate   int
	BufferMillis int
	MasterVolume float64
	EffectVolume float64
	CartVolume   float64 // looping launcher rumble
	MusicVolume  float64 // background track
}

// DefaultConfig returns the levels the game ships with.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		BufferMillis: 100,
		MasterVolume: 1.0,
		EffectVolume: 0.8,
		CartVolume:   0.5,
		MusicVolume:  0.4,
	}
}

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid audio config")

// Validate checks rates and volume ranges.
func (c Config) Validate() error {
	if c.SampleRate < 8000 || c.SampleRate > 192000 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.BufferMillis <= 0 {
		return fmt.Errorf("%w: buffer %dms", ErrInvalidConfig, c.BufferMillis)
	}
	for name, v := range map[string]float64{
		"master": c.MasterVolume,
		"effect": c.EffectVolume,
		"cart":   c.CartVolume,
		"music":  c.MusicVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s volume %.2f", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// Environment variables read by LoadConfig. Volumes are percentages.
const (
	EnvMasterVolume = "CANNON_BALL_MASTER_VOLUME"
	EnvEffectVolume = "CANNON_BALL_SFX_VOLUME"
	EnvMusicVolume  = "CANNON_BALL_MUSIC_VOLUME"
)

// LoadConfig starts from DefaultConfig and applies volume overrides from
// getenv (os.Getenv in production). Unparseable values are ignored and
// out-of-range ones clamped.
func LoadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()
	for name, dst := range map[string]*float64{
		EnvMasterVolume: &cfg.MasterVolume,
		EnvEffectVolume: &cfg.EffectVolume,
		EnvMusicVolume:  &cfg.MusicVolume,
	} {
		raw := getenv(name)
		if raw == "" {
			continue
		}
		pct, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		*dst = math.Min(1, math.Max(0, float64(pct)/100))
	}
	return cfg
}
