package audio

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"low rate", func(c *Config) { c.SampleRate = 100 }},
		{"no buffer", func(c *Config) { c.BufferMillis = 0 }},
		{"loud master", func(c *Config) { c.MasterVolume = 1.5 }},
		{"negative music", func(c *Config) { c.MusicVolume = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mod(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvMasterVolume: "50",
		EnvEffectVolume: "250",
		EnvMusicVolume:  "loud",
	}
	cfg := LoadConfig(func(k string) string { return env[k] })
	if cfg.MasterVolume != 0.5 {
		t.Errorf("master: expected 0.5, got %v", cfg.MasterVolume)
	}
	if cfg.EffectVolume != 1 {
		t.Errorf("effect: expected clamp to 1, got %v", cfg.EffectVolume)
	}
	if cfg.MusicVolume != DefaultConfig().MusicVolume {
		t.Errorf("music: bad value should keep default, got %v", cfg.MusicVolume)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
}
