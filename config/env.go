package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides
const (
	EnvFPS          = "PONG_PATROL_FPS"
	EnvDebug        = "PONG_PATROL_DEBUG"
	EnvAudioEnabled = "PONG_PATROL_AUDIO_ENABLED"
	EnvMasterVolume = "PONG_PATROL_MASTER_VOLUME" // 0-100
	EnvSampleRate   = "PONG_PATROL_SAMPLE_RATE"
	EnvGravity      = "PONG_PATROL_GRAVITY"
	EnvRestitution  = "PONG_PATROL_RESTITUTION"
)

// applyEnv overlays PONG_PATROL_* variables; malformed values are errors
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.Game.FPS = n
	}

	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Game.Debug = b
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume 0-100 converted to 0.0-1.0, clamped by Validate
	if v := os.Getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = float64(n) / 100.0
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		c.Audio.SampleRate = n
	}

	if v := os.Getenv(EnvGravity); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGravity, err)
		}
		c.Physics.Gravity = f
	}

	if v := os.Getenv(EnvRestitution); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRestitution, err)
		}
		c.Physics.Restitution = f
	}

	return nil
}
