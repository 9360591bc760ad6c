package audio

import (
	"errors"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

// Config controls the mix and the speaker format
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int

	// CueVolumes indexed by engine.Cue
	CueVolumes [engine.CueCount]float64
}

// DefaultConfig returns audio enabled at default levels
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	cfg.CueVolumes[engine.CueBackground] = parameter.DefaultBackgroundVolume
	cfg.CueVolumes[engine.CuePing] = parameter.DefaultPingVolume
	cfg.CueVolumes[engine.CueSpawn] = parameter.DefaultSpawnVolume
	return cfg
}

// Level returns the effective gain of a cue
func (c *Config) Level(cue engine.Cue) float64 {
	if cue < 0 || cue >= engine.CueCount {
		return 0
	}
	return c.CueVolumes[cue] * c.MasterVolume
}
