package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/pong-patrol/audio"
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/physics"
	"github.com/lixenwraith/pong-patrol/vmath"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked up when -config is not given
const DefaultPath = "pong-patrol.toml"

// Config is the complete runtime configuration
type Config struct {
	Game    GameConfig    `toml:"game"`
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`

	// Enemies replaces the built-in roster when non-empty
	Enemies []EnemyConfig `toml:"enemies,omitempty"`
}

type GameConfig struct {
	FPS   int  `toml:"fps"`
	Debug bool `toml:"debug"`
}

type PhysicsConfig struct {
	Gravity     float64 `toml:"gravity"`
	Restitution float64 `toml:"restitution"`
	MaxSpeed    float64 `toml:"max_speed"`
	Substeps    int     `toml:"substeps"`
}

// AudioConfig volumes are 0.0 - 1.0
type AudioConfig struct {
	Enabled          bool    `toml:"enabled"`
	MasterVolume     float64 `toml:"master_volume"`
	SampleRate       int     `toml:"sample_rate"`
	BackgroundVolume float64 `toml:"background_volume"`
	PingVolume       float64 `toml:"ping_volume"`
	SpawnVolume      float64 `toml:"spawn_volume"`
}

type EnemyConfig struct {
	Direction string  `toml:"direction"`
	Size      string  `toml:"size"`
	Lane      float64 `toml:"lane"`
	Speed     float64 `toml:"speed"`
	Color     string  `toml:"color"`
}

// Options selects where Load looks for its sources
type Options struct {
	Path    string // TOML file, empty selects DefaultPath
	EnvFile string // .env file, empty selects ".env"

	// Required fails Load when the TOML file is missing
	Required bool
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FPS: int(time.Second / parameter.FrameUpdateInterval),
		},
		Physics: PhysicsConfig{
			Gravity:     parameter.Gravity,
			Restitution: parameter.Restitution,
			MaxSpeed:    parameter.MaxBodySpeed,
			Substeps:    parameter.PhysicsSubsteps,
		},
		Audio: AudioConfig{
			Enabled:          true,
			MasterVolume:     parameter.DefaultMasterVolume,
			SampleRate:       parameter.AudioSampleRate,
			BackgroundVolume: parameter.DefaultBackgroundVolume,
			PingVolume:       parameter.DefaultPingVolume,
			SpawnVolume:      parameter.DefaultSpawnVolume,
		},
	}
}

// Load layers defaults, the .env file, the TOML file and PONG_PATROL_* variables, then validates
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// Existing environment wins over .env entries
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("config loaded from %s", path)
	case errors.Is(err, fs.ErrNotExist) && !opts.Required:
		log.Printf("config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays TOML onto cfg, rejecting unknown keys
func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return err
	}
	return nil
}

// Write encodes the effective configuration as TOML
func (c *Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}

// Validate clamps volumes and rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Game.FPS <= 0 {
		return fmt.Errorf("game.fps must be positive, got %d", c.Game.FPS)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Physics.MaxSpeed <= 0 {
		return fmt.Errorf("physics.max_speed must be positive, got %v", c.Physics.MaxSpeed)
	}
	if c.Physics.Restitution < 0 {
		return fmt.Errorf("physics.restitution must not be negative, got %v", c.Physics.Restitution)
	}
	if c.Physics.Substeps < 1 {
		c.Physics.Substeps = 1
	}

	c.Audio.MasterVolume = vmath.ClampF(c.Audio.MasterVolume, 0, 1)
	c.Audio.BackgroundVolume = vmath.ClampF(c.Audio.BackgroundVolume, 0, 1)
	c.Audio.PingVolume = vmath.ClampF(c.Audio.PingVolume, 0, 1)
	c.Audio.SpawnVolume = vmath.ClampF(c.Audio.SpawnVolume, 0, 1)

	if _, err := c.Roster(); err != nil {
		return err
	}
	return nil
}

// FrameInterval returns the tick period for the configured FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Game.FPS)
}

// Roster returns the configured enemies, or nil to select the built-in roster
func (c *Config) Roster() ([]engine.EnemySpec, error) {
	if len(c.Enemies) == 0 {
		return nil, nil
	}
	specs := make([]engine.EnemySpec, 0, len(c.Enemies))
	for i, e := range c.Enemies {
		dir, err := engine.ParseDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("enemies[%d]: %w", i, err)
		}
		size, err := engine.ParseSize(e.Size)
		if err != nil {
			return nil, fmt.Errorf("enemies[%d]: %w", i, err)
		}
		spec := engine.EnemySpec{Direction: dir, Size: size, Lane: e.Lane, Speed: e.Speed, Color: e.Color}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("enemies[%d]: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// PhysicsWorld returns the physics world settings
func (c *Config) PhysicsWorld() physics.Config {
	return physics.Config{
		Gravity:     vmath.V3F(0, c.Physics.Gravity, 0),
		Restitution: c.Physics.Restitution,
		MaxSpeed:    c.Physics.MaxSpeed,
		Substeps:    c.Physics.Substeps,
	}
}

// SoundConfig returns the audio mix settings
func (c *Config) SoundConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	ac.CueVolumes[engine.CueBackground] = c.Audio.BackgroundVolume
	ac.CueVolumes[engine.CuePing] = c.Audio.PingVolume
	ac.CueVolumes[engine.CueSpawn] = c.Audio.SpawnVolume
	return ac
}
