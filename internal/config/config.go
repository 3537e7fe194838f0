// Package config loads the sandbox settings from a TOML file.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/quillaja/gravbox/internal/physics"
)

// Config is the full settings file.
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Physics PhysicsConfig `toml:"physics"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Logging LoggingConfig `toml:"logging"`
	Record  RecordConfig  `toml:"record"`
}

// ArenaConfig is the arena size in world units.
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PhysicsConfig maps onto physics.Params.
type PhysicsConfig struct {
	G             float64 `toml:"g"`
	TimeStep      float64 `toml:"time_step"`  // simulated seconds per frame
	FrameRate     float64 `toml:"frame_rate"` // frames per simulated second, also the window TPS
	MaxVelocity   float64 `toml:"max_velocity"`
	Restitution   float64 `toml:"restitution"`
	ContactMargin float64 `toml:"contact_margin"`
}

// SpawnConfig holds the fallbacks used when the spawn text boxes don't parse.
type SpawnConfig struct {
	Mass      float64 `toml:"mass"`
	Radius    float64 `toml:"radius"`
	MaxDigits int     `toml:"max_digits"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// RecordConfig tunes the frame recorder and its sinks.
type RecordConfig struct {
	QueueSize      int `toml:"queue_size"`       // frames buffered per sink
	FramesPerChunk int `toml:"frames_per_chunk"` // gob chunk size
	Compression    int `toml:"compression"`      // zlib level, -1 = default
	Every          int `toml:"every"`            // record every Nth frame
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	p := physics.DefaultParams()
	return &Config{
		Arena: ArenaConfig{
			Width:  p.Width,
			Height: p.Height,
		},
		Physics: PhysicsConfig{
			G:             p.G,
			TimeStep:      p.TimeStep,
			FrameRate:     p.FrameRate,
			MaxVelocity:   p.MaxVelocity,
			Restitution:   p.Restitution,
			ContactMargin: p.ContactMargin,
		},
		Spawn: SpawnConfig{
			Mass:      50,
			Radius:    10,
			MaxDigits: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Record: RecordConfig{
			QueueSize:      32,
			FramesPerChunk: 48,
			Compression:    -1,
			Every:          1,
		},
	}
}

// Params returns the physics constants.
func (c *Config) Params() physics.Params {
	return physics.Params{
		Width:         c.Arena.Width,
		Height:        c.Arena.Height,
		G:             c.Physics.G,
		TimeStep:      c.Physics.TimeStep,
		FrameRate:     c.Physics.FrameRate,
		MaxVelocity:   c.Physics.MaxVelocity,
		Restitution:   c.Physics.Restitution,
		ContactMargin: c.Physics.ContactMargin,
	}
}

// SpawnDefaults returns the fallback spawn parameters.
func (c *Config) SpawnDefaults() physics.SpawnParams {
	return physics.SpawnParams{Mass: c.Spawn.Mass, Radius: c.Spawn.Radius}
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if !positive(c.Spawn.Mass) || !positive(c.Spawn.Radius) {
		return fmt.Errorf("spawn: mass and radius must be positive, got %v and %v", c.Spawn.Mass, c.Spawn.Radius)
	}
	if c.Spawn.MaxDigits <= 0 {
		return fmt.Errorf("spawn: max_digits must be positive")
	}
	if c.Record.QueueSize < 0 || c.Record.FramesPerChunk <= 0 || c.Record.Every <= 0 {
		return fmt.Errorf("record: queue_size, frames_per_chunk and every must be positive")
	}
	if c.Record.Compression < -2 || c.Record.Compression > 9 {
		return fmt.Errorf("record: compression %d outside [-2, 9]", c.Record.Compression)
	}
	return nil
}

// positive reports whether x is finite and above zero.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
