// Package config resolves gallivant settings from defaults, an optional
// YAML file and GALLIVANT_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvWorkers   = "GALLIVANT_WORKERS"
	EnvLogLevel  = "GALLIVANT_LOG_LEVEL"
	EnvLogFormat = "GALLIVANT_LOG_FORMAT"
	EnvSound     = "GALLIVANT_SOUND"
	EnvVolume    = "GALLIVANT_VOLUME"
	EnvTick      = "GALLIVANT_TICK"
)

// Tick bounds for the replay viewer
const (
	MinTick = 5 * time.Millisecond
	MaxTick = 2 * time.Second
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Census CensusConfig `yaml:"census"`
	Replay ReplayConfig `yaml:"replay"`
	Audio  AudioConfig  `yaml:"audio"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CensusConfig struct {
	Workers int `yaml:"workers"`
}

type ReplayConfig struct {
	Tick time.Duration `yaml:"tick"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Census: CensusConfig{Workers: runtime.NumCPU()},
		Replay: ReplayConfig{Tick: 60 * time.Millisecond},
		Audio:  AudioConfig{Enabled: false, Volume: 0.5},
	}
}

// Load resolves the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.clamp()
	return cfg, nil
}

// decode overlays YAML onto cfg, rejecting unknown keys
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Census.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvSound); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Audio.Enabled = enabled
	}
	// Volume is given as 0-100
	if v, ok := lookup(EnvVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		c.Audio.Volume = float64(n) / 100.0
	}
	if v, ok := lookup(EnvTick); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		c.Replay.Tick = d
	}
	return nil
}

func (c *Config) clamp() {
	if c.Census.Workers < 1 {
		c.Census.Workers = 1
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.Replay.Tick < MinTick {
		c.Replay.Tick = MinTick
	}
	if c.Replay.Tick > MaxTick {
		c.Replay.Tick = MaxTick
	}
}
