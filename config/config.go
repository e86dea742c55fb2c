// Package config loads the kit's settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/drumkit/audio"
	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/input"
)

// ErrInvalid marks a config value outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk settings file
type Config struct {
	SoundsDir string      `toml:"sounds_dir"`
	FrameRate int         `toml:"frame_rate"`
	Volume    float64     `toml:"volume"`
	Muted     bool        `toml:"muted"`
	Legend    bool        `toml:"legend"`
	Audio     AudioConfig `toml:"audio"`

	// Keys rebinds special keys to actions, e.g. ctrl_q = "quit"
	Keys map[string]string `toml:"keys"`
}

// AudioConfig is the [audio] table
type AudioConfig struct {
	SampleRate int `toml:"sample_rate"`
	BufferMS   int `toml:"buffer_ms"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		SoundsDir: constant.DefaultSoundsDir,
		FrameRate: constant.FrameRate,
		Volume:    1,
		Legend:    true,
		Audio: AudioConfig{
			SampleRate: constant.AudioSampleRate,
			BufferMS:   int(constant.AudioBufferDuration / time.Millisecond),
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error unless required is set
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	switch {
	case c.SoundsDir == "":
		return fmt.Errorf("sounds_dir empty: %w", ErrInvalid)
	case c.FrameRate < 1 || c.FrameRate > 240:
		return fmt.Errorf("frame_rate %d outside 1-240: %w", c.FrameRate, ErrInvalid)
	case c.Volume < 0 || c.Volume > 4:
		return fmt.Errorf("volume %.2f outside 0-4: %w", c.Volume, ErrInvalid)
	case c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000:
		return fmt.Errorf("audio.sample_rate %d outside 8000-192000: %w", c.Audio.SampleRate, ErrInvalid)
	case c.Audio.BufferMS < 1 || c.Audio.BufferMS > 1000:
		return fmt.Errorf("audio.buffer_ms %d outside 1-1000: %w", c.Audio.BufferMS, ErrInvalid)
	}
	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// KeyTable returns the default bindings with the [keys] overrides applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.ParseKeyBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// FrameInterval returns the delay between rendered frames
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constant.FrameInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Playback returns the audio settings
func (c Config) Playback() audio.Config {
	return audio.Config{
		SampleRate: c.Audio.SampleRate,
		Buffer:     time.Duration(c.Audio.BufferMS) * time.Millisecond,
		Volume:     c.Volume,
		Muted:      c.Muted,
	}
}
