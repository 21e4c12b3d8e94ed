// Package config loads the renderer settings file.
//
// The file is TOML. Keys that are absent keep their defaults and unknown keys are an
// error, so typos do not pass silently.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"meenle/meenle/xfb"
)

type Config struct {
	// Mesh names the catalog entry shown first.
	Mesh string `toml:"mesh"`
	// Period is seconds per revolution; 0 stops the spin.
	Period float64 `toml:"period"`
	Zoom   float64 `toml:"zoom"`
	// Fit rescales every mesh to this share of the half-width; 0 keeps catalog sizes.
	Fit float64 `toml:"fit"`
	HUD bool    `toml:"hud"`
	// Clip drops off-frame pixels instead of plotting them at the origin.
	Clip bool `toml:"clip"`
	// Still renders the fixed console pose (scale 2, half turn about X) with the spin on Y.
	Still     bool    `toml:"still"`
	HeapBytes int     `toml:"heap_bytes"`
	Console   Console `toml:"console"`
}

// Console configures the YUYV presentation path.
type Console struct {
	Enabled bool   `toml:"enabled"`
	Pairing string `toml:"pairing"`
}

func Default() Config {
	return Config{
		Mesh:   "icosphere",
		Period: 5,
		Zoom:   1,
		HUD:    true,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Default(), err
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (c Config) Validate() error {
	if c.Period < 0 {
		return fmt.Errorf("period %v must not be negative", c.Period)
	}
	if c.Zoom <= 0 || c.Zoom > 10 {
		return fmt.Errorf("zoom %v out of range (0, 10]", c.Zoom)
	}
	if c.Fit < 0 || c.Fit > 1 {
		return fmt.Errorf("fit %v out of range [0, 1]", c.Fit)
	}
	if c.HeapBytes < 0 {
		return fmt.Errorf("heap_bytes %d must not be negative", c.HeapBytes)
	}
	if _, err := c.Pairing(); err != nil {
		return err
	}
	return nil
}

// Pairing is the parsed console.pairing value.
func (c Config) Pairing() (xfb.Pairing, error) {
	return xfb.ParsePairing(c.Console.Pairing)
}
