// Package config loads the optional YAML settings file. A missing
// file is not an error; every field has a sensible default.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vault-crawler/constant"
)

type Config struct {
	// ScreenWidth and ScreenHeight set the simulation's world-space
	// dimensions. Rendering scales them to the terminal.
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`

	// Volume is the master audio volume in [0,1]. Zero disables audio.
	Volume float64 `yaml:"volume"`

	// Seed fixes the random source when nonzero; zero seeds from the
	// clock.
	Seed int64 `yaml:"seed"`

	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		ScreenWidth:  constant.DefaultScreenWidth,
		ScreenHeight: constant.DefaultScreenHeight,
		Volume:       0.5,
	}
}

// Load reads the config file at path, falling back to defaults when
// it does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %gx%g", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("config: volume must be in [0,1], got %g", c.Volume)
	}
	return nil
}
