// Package config loads the engine's TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds the knobs that tune the running engine rather than the
// world's content (that's worldgen.NoiseGenerator's job).
type Config struct {
	Seed int64 `toml:"seed"`

	RenderDistance int32 `toml:"render_distance"`

	TickRate          int `toml:"tick_rate_hz"`
	GCIntervalTicks   int `toml:"gc_interval_ticks"`
	FluidIntervalTicks int `toml:"fluid_interval_ticks"`
}

// Default returns the engine's out-of-the-box configuration.
func Default() Config {
	return Config{
		Seed:               1,
		RenderDistance:     8,
		TickRate:           60,
		GCIntervalTicks:    20,
		FluidIntervalTicks: 1,
	}
}

// Load reads and parses a TOML config file, filling in Default() values
// for anything the file doesn't set.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in TOML form.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
