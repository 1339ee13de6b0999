package life

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings a Session starts from.
type Config struct {
	Rows               int     `toml:"rows"`
	Cols               int     `toml:"cols"`
	MillisPerIteration int     `toml:"millis_per_iteration"`
	Workers            int     `toml:"workers"`
	SpawnChance        float64 `toml:"spawn_chance"`
	Seed               int64   `toml:"seed"`
	DataDir            string  `toml:"data_dir"`
	AutoIterate        bool    `toml:"auto_iterate"`
	HighlightMotion    bool    `toml:"highlight_motion"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:               100,
		Cols:               150,
		MillisPerIteration: 10,
		SpawnChance:        0.5,
		Seed:               42,
		DataDir:            "data",
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c with any valid values present in cfg.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MillisPerIteration = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SpawnChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["dir"]; ok && v != "" {
		c.DataDir = v
	}
	if v, ok := cfg["auto"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AutoIterate = parsed
		}
	}
	if v, ok := cfg["motion"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.HighlightMotion = parsed
		}
	}
	return c
}

// LoadConfigFile reads a TOML settings file on top of DefaultConfig. A missing
// file is not an error.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return c, nil
}
