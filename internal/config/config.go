package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Glass holds the configuration of the glassinfo tool.
type Glass struct {
	LogLevel string `yaml:"log_level"`

	// Catalogs searched, in order, when a glass is requested without one.
	Catalogs []string `yaml:"catalogs"`

	// Directory the custom glass registry is saved to and loaded from.
	// Empty disables persistence.
	CustomGlassDir string `yaml:"custom_glass_dir"`

	RIndexInfo RIndexInfo `yaml:"rindexinfo"`
	Buchdahl   Buchdahl   `yaml:"buchdahl"`
}

// RIndexInfo configures downloads from the RefractiveIndex.INFO database.
type RIndexInfo struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Buchdahl holds the empirical line ν1 = b + m·ν2 used for model glasses.
type Buchdahl struct {
	B float64 `yaml:"b"`
	M float64 `yaml:"m"`
}

// DefaultBuchdahl returns the line fitted to the Schott catalog.
func DefaultBuchdahl() Buchdahl {
	return Buchdahl{
		B: -0.064667,
		M: -1.604048,
	}
}

// Default returns Glass config with sensible defaults.
func Default() Glass {
	return Glass{
		LogLevel:       "info",
		Catalogs:       []string{"CDGM", "Hikari", "Hoya", "Ohara", "Schott", "Sumita"},
		CustomGlassDir: "custom_glasses",
		RIndexInfo: RIndexInfo{
			Timeout: 30 * time.Second,
		},
		Buchdahl: DefaultBuchdahl(),
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Glass, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the tool cannot work with.
func (c Glass) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if len(c.Catalogs) == 0 {
		return fmt.Errorf("catalogs must not be empty")
	}
	if c.RIndexInfo.Timeout <= 0 {
		return fmt.Errorf("rindexinfo.timeout must be positive, got %s", c.RIndexInfo.Timeout)
	}
	return nil
}
