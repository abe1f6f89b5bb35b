package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sealsel/sealsel/pkg/seal"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultTempC     = 20
)

// Config is the top-level sealsel configuration.
type Config struct {
	Log      LogConfig       `yaml:"log"`
	Catalog  CatalogConfig   `yaml:"catalog"`
	Metrics  MetricsConfig   `yaml:"metrics"`
	Defaults RequestDefaults `yaml:"defaults"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is one of: json | text.
	Format string `yaml:"format"`
}

// SlogLevel returns Level as a slog.Level. Unknown values map to info;
// Load rejects them before this is reached.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// CatalogConfig holds catalog policy.
type CatalogConfig struct {
	// UniquePartNumbers rejects an added record whose part number is
	// already in the catalog. Duplicates are allowed when false.
	UniquePartNumbers bool `yaml:"unique_part_numbers"`
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	// Textfile is the path the Prometheus text exposition is written to after
	// each command, for the node_exporter textfile collector. Empty disables.
	Textfile string `yaml:"textfile"`
}

// RequestDefaults fill request fields a command leaves unset.
type RequestDefaults struct {
	Motion seal.Motion `yaml:"motion"`
	Medium string      `yaml:"medium"`
	TempC  int         `yaml:"temp_c"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Defaults: RequestDefaults{
			Motion: seal.MotionBoth,
			TempC:  DefaultTempC,
		},
	}
}

// validate checks enums and structural constraints.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Log.Format)
	}
	if cfg.Defaults.Motion == "" {
		cfg.Defaults.Motion = seal.MotionBoth
	}
	return nil
}
