package config

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dokzlo13/hsbk/internal/color"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig         `yaml:"database"`
	Log      LogConfig              `yaml:"log"`
	Color    ColorConfig            `yaml:"color"`
	Palette  map[string]color.Color `yaml:"palette"` // Seeded into the palette store on startup
	Script   string                 `yaml:"script"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path   string `yaml:"path"`
	Memory bool   `yaml:"memory"` // Keep the palette in memory only
}

// LogConfig contains logging settings
type LogConfig struct {
	Level   string `yaml:"level"`
	UseJSON bool   `yaml:"json"`
	Colors  bool   `yaml:"colors"`
}

// ColorConfig controls how user-supplied colors are accepted
type ColorConfig struct {
	// Lenient skips range validation and hands values to the encoder as is
	Lenient bool `yaml:"lenient"`
}

// GetLevel returns the log level with default
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration file.
// A missing file is not an error when optional is true; defaults are returned instead.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./hsbk.sqlite"
	}
	if cfg.Palette == nil {
		cfg.Palette = make(map[string]color.Color)
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultVal := ""
		if len(parts) >= 3 {
			defaultVal = parts[2]
		}

		if val := os.Getenv(varName); val != "" {
			return val
		}
		return defaultVal
	})
}
