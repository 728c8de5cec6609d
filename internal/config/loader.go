package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"finhistory/internal/catalog"
)

// Config holds runtime parameters for the CLI and the HTTP bridge.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr               string   `json:"addr" yaml:"addr" toml:"addr"`
	Variant            string   `json:"variant" yaml:"variant" toml:"variant"`
	ResourcesDir       string   `json:"resources_dir" yaml:"resources_dir" toml:"resources_dir"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat          string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
	ShutdownTimeoutSec int      `json:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec" toml:"shutdown_timeout_sec"`
}

// Defaults returns the configuration used when nothing is specified.
// ResourcesDir stays empty, which selects the embedded resources.
func Defaults() Config {
	return Config{
		Addr:               ":8080",
		Variant:            catalog.Default,
		LogLevel:           "info",
		LogFormat:          "console",
		ShutdownTimeoutSec: 5,
	}
}

// ApplyDefaults fills zero fields from Defaults.
func (c *Config) ApplyDefaults() {
	d := Defaults()
	if c.Addr == "" { c.Addr = d.Addr }
	if c.Variant == "" { c.Variant = d.Variant }
	if c.LogLevel == "" { c.LogLevel = d.LogLevel }
	if c.LogFormat == "" { c.LogFormat = d.LogFormat }
	if c.ShutdownTimeoutSec <= 0 { c.ShutdownTimeoutSec = d.ShutdownTimeoutSec }
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	if c.Variant != "" {
		if _, err := catalog.Lookup(c.Variant); err != nil {
			return err
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error", "off":
	default:
		return fmt.Errorf("unsupported log level: %s", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}
	return nil
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil { return cfg, err }
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil { return cfg, err }
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
