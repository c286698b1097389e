// Package config loads the fsmin command configuration: an optional YAML file whose values can be
// overridden from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultLogLevel = "info"
	DefaultFormat   = "text"
)

// Formats accepted for Config.Format.
var Formats = []string{"text", "yaml", "json"}

// Config fsmin settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"FSMIN_LOG_LEVEL"`

	// Format selects how minimize prints its result.
	Format string `yaml:"format" env:"FSMIN_FORMAT"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Format:   DefaultFormat,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads path (when non-empty), applies environment overrides and validates the result.
// Missing fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks Format; LogLevel is checked by the logger when it is built.
func (c Config) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return ValidationError{Field: "format", Message: fmt.Sprintf("unsupported format %q", c.Format)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// applyEnvOverrides sets every string field tagged with env from the environment when the variable
// is set and non-empty.
func applyEnvOverrides(cfg *Config) {
	val := reflect.ValueOf(cfg).Elem()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		key := typ.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		if v := os.Getenv(key); v != "" && val.Field(i).Kind() == reflect.String {
			val.Field(i).SetString(v)
		}
	}
}
