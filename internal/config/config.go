// Package config loads the YAML configuration file with environment
// variable expansion.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickInterval    = 250 * time.Millisecond
	DefaultNotificationTTL = 4 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
)

var logLevels = []interface{}{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}

// Config represents the application configuration.
type Config struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	NotificationTTL time.Duration `yaml:"notification_ttl"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Log             LogConfig     `yaml:"log"`
	Listing         ListingConfig `yaml:"listing"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ListingConfig controls what directory listings show.
type ListingConfig struct {
	// Hide holds glob patterns matched against entry names.
	Hide []string `yaml:"hide"`
	// HideDotfiles starts the browser with dotfiles hidden.
	HideDotfiles bool `yaml:"hide_dotfiles"`
	// Fallback is listed when the requested directory cannot be read and
	// there is no previously listed directory. Defaults to the working
	// directory at startup.
	Fallback string `yaml:"fallback"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TickInterval:    DefaultTickInterval,
		NotificationTTL: DefaultNotificationTTL,
		ShutdownTimeout: DefaultShutdownTimeout,
		Log:             LogConfig{Level: DefaultLogLevel},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.TickInterval, validation.Required, validation.Min(10*time.Millisecond)),
		validation.Field(&c.NotificationTTL, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
	); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Validate validates the logging configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In(logLevels...)),
	)
}

// DefaultPath returns $XDG_CONFIG_HOME/onyx/config.yaml or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "onyx", "config.yaml")
}

// Load reads filename over the defaults. A missing file is not an error
// unless required is set.
func Load(filename string, required bool) (Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
