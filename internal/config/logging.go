package config

import (
	"os"

	"github.com/Sushanth18052005/mt5-EA/pkg/logging"
)

const (
	// EnvLogLevel overrides the logging level (debug, info, warn, error).
	EnvLogLevel = "ENDPOINTS_LOG_LEVEL"

	// EnvLogFormat overrides the logging format (text, json).
	EnvLogFormat = "ENDPOINTS_LOG_FORMAT"
)

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  logging.Level  `toml:"level"`
	Format logging.Format `toml:"format"`
}

// Finalize applies defaults, loads environment overrides, and validates the logging configuration.
func (c *LoggingConfig) Finalize() error {
	if c.Level == "" {
		c.Level = logging.LevelInfo
	}
	if c.Format == "" {
		c.Format = logging.FormatText
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Level = logging.Level(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Format = logging.Format(v)
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge applies non-empty values from the overlay configuration.
func (c *LoggingConfig) Merge(overlay *LoggingConfig) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
