package app

import (
	"errors"
	"time"
)

// Config holds the flag-level settings an App instance needs to run.
// Zero values mean "not set"; file values and built-in defaults fill the
// gaps during New.
type Config struct {
	ConfigPath string

	LogFormat string
	LogLevel  string

	Timeout time.Duration
	NoColor bool
}

var (
	validLogFormats = map[string]bool{"text": true, "json": true}
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate rejects settings no App can be built from.
func (c *Config) Validate() error {
	if c.LogFormat != "" && !validLogFormats[c.LogFormat] {
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}
