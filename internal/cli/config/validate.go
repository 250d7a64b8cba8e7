package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

var (
	logFormats  = []string{"text", "json"}
	outputModes = []string{"auto", "text", "markdown", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if c.Transition <= 0 {
		return fmt.Errorf("transition must be positive, got %s", c.Transition)
	}
	if c.Server.SweepInterval <= 0 {
		return fmt.Errorf("server.sweep_interval must be positive, got %s", c.Server.SweepInterval)
	}
	if c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server.idle_timeout must be positive, got %s", c.Server.IdleTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("log_format must be one of %s, got %q", strings.Join(logFormats, ", "), c.LogFormat)
	}
	if !slices.Contains(outputModes, c.OutputFormat) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(outputModes, ", "), c.OutputFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
