package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.WorkspaceFile == "" {
		return fmt.Errorf("workspace_file is required")
	}
	if c.Scope == "" {
		return fmt.Errorf("scope is required")
	}
	switch c.OutputFormat {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q, must be one of: text, json", c.OutputFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for the configuration.
// Verbose forces debug regardless of log_level.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	return level, nil
}
