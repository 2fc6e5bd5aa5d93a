// Package config provides configuration management for the ws CLI.
package config

import "github.com/leapstack-labs/workspace/pkg/core"

// Config holds all CLI configuration options.
type Config struct {
	WorkspaceFile string `koanf:"workspace_file"`
	Scope         string `koanf:"scope"`
	LogLevel      string `koanf:"log_level"`
	OutputFormat  string `koanf:"output"`
	Verbose       bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultWorkspaceFile = "workspace.yml"
	DefaultScope         = "project"
	DefaultLogLevel      = "info"
	DefaultOutput        = "text"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ScopeValue returns the configured scope as a core.Scope.
func (c *Config) ScopeValue() core.Scope {
	return core.Scope(c.Scope)
}
