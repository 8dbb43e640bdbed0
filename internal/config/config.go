// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging  LogConfig
	Terminal TerminalConfig
	Syslog   SyslogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"SHELLWRIGHT_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SHELLWRIGHT_LOG_DEV" default:"false"`
}

// TerminalConfig holds session defaults.
type TerminalConfig struct {
	// DefaultShell overrides the platform shell resolution when set.
	DefaultShell string `envconfig:"SHELLWRIGHT_DEFAULT_SHELL" default:""`
}

// SyslogConfig holds system log query configuration.
type SyslogConfig struct {
	// Path is the log file consulted before falling back to journalctl.
	Path string `envconfig:"SHELLWRIGHT_SYSLOG_PATH" default:"/var/log/syslog"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Syslog: SyslogConfig{
			Path: "/var/log/syslog",
		},
	}
}
