package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "", cfg.Terminal.DefaultShell)
	assert.Equal(t, "/var/log/syslog", cfg.Syslog.Path)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHELLWRIGHT_LOG_LEVEL", "debug")
	t.Setenv("SHELLWRIGHT_DEFAULT_SHELL", "/bin/zsh")
	t.Setenv("SHELLWRIGHT_SYSLOG_PATH", "/var/log/messages")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/bin/zsh", cfg.Terminal.DefaultShell)
	assert.Equal(t, "/var/log/messages", cfg.Syslog.Path)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/var/log/syslog", cfg.Syslog.Path)
}
