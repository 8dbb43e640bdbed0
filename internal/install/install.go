// Package install registers this server in the Claude Desktop client
// configuration. One-time setup concern; nothing here runs at serve time.
package install

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

const configFileName = "claude_desktop_config.json"

// Run merges an mcpServers stanza pointing at the current executable into
// the client config under configDir, creating directory and file as
// needed. An empty configDir resolves the platform-conventional location.
func Run(configDir string, log *zap.Logger) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	if configDir == "" {
		configDir, err = platformConfigDir()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	path := filepath.Join(configDir, configFileName)

	cfg := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("existing config %s is not valid JSON: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	servers, _ := cfg["mcpServers"].(map[string]any)
	if servers == nil {
		servers = make(map[string]any)
	}
	servers["shellwright"] = map[string]any{"command": exe}
	cfg["mcpServers"] = servers

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	log.Info("registered server in client config",
		zap.String("config", path),
		zap.String("command", exe))
	return nil
}

// platformConfigDir resolves the Claude Desktop config directory by
// platform convention.
func platformConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "Claude"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Claude"), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "Claude"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, ".config", "Claude"), nil
	}
}
