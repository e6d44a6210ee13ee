// Package config loads the tool's own TOML settings. The file is
// optional; a missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML config file for user preferences.
const FileName = "config.toml"

// Config represents user-facing configuration in TOML format.
type Config struct {
	// DefaultConfPath overrides the tmux config discovery order.
	DefaultConfPath string `toml:"default_conf_path"`

	// Deprecated adds entries to the built-in deprecated table:
	// old name -> replacement ("" for removed outright).
	Deprecated map[string]string `toml:"deprecated"`

	// Colors extends color validation.
	Colors ColorSettings `toml:"colors"`

	// Plugins configures plugin-consistency checking.
	Plugins PluginSettings `toml:"plugins"`

	// Watch configures watch mode.
	Watch WatchSettings `toml:"watch"`

	// Logs configures the debug log.
	Logs LogSettings `toml:"logs"`
}

// ColorSettings extends the recognized color names.
type ColorSettings struct {
	// ExtraNames are additional valid color names (e.g. theme aliases).
	ExtraNames []string `toml:"extra_names"`
}

// PluginSettings configures @plugin validation.
type PluginSettings struct {
	// Pattern overrides the owner/repo identifier pattern.
	Pattern string `toml:"pattern"`

	// Expected pins the allowed plugin set; empty disables the check.
	Expected []string `toml:"expected"`
}

// WatchSettings configures live revalidation.
type WatchSettings struct {
	// DebounceMS coalesces rapid write bursts (default: 200).
	DebounceMS int `toml:"debounce_ms"`
}

// LogSettings configures the rotating debug log.
type LogSettings struct {
	DebugLevel         string `toml:"debug_level"`
	DebugFormat        string `toml:"debug_format"`
	DebugMaxMB         int    `toml:"debug_max_mb"`
	DebugBackups       int    `toml:"debug_backups"`
	DebugRetentionDays int    `toml:"debug_retention_days"`
	DebugCompress      bool   `toml:"debug_compress"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Watch: WatchSettings{DebounceMS: 200},
	}
}

// Dir returns the config directory (~/.config/tmux-doctor), creating it
// if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "tmux-doctor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// StateDir returns the directory for logs and other tool state.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tmux-doctor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state directory: %w", err)
	}
	return dir, nil
}

// Load reads config.toml from the config directory. A missing file is
// not an error; defaults apply.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(filepath.Join(dir, FileName))
}

// LoadFrom reads a specific TOML file, applying defaults for anything
// unset.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = 200
	}
	return cfg, nil
}

// DiscoverConfPath finds the tmux configuration to validate: explicit
// argument, then the configured default, then the standard locations.
func (c *Config) DiscoverConfPath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if c.DefaultConfPath != "" {
		return c.DefaultConfPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	candidates := []string{
		filepath.Join(home, ".tmux.conf"),
		filepath.Join(home, ".config", "tmux", "tmux.conf"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no tmux configuration file found (tried %s and %s)", candidates[0], candidates[1])
}
