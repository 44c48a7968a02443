// Package config handles the TOML configuration file and resolution of
// the log file location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"timelog/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "timelog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// LogFile is the default name of the backing log file
	LogFile = "timelog.txt"
)

// Config represents the application configuration
type Config struct {
	// LogFile overrides the location of the backing log file.
	// Empty means <config dir>/timelog/timelog.txt. A leading ~ is
	// expanded to the home directory.
	LogFile string `toml:"log_file"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Editor is the command used by `timelog edit`; empty falls back
	// to $VISUAL, then $EDITOR, then vi.
	Editor string `toml:"editor"`
}

// DefaultConfig returns a Config with sensible defaults:
// week starts on monday (ISO 8601), log file in the config directory,
// editor taken from the environment.
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
	}
}

// Validate checks that configured values are usable.
func (c Config) Validate() error {
	switch c.WeekStartDay {
	case "", "monday", "sunday":
		return nil
	default:
		return fmt.Errorf("invalid week_start_day %q: must be monday or sunday", c.WeekStartDay)
	}
}

// GetConfigPath returns the path to the config file, creating the
// config directory if needed. Uses the user config dir for
// cross-platform XDG compliance.
func GetConfigPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but malformed or invalid file is an error, so a
// typo never silently reverts settings.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveLogPath determines where the backing log file lives: the
// configured log_file if set, otherwise <config dir>/timelog/timelog.txt.
func ResolveLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return expandHome(cfg.LogFile)
	}
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFile), nil
}

func appDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
