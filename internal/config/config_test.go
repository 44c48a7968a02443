package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timelog/internal/osutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q, want monday", cfg.WeekStartDay)
	}
	if cfg.LogFile != "" || cfg.Editor != "" {
		t.Errorf("expected empty path/editor defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		weekStart string
		wantErr   bool
	}{
		{"monday", false},
		{"sunday", false},
		{"", false},
		{"tuesday", true},
		{"Sunday", true},
	}
	for _, tt := range tests {
		cfg := Config{WeekStartDay: tt.weekStart}
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(week_start_day=%q) error = %v, wantErr %v", tt.weekStart, err, tt.wantErr)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("missing config must load defaults, got %v", err)
	}
	if cfg.WeekStartDay != "monday" {
		t.Errorf("WeekStartDay = %q, want monday", cfg.WeekStartDay)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `log_file = "/tmp/worklog.txt"
week_start_day = "sunday"
editor = "nano"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "/tmp/worklog.txt" || cfg.WeekStartDay != "sunday" || cfg.Editor != "nano" {
		t.Errorf("loaded config = %+v", cfg)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("week_start_day = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML must fail loudly, not fall back to defaults")
	}
}

func TestLoadInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`week_start_day = "friday"`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "week_start_day") {
		t.Errorf("expected week_start_day validation error, got %v", err)
	}
}

func TestResolveLogPathConfigured(t *testing.T) {
	path, err := ResolveLogPath(Config{LogFile: "/var/log/me/timelog.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if path != "/var/log/me/timelog.txt" {
		t.Errorf("path = %q", path)
	}
}

func TestResolveLogPathTildeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	path, err := ResolveLogPath(Config{LogFile: "~/notes/timelog.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, "notes", "timelog.txt") {
		t.Errorf("path = %q", path)
	}
}

type stubProvider struct {
	dir string
	err error
}

func (s stubProvider) UserConfigDir() (string, error) { return s.dir, s.err }
func (s stubProvider) MkdirAll(string, os.FileMode) error {
	return nil
}

func TestResolveLogPathDefault(t *testing.T) {
	osutil.SetProvider(stubProvider{dir: "/stub/config"})
	defer osutil.ResetProvider()

	path, err := ResolveLogPath(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/stub/config", AppName, LogFile) {
		t.Errorf("path = %q", path)
	}
}

func TestGetConfigPathProviderError(t *testing.T) {
	osutil.SetProvider(stubProvider{err: os.ErrPermission})
	defer osutil.ResetProvider()

	if _, err := GetConfigPath(); err == nil {
		t.Error("expected error when the config dir cannot be resolved")
	}
}
