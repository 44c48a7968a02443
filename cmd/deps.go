package cmd

import (
	"io"
	"os"
	"time"

	"timelog/internal/config"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Exit    func(code int)
	Now     func() time.Time
	LogPath func() (string, error)
	Config  config.Config

	// ConfigErr carries a config file problem found at startup. It is
	// checked by every command before touching the log, so a typo in
	// config.toml fails loudly instead of silently reverting settings
	// to defaults.
	ConfigErr error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	var cfgErr error
	if path, err := config.GetConfigPath(); err != nil {
		cfgErr = err
	} else if loaded, err := config.Load(path); err != nil {
		cfgErr = err
	} else {
		cfg = loaded
	}

	return &Deps{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
		Exit:      os.Exit,
		Now:       time.Now,
		LogPath:   func() (string, error) { return config.ResolveLogPath(cfg) },
		Config:    cfg,
		ConfigErr: cfgErr,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
