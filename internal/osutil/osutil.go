// Package osutil abstracts the OS calls behind path resolution so that
// error paths (unset HOME, unwritable config dir) stay testable.
package osutil

import "os"

// PathProvider is the minimal surface needed to locate and create the
// application's config directory.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider delegates to the real OS.
type DefaultPathProvider struct{}

// UserConfigDir returns the root directory for user configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates path along with any missing parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider. Production code uses
// DefaultPathProvider; tests swap it out.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider replaces the provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider restores the default provider (for testing cleanup).
func ResetProvider() {
	Provider = DefaultPathProvider{}
}
