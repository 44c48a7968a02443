package osutil

import (
	"errors"
	"os"
	"testing"
)

type fakeProvider struct {
	dirErr   error
	mkdirErr error
	made     []string
}

func (f *fakeProvider) UserConfigDir() (string, error) {
	return "/fake", f.dirErr
}

func (f *fakeProvider) MkdirAll(path string, perm os.FileMode) error {
	f.made = append(f.made, path)
	return f.mkdirErr
}

func TestDefaultProviderDelegates(t *testing.T) {
	dir, err := DefaultPathProvider{}.UserConfigDir()
	osDir, osErr := os.UserConfigDir()
	if dir != osDir || (err == nil) != (osErr == nil) {
		t.Errorf("UserConfigDir mismatch: (%q, %v) vs (%q, %v)", dir, err, osDir, osErr)
	}
}

func TestSetAndResetProvider(t *testing.T) {
	fake := &fakeProvider{dirErr: errors.New("boom")}
	SetProvider(fake)
	defer ResetProvider()

	if _, err := Provider.UserConfigDir(); err == nil {
		t.Error("expected fake provider error")
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("ResetProvider left %T installed", Provider)
	}
}
