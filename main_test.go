package main

import (
	"os"
	"testing"
)

func TestRunVersion(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"timelog", "--version"}
	if code := run(); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"timelog", "--unknownflag"}
	if code := run(); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

func TestMainCallsExitWithRunResult(t *testing.T) {
	originalExit := exitFunc
	originalArgs := os.Args
	defer func() {
		exitFunc = originalExit
		os.Args = originalArgs
	}()

	var capturedCode int
	exitFunc = func(code int) { capturedCode = code }
	os.Args = []string{"timelog", "--version"}

	main()

	if capturedCode != 0 {
		t.Errorf("exit code = %d, want 0", capturedCode)
	}
}
