package cmd

import (
	"strings"
	"testing"
)

func TestResolveEditorFromConfig(t *testing.T) {
	d, _, _, _ := testDeps(t, "")
	d.Config.Editor = "micro"
	SetDeps(d)
	defer ResetDeps()

	t.Setenv("VISUAL", "code")
	t.Setenv("EDITOR", "vim")

	if got := resolveEditor(); got != "micro" {
		t.Errorf("resolveEditor() = %q, want config value", got)
	}
}

func TestResolveEditorFromEnvironment(t *testing.T) {
	d, _, _, _ := testDeps(t, "")
	SetDeps(d)
	defer ResetDeps()

	t.Setenv("VISUAL", "code")
	t.Setenv("EDITOR", "vim")
	if got := resolveEditor(); got != "code" {
		t.Errorf("resolveEditor() = %q, want $VISUAL", got)
	}

	t.Setenv("VISUAL", "")
	if got := resolveEditor(); got != "vim" {
		t.Errorf("resolveEditor() = %q, want $EDITOR", got)
	}

	t.Setenv("EDITOR", "")
	if got := resolveEditor(); got != "vi" {
		t.Errorf("resolveEditor() = %q, want vi fallback", got)
	}
}

func TestEditLogReportsEditorFailure(t *testing.T) {
	d, _, _, stderr := testDeps(t, "")
	d.Config.Editor = "/nonexistent/editor-binary"
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	editLog()

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "failed") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
