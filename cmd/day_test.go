package cmd

import (
	"strings"
	"testing"

	"timelog/internal/report"
)

const sampleLog = `2026-08-28 09:00: arrived
2026-08-28 11:00: planning

2026-08-29 09:00: arrived
2026-08-29 10:30: code review
2026-08-29 11:00: ** coffee

2026-08-30 09:00: arrived
2026-08-30 12:00: parser work
`

func TestShowReportToday(t *testing.T) {
	d, _, stdout, stderr := testDeps(t, sampleLog)
	SetDeps(d)
	defer ResetDeps()

	showReport(report.Window{Mode: report.ModeDay, Count: 1})

	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Report for today:") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "3 h 0 min: parser work") {
		t.Errorf("missing latest day's activity:\n%s", out)
	}
	if strings.Contains(out, "code review") {
		t.Errorf("previous day leaked into a one-day window:\n%s", out)
	}
	if !strings.Contains(out, "Total work done: 3 h 0 min") {
		t.Errorf("wrong work total:\n%s", out)
	}
}

func TestShowReportMultipleDays(t *testing.T) {
	d, _, stdout, _ := testDeps(t, sampleLog)
	SetDeps(d)
	defer ResetDeps()

	showReport(report.Window{Mode: report.ModeDay, Count: 3})

	out := stdout.String()
	for _, want := range []string{"planning", "code review", "parser work", "** coffee"} {
		if !strings.Contains(out, want) {
			t.Errorf("three-day report missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "Total slacking: 0 h 30 min") {
		t.Errorf("wrong slack total:\n%s", out)
	}
}

func TestShowReportWeek(t *testing.T) {
	d, _, stdout, _ := testDeps(t, sampleLog)
	SetDeps(d)
	defer ResetDeps()

	// 2026-08-28..30 are Fri..Sun of one monday-start week.
	showReport(report.Window{Mode: report.ModeWeek, Count: 1})

	out := stdout.String()
	if !strings.Contains(out, "Report for this week:") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Total work done: 6 h 30 min") {
		t.Errorf("wrong weekly total:\n%s", out)
	}
}

func TestShowReportEmptyLog(t *testing.T) {
	d, _, stdout, _ := testDeps(t, "")
	SetDeps(d)
	defer ResetDeps()

	showReport(report.Window{Mode: report.ModeDay, Count: 1})

	out := stdout.String()
	if !strings.Contains(out, "Time since last entry: none yet") {
		t.Errorf("empty log must render the placeholder:\n%s", out)
	}
}

func TestRunWindowedBadCount(t *testing.T) {
	d, _, _, stderr := testDeps(t, sampleLog)
	exitCode := -1
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	runWindowed(report.ModeDay, []string{"zero"})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "positive number") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, 1, false},
		{[]string{"3"}, 3, false},
		{[]string{"0"}, 0, true},
		{[]string{"-2"}, 0, true},
		{[]string{"abc"}, 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCount(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseCount(%v) = %d, want %d", tt.args, got, tt.want)
		}
	}
}
