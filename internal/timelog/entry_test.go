package timelog

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        Kind
	}{
		{"team meeting", KindWork},
		{"day of learning: time logger", KindWork},
		{"** lunch", KindSlack},
		{"**tea", KindSlack},
		{"**", KindSlack},
		{"", KindWork},
		{"* single star", KindWork},
		{" ** leading space is work", KindWork},
	}

	for _, tt := range tests {
		if got := Classify(tt.description); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.description, got, tt.want)
		}
	}
}

func TestSlackLabel(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"** lunch", "lunch"},
		{"**tea", "tea"},
		{"**", ""},
		{"**  double space", "double space"},
		{"not slack", ""},
	}

	for _, tt := range tests {
		if got := SlackLabel(tt.description); got != tt.want {
			t.Errorf("SlackLabel(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestEntryKind(t *testing.T) {
	e := Entry{Description: "** nap"}
	if e.Kind() != KindSlack {
		t.Errorf("expected slack, got %v", e.Kind())
	}
	e = Entry{Description: "refactor parser"}
	if e.Kind() != KindWork {
		t.Errorf("expected work, got %v", e.Kind())
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Timestamp:   time.Date(2022, 6, 9, 6, 2, 0, 0, time.Local),
		Description: "arrived",
	}
	if got := e.String(); got != "2022-06-09 06:02: arrived" {
		t.Errorf("String() = %q", got)
	}
}

func TestKindString(t *testing.T) {
	if KindWork.String() != "work" {
		t.Errorf("KindWork.String() = %q", KindWork.String())
	}
	if KindSlack.String() != "slack" {
		t.Errorf("KindSlack.String() = %q", KindSlack.String())
	}
}
