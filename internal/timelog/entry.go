// Package timelog implements the plain-text activity log: the entry
// model, the file parser, and append-only persistence. The on-disk
// format is line-oriented UTF-8 text, one entry per line, with a blank
// line between calendar days:
//
//	2026-08-29 09:00: arrived
//	2026-08-29 12:30: proposal draft
//	2026-08-29 13:10: ** lunch
//
// An entry's timestamp marks when the activity ended; the time it took
// is the gap since the previous entry of the same day. Descriptions
// starting with ** mark slack (non-work) time.
package timelog

import (
	"strings"
	"time"
)

// TimeLayout is the on-disk timestamp format, minute precision.
const TimeLayout = "2006-01-02 15:04"

// SlackMarker prefixes descriptions of non-work entries.
const SlackMarker = "**"

// Kind classifies an entry as work or slack time.
type Kind uint8

const (
	// KindWork marks time spent working.
	KindWork Kind = iota
	// KindSlack marks breaks and other non-work time.
	KindSlack
)

func (k Kind) String() string {
	if k == KindSlack {
		return "slack"
	}
	return "work"
}

// Entry is a single timestamped record in the log. Entries are
// immutable once created; corrections happen by editing the backing
// file and reloading.
type Entry struct {
	Timestamp   time.Time
	Description string
}

// Classify reports whether a description denotes work or slack time.
// Slack descriptions start with the ** marker; everything else is
// work. Any text is valid input.
func Classify(description string) Kind {
	if strings.HasPrefix(description, SlackMarker) {
		return KindSlack
	}
	return KindWork
}

// SlackLabel returns the slack activity name after the ** marker with
// leading whitespace trimmed. The empty string names the unnamed slack
// bucket (a bare "**" entry). Work descriptions yield "".
func SlackLabel(description string) string {
	if !strings.HasPrefix(description, SlackMarker) {
		return ""
	}
	return strings.TrimLeft(strings.TrimPrefix(description, SlackMarker), " \t")
}

// Kind returns the classification of the entry's description.
func (e Entry) Kind() Kind {
	return Classify(e.Description)
}

// String renders the entry in its on-disk line form.
func (e Entry) String() string {
	return e.Timestamp.Format(TimeLayout) + ": " + e.Description
}
