// Package report computes work/slack summaries over a trailing window
// of the log and renders them for display.
package report

import (
	"fmt"

	"timelog/internal/timelog"
	"timelog/internal/timeutil"
)

// Mode selects whether a window counts day blocks or calendar weeks.
type Mode uint8

const (
	// ModeDay windows over trailing day blocks.
	ModeDay Mode = iota
	// ModeWeek windows over trailing calendar weeks.
	ModeWeek
)

// Window selects the trailing portion of the log to aggregate: the
// last Count day blocks, or the day blocks inside the last Count
// calendar weeks. The current day/week is anchored at the most recent
// day block's date rather than wall-clock today, so catching up on a
// stale log still reports the days that were actually logged.
type Window struct {
	Mode  Mode
	Count int
}

// Describe returns a human-readable name for the window, used in
// report headers.
func (w Window) Describe() string {
	n := w.Count
	if n < 1 {
		n = 1
	}
	switch w.Mode {
	case ModeWeek:
		if n == 1 {
			return "this week"
		}
		return fmt.Sprintf("last %d weeks", n)
	default:
		if n == 1 {
			return "today"
		}
		return fmt.Sprintf("last %d days", n)
	}
}

// selectBlocks picks the day blocks covered by the window.
// weekStartDay ("monday" or "sunday") only matters in week mode.
func selectBlocks(log *timelog.Log, w Window, weekStartDay string) []timelog.DayBlock {
	if log.Empty() {
		return nil
	}

	n := w.Count
	if n < 1 {
		n = 1
	}

	blocks := log.Blocks
	switch w.Mode {
	case ModeWeek:
		anchor := blocks[len(blocks)-1].Date
		cutoff := timeutil.StartOfWeek(anchor, weekStartDay).AddDate(0, 0, -7*(n-1))

		// Blocks are in chronological order; find the first one
		// inside the window and take everything after it.
		for i, b := range blocks {
			if !b.Date.Before(cutoff) {
				return blocks[i:]
			}
		}
		return nil
	default:
		if n > len(blocks) {
			n = len(blocks)
		}
		return blocks[len(blocks)-n:]
	}
}
