package report

import (
	"time"

	"timelog/internal/timelog"
)

// ActivitySummary is the accumulated duration for one distinct
// description within the window. Names are the raw description text,
// case-sensitive, including the ** marker for named slack activities.
type ActivitySummary struct {
	Name     string
	Kind     timelog.Kind
	Duration time.Duration
}

// Report is the aggregated view of a window: per-activity totals with
// work listed before slack, overall work and slack totals, and the
// elapsed time since the log's last entry.
type Report struct {
	Window     Window
	Activities []ActivitySummary
	Work       time.Duration
	Slack      time.Duration

	// SinceLast is the wall-clock time since the last entry of the
	// whole log. HasLast is false for an empty log, where the value
	// is absent rather than zero.
	SinceLast time.Duration
	HasLast   bool
}

// Options adjusts aggregation behavior.
type Options struct {
	// WeekStartDay is "monday" or "sunday"; empty defaults to monday.
	WeekStartDay string
}

// Build aggregates the selected window of the log. Within each day
// block, the span between two adjacent entries is attributed to the
// later entry's description; the block's first entry (the arrival
// marker) contributes nothing. Activities appear work-first, each
// group in first-occurrence order. Zero-length spans are valid and
// add nothing.
func Build(log *timelog.Log, w Window, now time.Time, opts Options) Report {
	r := Report{Window: w}

	summaries := make(map[string]*ActivitySummary)
	var workOrder, slackOrder []string

	for _, block := range selectBlocks(log, w, opts.WeekStartDay) {
		for i := 1; i < len(block.Entries); i++ {
			e := block.Entries[i]
			span := e.Timestamp.Sub(block.Entries[i-1].Timestamp)
			kind := e.Kind()

			s, seen := summaries[e.Description]
			if !seen {
				s = &ActivitySummary{Name: e.Description, Kind: kind}
				summaries[e.Description] = s
				if kind == timelog.KindSlack {
					slackOrder = append(slackOrder, e.Description)
				} else {
					workOrder = append(workOrder, e.Description)
				}
			}
			s.Duration += span

			if kind == timelog.KindSlack {
				r.Slack += span
			} else {
				r.Work += span
			}
		}
	}

	r.Activities = make([]ActivitySummary, 0, len(summaries))
	for _, name := range workOrder {
		r.Activities = append(r.Activities, *summaries[name])
	}
	for _, name := range slackOrder {
		r.Activities = append(r.Activities, *summaries[name])
	}

	r.SinceLast, r.HasLast = log.SinceLast(now)
	return r
}
