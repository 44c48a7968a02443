package report

import (
	"fmt"
	"strings"
	"time"
)

const separatorWidth = 50

// FormatDuration renders a duration at minute granularity in the
// report's "H h M min" form, e.g. "11 h 3 min" or "0 h 18 min".
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}

// Render produces the textual summary view: one line per activity in
// aggregation order, a separator, both totals, and the time since the
// last entry. Rendering is pure; the same report always yields the
// same bytes.
func Render(r Report) string {
	var b strings.Builder

	for _, a := range r.Activities {
		fmt.Fprintf(&b, "%s: %s\n", FormatDuration(a.Duration), a.Name)
	}

	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total work done: %s\n", FormatDuration(r.Work))
	fmt.Fprintf(&b, "Total slacking: %s\n", FormatDuration(r.Slack))

	if r.HasLast {
		fmt.Fprintf(&b, "Time since last entry: %s\n", FormatDuration(r.SinceLast))
	} else {
		b.WriteString("Time since last entry: none yet\n")
	}

	return b.String()
}
