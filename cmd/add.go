package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timelog/internal/report"
	"timelog/internal/timelog"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Log a finished activity",
	Long: `Log a finished activity with the current time.

The entry marks when the activity ended; its duration is the time since
the previous entry of the day. Start each day by logging "arrived" (or
similar) when you sit down, so the first real activity has a start time.

Descriptions starting with ** count as slacking:

  timelog add arrived
  timelog add 'proposal draft'
  timelog add '** lunch'
  timelog add '**'                 Unnamed slack`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(args)
	},
}

// addEntry appends a new entry for now to the log file and reports the
// written line.
func addEntry(args []string) {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Describe what you just finished, e.g. 'timelog add code review'")
		deps.Exit(1)
		return
	}

	log, ok := loadLog()
	if !ok {
		return
	}

	e, err := log.Append(description, deps.Now())
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write the new entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the log file is writable: %s\n", log.Path())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", e)
	if since, ok := prevElapsed(log); ok {
		_, _ = fmt.Fprintf(deps.Stdout, "Elapsed since previous entry: %s\n", since)
	}
}

// prevElapsed formats the span covered by the entry that was just
// appended, when there is a predecessor on the same day.
func prevElapsed(log *timelog.Log) (string, bool) {
	if log.Empty() {
		return "", false
	}
	entries := log.Blocks[len(log.Blocks)-1].Entries
	if len(entries) < 2 {
		return "", false
	}
	span := entries[len(entries)-1].Timestamp.Sub(entries[len(entries)-2].Timestamp)
	return report.FormatDuration(span), true
}
