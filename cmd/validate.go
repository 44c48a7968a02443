package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timelog/internal/timelog"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the log file for problems",
	Long: `Parse the full log file and report on its health.

A syntax error (a line that is not 'YYYY-MM-DD HH:MM: description')
is fatal and shows the offending line. Entries whose timestamps run
backwards within a day are reported as warnings; hand-edited files can
be slightly off without losing data.`,
	Run: func(cmd *cobra.Command, args []string) {
		validateLog()
	},
}

// validateLog parses the backing file and reports grammar errors and
// out-of-order entries.
func validateLog() {
	if !configOK() {
		return
	}

	path, err := deps.LogPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Log file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	log, err := timelog.Load(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Status: ✗ %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix the line by hand (timelog edit); nothing was loaded")
		deps.Exit(1)
		return
	}

	warnings := log.Validate()

	_, _ = fmt.Fprintf(deps.Stdout, "Days:    %d\n", len(log.Blocks))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries: %d\n", log.Len())
	_, _ = fmt.Fprintf(deps.Stdout, "Out-of-order entries: %d\n", len(warnings))

	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		for _, w := range warnings {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", w)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if len(warnings) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Log file is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Status: ⚠ Log file has %d out-of-order %s\n",
			len(warnings), pluralize("entry", len(warnings)))
	}
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if word == "entry" {
		return "entries"
	}
	return word + "s"
}
