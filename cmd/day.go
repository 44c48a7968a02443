package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timelog/internal/report"
)

// dayCmd represents the day report command
var dayCmd = &cobra.Command{
	Use:     "day [N]",
	Aliases: []string{"d"},
	Short:   "Summarize the last N logged days",
	Long: `Summarize work and slack time over the last N logged days (default 1).

Days are counted from the most recent day in the log, not from today,
so a log you stopped updating on Friday still reports Friday.

Examples:
  timelog day          Today's (latest day's) summary
  timelog day 5        The last five logged days together`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWindowed(report.ModeDay, args)
	},
}

// weekCmd represents the week report command
var weekCmd = &cobra.Command{
	Use:     "week [N]",
	Aliases: []string{"w"},
	Short:   "Summarize the last N calendar weeks",
	Long: `Summarize work and slack time over the last N calendar weeks
(default 1). The current week is the one containing the most recent
day in the log; the week's starting day comes from week_start_day in
the config file (monday unless configured otherwise).

Examples:
  timelog week         This week's summary
  timelog week 2       This week and the previous one`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWindowed(report.ModeWeek, args)
	},
}

func runWindowed(mode report.Mode, args []string) {
	n, err := parseCount(args)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass a positive number, e.g. 'timelog day 3'")
		deps.Exit(1)
		return
	}
	showReport(report.Window{Mode: mode, Count: n})
}
