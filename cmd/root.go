package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timelog/internal/report"
	"timelog/internal/timelog"
)

var rootCmd = &cobra.Command{
	Use:   "timelog",
	Short: "A plain-text personal time tracker",
	Long: `timelog keeps an append-only plain-text log of timestamped activity
entries and reports how the time between them was spent.

Each entry marks the moment an activity ended: log "arrived" when you
sit down, then log each activity as you finish it. Descriptions
starting with ** count as slacking instead of work.

Usage:
  timelog                          Show today's summary
  timelog add <description>        Log a finished activity
  timelog add '** coffee'          Log a break
  timelog day [N]                  Summary of the last N logged days
  timelog week [N]                 Summary of the last N weeks
  timelog edit                     Open the log file in your editor
  timelog validate                 Check the log file for problems
  timelog tui                      Interactive view

The log lives in a single hand-editable text file; run
'timelog config' to see where.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showReport(report.Window{Mode: report.ModeDay, Count: 1})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timelog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// configOK reports whether the config file loaded cleanly at startup,
// printing the shared Error/Details/Hint triple when it did not. Every
// command checks this first: a malformed config.toml must never
// silently fall back to defaults.
func configOK() bool {
	if deps.ConfigErr == nil {
		return true
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load the config file")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", deps.ConfigErr)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix or remove the file; run 'timelog config' for its expected contents")
	deps.Exit(1)
	return false
}

// loadLog resolves the log path and parses the backing file, printing
// the shared Error/Details/Hint triple on failure.
func loadLog() (*timelog.Log, bool) {
	if !configOK() {
		return nil, false
	}

	path, err := deps.LogPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine log file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil, false
	}

	log, err := timelog.Load(path)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load the time log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Fix the file by hand (timelog edit) or check that it is readable: %s\n", path)
		deps.Exit(1)
		return nil, false
	}
	return log, true
}

// showReport renders the aggregated window for the current log.
func showReport(w report.Window) {
	log, ok := loadLog()
	if !ok {
		return
	}

	r := report.Build(log, w, deps.Now(), report.Options{WeekStartDay: deps.Config.WeekStartDay})
	_, _ = fmt.Fprintf(deps.Stdout, "Report for %s:\n", w.Describe())
	_, _ = fmt.Fprint(deps.Stdout, report.Render(r))
}

// parseCount reads the optional trailing-count argument of the day and
// week commands; missing means 1.
func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("count must be a positive number, got %q", args[0])
	}
	return n, nil
}
