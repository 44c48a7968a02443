package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timelog/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the current configuration",
	Long: `Display the effective configuration and where it comes from.

timelog works without any configuration file; every setting has a
default:
  - log_file:       <config dir>/timelog/timelog.txt
  - week_start_day: monday
  - editor:         $VISUAL, then $EDITOR, then vi

To customize, create a config.toml at the location shown by this
command, e.g.:

  log_file = "~/notes/timelog.txt"
  week_start_day = "sunday"
  editor = "nano"`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// showConfig displays the current effective configuration. Unlike the
// other commands it still runs when config.toml is broken, so the user
// can see which file needs fixing.
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	logPath, err := deps.LogPath()
	if err != nil {
		logPath = fmt.Sprintf("(unresolved: %v)", err)
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for timelog")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:    %s\n", configPath)
	if deps.ConfigErr != nil {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:         File could not be loaded")
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load the config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", deps.ConfigErr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Fix or remove the file shown above")
		deps.Exit(1)
		return
	}
	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:         File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:         No file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintf(deps.Stdout, "log_file:       %s\n", logPath)
	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day: %s\n", deps.Config.WeekStartDay)
	editor := deps.Config.Editor
	if editor == "" {
		editor = "(from environment)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "editor:         %s\n", editor)
}
