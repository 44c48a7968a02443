package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"timelog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal interface",
	Long: `Open a full-screen interactive view of the log.

The prompt at the bottom logs entries as you type them; lines starting
with ':' switch the report view instead:

  :d    today        :dN   last N days
  :w    this week    :wN   last N weeks
  :e    open the log in your editor
  :q    quit`,
	Run: func(cmd *cobra.Command, args []string) {
		launchTUI()
	},
}

// launchTUI loads the log and hands it to the bubbletea program.
func launchTUI() {
	log, ok := loadLog()
	if !ok {
		return
	}

	p := tea.NewProgram(tui.New(log, deps.Config), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Terminal interface failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
