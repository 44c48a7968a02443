package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"timelog/internal/timelog"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the log file in your editor",
	Long: `Open the backing log file in a text editor for manual corrections.

The editor is taken from the 'editor' config key, then $VISUAL, then
$EDITOR, falling back to vi. After the editor exits the file is parsed
again and any problems are reported, so a bad edit surfaces
immediately instead of on the next report.`,
	Run: func(cmd *cobra.Command, args []string) {
		editLog()
	},
}

// editLog runs the editor on the log file and re-validates afterwards.
func editLog() {
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

	editor := resolveEditor()
	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Editor %q failed\n", editor)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set the 'editor' config key or the EDITOR environment variable")
		deps.Exit(1)
		return
	}

	log, err := timelog.Load(path)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: The edited log no longer parses")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'timelog edit' again to fix the reported line")
		deps.Exit(1)
		return
	}

	for _, w := range log.Validate() {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", w)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Log file saved: %d entries across %d days\n", log.Len(), len(log.Blocks))
}

// resolveEditor picks the editor command: config, then environment,
// then vi.
func resolveEditor() string {
	if deps.Config.Editor != "" {
		return deps.Config.Editor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}
