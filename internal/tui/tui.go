// Package tui provides the interactive terminal view: a live report
// over the log with a prompt for logging entries and switching report
// windows, in the spirit of the classic gtimelog prompt.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/config"
	"timelog/internal/report"
	"timelog/internal/timelog"
)

// editorFinishedMsg signals that the external editor exited.
type editorFinishedMsg struct{ err error }

// Model is the root TUI model
type Model struct {
	log    *timelog.Log
	cfg    config.Config
	window report.Window

	input  textinput.Model
	keys   KeyMap
	styles Styles

	status string
	errMsg string

	width  int
	height int

	now func() time.Time
}

// New creates a TUI model over an already-loaded log.
func New(log *timelog.Log, cfg config.Config) Model {
	input := textinput.New()
	input.Placeholder = "what did you just finish? (:d / :w / :dN / :wN / :e / :q)"
	input.Prompt = "> "
	input.Focus()

	return Model{
		log:    log,
		cfg:    cfg,
		window: report.Window{Mode: report.ModeDay, Count: 1},
		input:  input,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		now:    time.Now,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("editor failed: %v", msg.err)
			return m, nil
		}
		return m.reload(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles the entered line: a ":" prefix runs a command, any
// other text is logged as a new entry.
func (m Model) submit() (Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.status = ""
	m.errMsg = ""

	if line == "" {
		return m, nil
	}
	if strings.HasPrefix(line, ":") {
		return m.runCommand(line)
	}

	e, err := m.log.Append(line, m.now())
	if err != nil {
		m.errMsg = fmt.Sprintf("could not log entry: %v", err)
		return m, nil
	}
	m.status = "Logged: " + e.String()
	return m, nil
}

// runCommand dispatches the prompt commands: :d[N] and :w[N] switch
// the report window, :e opens the editor, :q quits.
func (m Model) runCommand(line string) (Model, tea.Cmd) {
	cmd := line[1:]
	switch {
	case cmd == "q":
		return m, tea.Quit
	case cmd == "e":
		return m, m.openEditor()
	case strings.HasPrefix(cmd, "d"), strings.HasPrefix(cmd, "w"):
		mode := report.ModeDay
		if cmd[0] == 'w' {
			mode = report.ModeWeek
		}
		n := 1
		if rest := cmd[1:]; rest != "" {
			parsed, err := strconv.Atoi(rest)
			if err != nil || parsed < 1 {
				m.errMsg = fmt.Sprintf("bad count in %q", line)
				return m, nil
			}
			n = parsed
		}
		m.window = report.Window{Mode: mode, Count: n}
		return m, nil
	default:
		m.errMsg = fmt.Sprintf("unknown command %q (try :d, :w, :e, :q)", line)
		return m, nil
	}
}

// openEditor suspends the TUI and runs the configured editor on the
// log file; the log is reloaded when the editor exits.
func (m Model) openEditor() tea.Cmd {
	editor := m.cfg.Editor
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, m.log.Path())
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// reload reparses the backing file after an external edit.
func (m Model) reload() Model {
	fresh, err := timelog.Load(m.log.Path())
	if err != nil {
		m.errMsg = fmt.Sprintf("edited log no longer parses: %v", err)
		return m
	}
	m.log = fresh
	if warnings := fresh.Validate(); len(warnings) > 0 {
		m.errMsg = fmt.Sprintf("%d out-of-order entries after edit", len(warnings))
	} else {
		m.status = "Log reloaded"
	}
	return m
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("timelog - " + m.window.Describe()))
	b.WriteByte('\n')

	r := report.Build(m.log, m.window, m.now(), report.Options{WeekStartDay: m.cfg.WeekStartDay})
	b.WriteString(m.styles.Report.Render(report.Render(r)))
	b.WriteByte('\n')

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteByte('\n')
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Prompt.Render(m.input.View()))
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render("enter: log entry · :d/:w day/week view · :dN/:wN last N · :e edit · :q quit"))
	b.WriteByte('\n')

	return b.String()
}
