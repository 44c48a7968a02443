package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styles used in the TUI
type Styles struct {
	Title  lipgloss.Style
	Report lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Prompt lipgloss.Style
}

// DefaultStyles returns the default style set
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Report: lipgloss.NewStyle(),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")),
	}
}
