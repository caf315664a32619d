// Package tui provides the interactive quiz and the styled terminal
// rendering for calculation results.
package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles. Colors stay in the 256-color range so rendering
// degrades cleanly on basic terminals.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	ChoiceStyle = lipgloss.NewStyle().PaddingLeft(2)
	PickedStyle = lipgloss.NewStyle().PaddingLeft(0).Bold(true).Foreground(lipgloss.Color("42"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2)
)
