package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	focusedMarkStyle = lipgloss.NewStyle().
				Foreground(successColor)

	stateStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	textStyle = lipgloss.NewStyle().
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	logStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
