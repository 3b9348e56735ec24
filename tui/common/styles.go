package common

import "github.com/charmbracelet/lipgloss"

var (
	// PlaceholderStyle styles the prompt line above the choices.
	PlaceholderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6600")).
				Padding(1, 0, 1, 1)

	// SelectedStyle highlights the choice under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// ItemStyle styles choices not under the cursor.
	ItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SeparatorStyle dims the divider between openers and the fixed entries.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45475A"))

	// StatusBarStyle styles the key hints under the choices.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)
)
