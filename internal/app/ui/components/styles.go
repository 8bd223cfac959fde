package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across the viewer
var (
	// TitleStyle for the header title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// TimestampStyle for record timestamps
	TimestampStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// HelpStyle for the footer help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgLevelError)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(2)

	// SpinnerStyle for the loading spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)

	// StatusStyle for the status bar
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// BlinkStyle for the refresh activity indicator
	BlinkStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)
)

// ModuleStyle returns a consistent style for a backend module name
func ModuleStyle(module string) lipgloss.Style {
	h := 0
	for _, c := range module {
		h = 31*h + int(c)
	}

	if h < 0 {
		h = -h
	}

	color := ModuleColorPalette[h%len(ModuleColorPalette)]

	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
