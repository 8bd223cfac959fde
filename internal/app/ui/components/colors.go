package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Log level colors
	FgLevelInfo  = lipgloss.Color("10") // Green
	FgLevelWarn  = lipgloss.Color("11") // Yellow
	FgLevelError = lipgloss.Color("9")  // Red
	FgLevelDebug = lipgloss.Color("8")  // Gray
)

// ModuleColorPalette provides distinct colors for backend module names
var ModuleColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#0d9488", Dark: "#2dd4bf"}, // Teal
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
	{Light: "#4f46e5", Dark: "#818cf8"}, // Indigo
}

// LevelColor maps a backend log level to its display color
func LevelColor(level string) lipgloss.Color {
	switch level {
	case "ERROR", "CRITICAL":
		return FgLevelError
	case "WARNING", "WARN":
		return FgLevelWarn
	case "DEBUG":
		return FgLevelDebug
	default:
		return FgLevelInfo
	}
}
