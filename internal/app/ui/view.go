package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trailview/internal/app/logs"
	"trailview/internal/app/ui/components"
	"trailview/internal/config"
)

// View returns the rendered log viewer
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(components.HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// headerView renders the title line with the activity indicator
func (m *Model) headerView() string {
	title := components.TitleStyle.Render(config.AppName)
	indicator := m.blink.Render(components.BlinkStyle)

	return fmt.Sprintf("%s %s %s", title, indicator,
		components.TimestampStyle.Render("server logs"))
}

// bodyView renders the main area for the current lifecycle state
func (m *Model) bodyView() string {
	switch m.fsm.Current() {
	case StateLoading:
		return fmt.Sprintf("\n %s Fetching logs…\n", m.spin.View())

	case StateFailed:
		return "\n " + components.ErrorStyle.Render(fmt.Sprintf("Fetch failed: %v", m.err)) +
			"\n " + components.TimestampStyle.Render("press ctrl+r to retry") + "\n"
	}

	if len(m.filtered) == 0 {
		return components.EmptyStateStyle.Render(" No matching log entries.")
	}

	return m.viewport.View()
}

// statusView renders the record counts and active query
func (m *Model) statusView() string {
	status := fmt.Sprintf("%d/%d entries", len(m.filtered), len(m.allLogs))

	if query := strings.TrimSpace(m.lastQuery); query != "" {
		status += fmt.Sprintf("  filter: %q", query)
	}

	return components.StatusStyle.Render(" " + status)
}

// updateContent rebuilds the viewport from the filtered records
func (m *Model) updateContent() {
	var b strings.Builder

	for _, r := range m.filtered {
		b.WriteString(renderRecord(r))
		b.WriteString("\n")
	}

	// newest entries first, so keep the viewport pinned to the top
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// renderRecord formats one record as a single styled line
func renderRecord(r logs.Record) string {
	level := lipgloss.NewStyle().
		Foreground(components.LevelColor(r.Level)).
		Bold(true).
		Render(padLevel(r.Level))

	module := r.Module
	if len(module) > components.ModuleMaxWidth {
		module = module[:components.ModuleMaxWidth-1] + "…"
	}

	return fmt.Sprintf("%s %s %s %s",
		components.TimestampStyle.Render(r.Datetime),
		level,
		components.ModuleStyle(module).Render(module),
		r.Message,
	)
}

// padLevel right-pads a level name to the badge width
func padLevel(level string) string {
	if len(level) >= components.LevelBadgeWidth {
		return level[:components.LevelBadgeWidth]
	}

	return level + strings.Repeat(" ", components.LevelBadgeWidth-len(level))
}
