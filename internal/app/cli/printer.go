package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"trailview/internal/app/logs"
	"trailview/internal/app/ui/components"
)

const (
	minTermWidth     = 40
	fallbackWidth    = 80
	printerBadgeWrap = 2
)

// Printer formats log records for non-interactive output
type Printer struct {
	timestampStyle lipgloss.Style
	moduleStyles   map[string]lipgloss.Style
	width          int
}

// NewPrinter creates a Printer sized to the terminal
func NewPrinter() *Printer {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width < minTermWidth {
		width = fallbackWidth
	}

	return &Printer{
		timestampStyle: components.TimestampStyle,
		moduleStyles:   make(map[string]lipgloss.Style),
		width:          width,
	}
}

// PrintRecords writes records to w, one line each, colored by level
func (p *Printer) PrintRecords(w io.Writer, records []logs.Record) {
	for _, r := range records {
		fmt.Fprintln(w, p.formatLine(r))
	}
}

// PrintJSON writes records to w as a JSON array
func (p *Printer) PrintJSON(w io.Writer, records []logs.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// formatLine formats a single record with colors, truncated to the terminal
func (p *Printer) formatLine(r logs.Record) string {
	levelStyle := lipgloss.NewStyle().
		Foreground(components.LevelColor(r.Level)).
		Bold(true)

	level := r.Level
	if len(level) > components.LevelBadgeWidth {
		level = level[:components.LevelBadgeWidth]
	}

	prefix := fmt.Sprintf("%s %s %s ",
		p.timestampStyle.Render(r.Datetime),
		levelStyle.Render(level),
		p.moduleStyle(r.Module).Render(r.Module),
	)

	message := strings.TrimRight(r.Message, "\n\r")

	available := p.width - lipgloss.Width(prefix) - printerBadgeWrap
	if available > 0 && len(message) > available {
		message = message[:available-1] + "…"
	}

	return prefix + message
}

// moduleStyle returns a consistent style for a backend module name
func (p *Printer) moduleStyle(module string) lipgloss.Style {
	if style, exists := p.moduleStyles[module]; exists {
		return style
	}

	style := components.ModuleStyle(module)
	p.moduleStyles[module] = style

	return style
}
