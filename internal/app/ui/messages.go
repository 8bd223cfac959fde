package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trailview/internal/app/logs"
)

// LogsLoadedMsg carries a completed log fetch
type LogsLoadedMsg struct {
	Records []logs.Record
}

// FetchFailedMsg carries a failed log fetch
type FetchFailedMsg struct {
	Err error
}

// QueryAcceptedMsg carries a debounced search query
type QueryAcceptedMsg struct {
	Query string
}

// RefreshRequestedMsg asks the view to reload its logs, sent by the
// directory watcher or the refresh key
type RefreshRequestedMsg struct{}

// RefreshRequested builds a refresh message for program senders
func RefreshRequested() tea.Msg {
	return RefreshRequestedMsg{}
}

// tickMsg drives the activity animation
type tickMsg time.Time
