package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"trailview/internal/app/ui/components"
)

// Update handles Bubble Tea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LogsLoadedMsg:
		m.fire(EventLoaded)
		m.err = nil
		m.allLogs = msg.Records

		// a fresh load replaces the filtered list wholesale
		m.filtered = msg.Records
		m.filter.Reset()
		m.blink.Stop()
		m.updateContent()

		m.log.Debug().Int("count", len(msg.Records)).Msg("Logs loaded")

		return m, nil

	case FetchFailedMsg:
		m.fire(EventFail)
		m.err = msg.Err
		m.blink.Stop()

		m.log.Error().Err(msg.Err).Msg("Log fetch failed")

		return m, nil

	case QueryAcceptedMsg:
		m.lastQuery = msg.Query
		m.filtered = m.filter.Apply(m.allLogs, msg.Query)
		m.updateContent()

		return m, m.waitForQuery()

	case RefreshRequestedMsg:
		return m, m.refresh()

	case tickMsg:
		m.blink.Update()
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.debouncer.Trigger(m.input.Value())
	}

	return m, cmd
}

// refresh starts a new fetch when no request is outstanding
func (m *Model) refresh() tea.Cmd {
	if !m.fsm.Can(EventRefresh) {
		return nil
	}

	m.fire(EventRefresh)
	m.blink.Start()

	return m.fetchCmd()
}

// resize recomputes component dimensions
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	chrome := components.HeaderHeight + components.SearchHeight + components.FooterHeight + 1

	bodyHeight := height - chrome
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	m.viewport.Width = width
	m.viewport.Height = bodyHeight
	m.input.Width = width - 4
	m.help.Width = width

	m.updateContent()
}
