package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailview/internal/app/errors"
	"trailview/internal/app/logs"
)

// loadModel drives a model to the ready state with the given records
func loadModel(t *testing.T, m *Model, records []logs.Record) {
	t.Helper()

	m.Init()

	_, cmd := m.Update(LogsLoadedMsg{Records: records})

	assert.Nil(t, cmd)
	require.Equal(t, StateReady, m.State())
}

func Test_Update_LogsLoaded_ReplacesBothLists(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	// a filter is active when the refresh lands
	m.Update(QueryAcceptedMsg{Query: "disk"})
	require.Len(t, m.Filtered(), 1)

	fresh := []logs.Record{{Message: "rebooted", RawLog: "rebooted"}}

	m.fire(EventRefresh)
	m.Update(LogsLoadedMsg{Records: fresh})

	assert.Equal(t, fresh, m.allLogs)
	assert.Equal(t, fresh, m.Filtered())
	assert.Equal(t, StateReady, m.State())
}

func Test_Update_FetchFailed(t *testing.T) {
	m, _ := newTestModel(t)

	m.Init()
	m.Update(FetchFailedMsg{Err: errors.ErrServerUnreachable})

	assert.Equal(t, StateFailed, m.State())
	assert.True(t, errors.Is(m.err, errors.ErrServerUnreachable))
}

func Test_Update_QueryAccepted_Filters(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	_, cmd := m.Update(QueryAcceptedMsg{Query: "disk"})

	require.Len(t, m.Filtered(), 1)
	assert.Equal(t, "disk full", m.Filtered()[0].Message)
	assert.Len(t, m.allLogs, 2)
	assert.NotNil(t, cmd)
}

func Test_Update_QueryAccepted_ShortQueryShowsAll(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	m.Update(QueryAcceptedMsg{Query: "disk"})
	require.Len(t, m.Filtered(), 1)

	m.Update(QueryAcceptedMsg{Query: "di"})

	assert.Len(t, m.Filtered(), 2)
}

func Test_Update_RefreshRequested(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	_, cmd := m.Update(RefreshRequestedMsg{})

	assert.NotNil(t, cmd)
	assert.Equal(t, StateLoading, m.State())
}

func Test_Update_RefreshRequested_IgnoredWhileLoading(t *testing.T) {
	m, _ := newTestModel(t)

	m.Init()
	require.Equal(t, StateLoading, m.State())

	_, cmd := m.Update(RefreshRequestedMsg{})

	assert.Nil(t, cmd)
	assert.Equal(t, StateLoading, m.State())
}

func Test_Update_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func Test_Update_RefreshKey(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.NotNil(t, cmd)
	assert.Equal(t, StateLoading, m.State())
}

func Test_Update_TypingTriggersDebouncer(t *testing.T) {
	m, _ := newTestModel(t)

	loadModel(t, m, sampleRecords())

	for _, r := range "disk" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "disk", m.input.Value())
}

func Test_Update_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 120, m.width)
	assert.Greater(t, m.viewport.Height, 0)
}
