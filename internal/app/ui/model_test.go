package ui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trailview/internal/app/errors"
	"trailview/internal/app/logs"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

func sampleRecords() []logs.Record {
	return []logs.Record{
		{
			Datetime: "2026-08-01T10:01:00",
			Level:    "ERROR",
			Module:   "Tasks",
			Message:  "disk full",
			RawLog:   "2026-08-01T10:01:00 [ERROR|tasks.py|L9]: disk full",
		},
		{
			Datetime: "2026-08-01T10:00:00",
			Level:    "INFO",
			Module:   "Other",
			Message:  "started",
			RawLog:   "2026-08-01T10:00:00 [INFO|main.py|L5]: started",
		},
	}
}

func newTestModel(t *testing.T) (*Model, *logs.MockSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	src := logs.NewMockSource(ctrl)

	cfg := config.DefaultConfig()
	cfg.Search.Debounce = 10 * time.Millisecond

	log := logger.NewLoggerWithOutput(cfg, io.Discard)

	m := NewModel(context.Background(), src, cfg, log)
	t.Cleanup(m.debouncer.Stop)

	return m, src
}

func Test_NewModel(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, StateIdle, m.State())
	assert.Empty(t, m.Filtered())
}

func Test_Init_StartsFetch(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()

	require.NotNil(t, cmd)
	assert.Equal(t, StateLoading, m.State())
}

func Test_FetchCmd_Success(t *testing.T) {
	m, src := newTestModel(t)

	src.EXPECT().GetLogs(gomock.Any()).Return(sampleRecords(), nil)

	msg := m.fetchCmd()()

	loaded, ok := msg.(LogsLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, sampleRecords(), loaded.Records)
}

func Test_FetchCmd_Failure(t *testing.T) {
	m, src := newTestModel(t)

	src.EXPECT().GetLogs(gomock.Any()).Return(nil, errors.ErrServerUnreachable)

	msg := m.fetchCmd()()

	failed, ok := msg.(FetchFailedMsg)
	require.True(t, ok)
	assert.True(t, errors.Is(failed.Err, errors.ErrServerUnreachable))
}

func Test_WaitForQuery_DeliversEnqueued(t *testing.T) {
	m, _ := newTestModel(t)

	m.enqueueQuery("error")

	msg := m.waitForQuery()()

	accepted, ok := msg.(QueryAcceptedMsg)
	require.True(t, ok)
	assert.Equal(t, "error", accepted.Query)
}

func Test_EnqueueQuery_NeverBlocks(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < queryChannelSize*2; i++ {
		m.enqueueQuery("query")
	}
}

func Test_Debouncer_FeedsQueryChannel(t *testing.T) {
	m, _ := newTestModel(t)

	m.debouncer.Trigger("disk")

	assert.Eventually(t, func() bool {
		select {
		case q := <-m.queries:
			return q == "disk"
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
