package ui

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailview/internal/config"
	"trailview/internal/config/logger"
)

func Test_ViewFSM_Lifecycle(t *testing.T) {
	cfg := config.DefaultConfig()
	machine := newViewFSM(logger.NewLoggerWithOutput(cfg, io.Discard))

	require.Equal(t, StateIdle, machine.Current())

	require.NoError(t, machine.Event(context.Background(), EventFetch))
	assert.Equal(t, StateLoading, machine.Current())

	require.NoError(t, machine.Event(context.Background(), EventLoaded))
	assert.Equal(t, StateReady, machine.Current())

	require.NoError(t, machine.Event(context.Background(), EventRefresh))
	assert.Equal(t, StateLoading, machine.Current())

	require.NoError(t, machine.Event(context.Background(), EventFail))
	assert.Equal(t, StateFailed, machine.Current())

	require.NoError(t, machine.Event(context.Background(), EventRefresh))
	assert.Equal(t, StateLoading, machine.Current())
}

func Test_ViewFSM_IllegalTransitions(t *testing.T) {
	cfg := config.DefaultConfig()
	machine := newViewFSM(logger.NewLoggerWithOutput(cfg, io.Discard))

	assert.Error(t, machine.Event(context.Background(), EventLoaded))
	assert.Error(t, machine.Event(context.Background(), EventRefresh))

	require.NoError(t, machine.Event(context.Background(), EventFetch))

	assert.Error(t, machine.Event(context.Background(), EventFetch))
	assert.Error(t, machine.Event(context.Background(), EventRefresh))
}
