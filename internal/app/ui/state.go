package ui

import (
	"context"

	"github.com/looplab/fsm"

	"trailview/internal/config/logger"
)

// View lifecycle states
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateReady   = "ready"
	StateFailed  = "failed"
)

// View lifecycle events
const (
	EventFetch   = "fetch"
	EventLoaded  = "loaded"
	EventFail    = "fail"
	EventRefresh = "refresh"
)

// newViewFSM creates the state machine driving the fetch lifecycle.
// A single fetch is in flight at a time: fetch and refresh are only
// legal from states with no outstanding request.
func newViewFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: EventFetch, Src: []string{StateIdle}, Dst: StateLoading},
			{Name: EventLoaded, Src: []string{StateLoading}, Dst: StateReady},
			{Name: EventFail, Src: []string{StateLoading}, Dst: StateFailed},
			{Name: EventRefresh, Src: []string{StateReady, StateFailed}, Dst: StateLoading},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("VIEW %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}
