package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/looplab/fsm"

	"trailview/internal/app/logs"
	"trailview/internal/app/search"
	"trailview/internal/app/ui/components"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

const queryChannelSize = 16

// Model represents the Bubble Tea model for the log viewer
type Model struct {
	ctx       context.Context
	source    logs.Source
	filter    *logs.Filter
	debouncer search.Debouncer
	queries   chan string

	fsm       *fsm.FSM
	allLogs   []logs.Record
	filtered  []logs.Record
	lastQuery string
	err       error

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	blink    *components.Blink
	help     help.Model
	keys     KeyMap

	width  int
	height int

	log logger.Logger
}

// fire sends a lifecycle event, ignoring illegal transitions
func (m *Model) fire(event string) {
	_ = m.fsm.Event(context.Background(), event)
}

// NewModel creates the log viewer model. Nothing is fetched until Init
// runs; the host starts the program and Bubble Tea calls Init exactly once.
func NewModel(ctx context.Context, src logs.Source, cfg *config.Config, log logger.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "search logs (min 3 chars)"
	input.Prompt = "/ "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = components.SpinnerStyle

	m := &Model{
		ctx:      ctx,
		source:   src,
		filter:   logs.NewFilter(),
		queries:  make(chan string, queryChannelSize),
		fsm:      newViewFSM(log),
		input:    input,
		viewport: viewport.New(components.DefaultViewportWidth, 0),
		spin:     spin,
		blink:    components.NewBlink(),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		log:      log.WithComponent("UI"),
	}

	m.debouncer = search.NewDebouncer(cfg.Search.Debounce, m.enqueueQuery)

	return m
}

// Init triggers the one-shot initial fetch and starts the tickers
func (m *Model) Init() tea.Cmd {
	m.fire(EventFetch)

	return tea.Batch(
		m.fetchCmd(),
		m.waitForQuery(),
		m.spin.Tick,
		m.tick(),
		textinput.Blink,
	)
}

// State returns the current lifecycle state, for the host and tests
func (m *Model) State() string {
	return m.fsm.Current()
}

// Filtered returns the records currently displayed
func (m *Model) Filtered() []logs.Record {
	return m.filtered
}

// enqueueQuery hands a debounced query to the Bubble Tea loop. Called
// from the debouncer's timer goroutine, never blocks it.
func (m *Model) enqueueQuery(query string) {
	select {
	case m.queries <- query:
	default:
	}
}

// fetchCmd fetches the full log list from the source
func (m *Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.source.GetLogs(m.ctx)
		if err != nil {
			return FetchFailedMsg{Err: err}
		}

		return LogsLoadedMsg{Records: records}
	}
}

// waitForQuery delivers the next accepted query as a message
func (m *Model) waitForQuery() tea.Cmd {
	return func() tea.Msg {
		query, ok := <-m.queries
		if !ok {
			return nil
		}

		return QueryAcceptedMsg{Query: query}
	}
}

// tick schedules the next animation frame
func (m *Model) tick() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
