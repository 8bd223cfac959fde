package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"trailview/internal/app/errors"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// Watcher monitors the log directory and reports changes so the view
// can refresh without polling
type Watcher interface {
	Start(onChange func()) error
	Close()
}

// dirWatcher implements the Watcher interface over fsnotify
type dirWatcher struct {
	dir       string
	source    *LocalSource
	fsWatcher *fsnotify.Watcher
	onChange  func()
	timer     *time.Timer
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a Watcher over the configured log directory
func NewWatcher(cfg *config.Config, src *LocalSource, log logger.Logger) (Watcher, error) {
	if _, err := os.Stat(cfg.Logs.Dir); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrLogDirNotExist, cfg.Logs.Dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &dirWatcher{
		dir:       cfg.Logs.Dir,
		source:    src,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}, nil
}

// Start begins watching the log directory, invoking onChange after
// log file events settle
func (w *dirWatcher) Start(onChange func()) error {
	w.onChange = onChange

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents()

	w.log.Info().Str("dir", w.dir).Msg("Watching log directory")

	return nil
}

// Close stops the watcher and releases resources
func (w *dirWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.fsWatcher.Close()
}

// processEvents handles fsnotify events until the watcher is closed
func (w *dirWatcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent coalesces relevant file events into a single refresh
func (w *dirWatcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if !w.source.matches(filepath.Base(event.Name)) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(config.WatchDebounce, w.fire)
}

// fire invokes the change callback unless the watcher was closed
func (w *dirWatcher) fire() {
	w.mu.Lock()
	closed := w.closed
	w.timer = nil
	w.mu.Unlock()

	if closed {
		return
	}

	w.onChange()
}

// isRelevantEvent returns true if the event can change log content
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
