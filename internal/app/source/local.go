package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"

	"trailview/internal/app/errors"
	"trailview/internal/app/logs"
	"trailview/internal/config"
	"trailview/internal/config/logger"
)

// LocalSource reads log records directly from the server's log directory,
// mirroring the backend's own log endpoint: every matching file is read,
// only the newest limit lines are kept, newest first.
type LocalSource struct {
	dir      string
	limit    int
	matchers []glob.Glob
	log      logger.Logger
}

// NewLocalSource creates a LocalSource for the configured log directory
func NewLocalSource(cfg *config.Config, log logger.Logger) (*LocalSource, error) {
	matchers := make([]glob.Glob, 0, len(cfg.Logs.Patterns))

	for _, pattern := range cfg.Logs.Patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errors.ErrInvalidLogPattern, pattern, err)
		}

		matchers = append(matchers, g)
	}

	return &LocalSource{
		dir:      cfg.Logs.Dir,
		limit:    cfg.Logs.Limit,
		matchers: matchers,
		log:      log.WithComponent("SOURCE"),
	}, nil
}

// GetLogs reads all matching log files and returns the newest records first
func (s *LocalSource) GetLogs(ctx context.Context) ([]logs.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info().Str("dir", s.dir).Msg("Log directory does not exist")

			return []logs.Record{noLogsRecord()}, nil
		}

		return nil, fmt.Errorf("reading log directory: %w", err)
	}

	tail := newTailBuffer(s.limit)

	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if entry.IsDir() || !s.matches(entry.Name()) {
			continue
		}

		if err := s.readFile(filepath.Join(s.dir, entry.Name()), tail); err != nil {
			s.log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unreadable log file")
		}
	}

	records := tail.records()

	// newest first, matching the server endpoint
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	return records, nil
}

// readFile parses every line of one log file into the tail buffer
func (s *LocalSource) readFile(path string, tail *tailBuffer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		tail.push(logs.Parse(scanner.Text()))
	}

	return scanner.Err()
}

// matches reports whether a file name matches any configured pattern
func (s *LocalSource) matches(name string) bool {
	for _, g := range s.matchers {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// noLogsRecord is the placeholder entry returned for a missing directory
func noLogsRecord() logs.Record {
	return logs.Record{
		Datetime: time.Now().UTC().Format(time.RFC3339),
		Level:    "INFO",
		Filename: "Other",
		Lineno:   1,
		Module:   "Other",
		Message:  "No Logs Found",
		RawLog:   "No Logs Found",
	}
}

// tailBuffer keeps the most recent capacity records in insertion order
type tailBuffer struct {
	buf   []logs.Record
	head  int
	count int
}

func newTailBuffer(capacity int) *tailBuffer {
	return &tailBuffer{buf: make([]logs.Record, capacity)}
}

func (t *tailBuffer) push(r logs.Record) {
	if t.count < len(t.buf) {
		t.buf[(t.head+t.count)%len(t.buf)] = r
		t.count++

		return
	}

	t.buf[t.head] = r
	t.head = (t.head + 1) % len(t.buf)
}

func (t *tailBuffer) records() []logs.Record {
	out := make([]logs.Record, 0, t.count)
	for i := 0; i < t.count; i++ {
		out = append(out, t.buf[(t.head+i)%len(t.buf)])
	}

	return out
}
