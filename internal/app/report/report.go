package report

import (
	"time"

	"github.com/getsentry/sentry-go"

	"trailview/internal/config"
	"trailview/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Reporter forwards unexpected errors to an external tracker
type Reporter interface {
	CaptureError(err error)
	Flush()
}

// sentryReporter implements Reporter via Sentry
type sentryReporter struct {
	enabled bool
	log     logger.Logger
}

// NewReporter creates a Reporter; without a DSN it is a no-op
func NewReporter(cfg *config.Config, log logger.Logger) Reporter {
	r := &sentryReporter{log: log.WithComponent("REPORT")}

	if cfg.Sentry.DSN == "" {
		return r
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.Sentry.DSN,
		Release: config.AppName + "@" + config.Version,
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("Error reporting disabled")

		return r
	}

	r.enabled = true

	return r
}

// CaptureError records an error with the tracker
func (r *sentryReporter) CaptureError(err error) {
	if !r.enabled || err == nil {
		return
	}

	sentry.CaptureException(err)
}

// Flush delivers any buffered events before shutdown
func (r *sentryReporter) Flush() {
	if !r.enabled {
		return
	}

	sentry.Flush(flushTimeout)
}
