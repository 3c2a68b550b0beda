package notify

import (
	"context"
	"log/slog"
)

// Transport delivers a rendered notification. Implementations must be
// safe for concurrent use. Delivery happens after the ledger commit, so
// a failed Send is logged but never retried against the same batch:
// at-most-once, by construction.
type Transport interface {
	// Send delivers the notification. Returns an error if delivery fails.
	Send(ctx context.Context, subject, body string) error
}

// LogTransport writes notifications to the structured log. It is the
// default transport; mail or webhook delivery plugs in behind the same
// interface.
type LogTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a logging transport. A nil logger falls back
// to slog.Default().
func NewLogTransport(logger *slog.Logger) *LogTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTransport{logger: logger.With("component", "notify")}
}

// Send logs the notification subject and body.
func (t *LogTransport) Send(ctx context.Context, subject, body string) error {
	t.logger.Info("notification", "subject", subject, "body", body)
	return nil
}
