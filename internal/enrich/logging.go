package enrich

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// LoggingSource is a decorator that logs every lookup.
type LoggingSource struct {
	inner  Source
	logger *slog.Logger
}

// WithLogging wraps a Source with structured logging. A nil logger uses
// slog.Default.
func WithLogging(s Source, logger *slog.Logger) Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingSource{inner: s, logger: logger}
}

func (l *LoggingSource) Lookup(ctx context.Context, name string) (*Page, error) {
	start := time.Now()
	page, err := l.inner.Lookup(ctx, name)
	latency := time.Since(start)

	switch {
	case err == nil:
		l.logger.Debug("encyclopedia lookup", "name", name, "page", page.PageID, "latency", latency)
	case errors.Is(err, ErrNotFound):
		l.logger.Info("encyclopedia lookup found nothing", "name", name, "latency", latency)
	default:
		l.logger.Warn("encyclopedia lookup failed", "name", name, "latency", latency, "error", err)
	}
	return page, err
}
