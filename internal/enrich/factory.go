package enrich

import (
	"fmt"
	"log/slog"
)

// NewClient builds the encyclopedia client from configuration.
// Lookups flow caller → cache → retry → logging → HTTP.
func NewClient(cfg Config, logger *slog.Logger) (*CachedSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("enrich config: %w", err)
	}

	base := NewWikiSource(cfg)
	logged := WithLogging(base, logger)
	retried := WithRetry(logged, cfg.Retry)
	return WithCache(retried), nil
}
