package enrich

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetrySource is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetrySource struct {
	inner  Source
	config RetryConfig
}

// WithRetry wraps a Source with retry logic.
func WithRetry(s Source, cfg RetryConfig) Source {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetrySource{inner: s, config: cfg}
}

func (r *RetrySource) Lookup(ctx context.Context, name string) (*Page, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		page, err := r.inner.Lookup(ctx, name)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt, no sleep.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return unavail.Transient()
	}

	// Malformed responses will not fix themselves.
	return false
}

// backoff computes the wait duration for the given attempt.
func (r *RetrySource) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
