package enrich

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates that neither the title lookup nor the search
// produced a page.
var ErrNotFound = errors.New("enrich: no page found")

// ErrUnavailable indicates the encyclopedia could not be reached or answered
// with an error status. StatusCode is 0 for transport failures.
type ErrUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("encyclopedia unavailable (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("encyclopedia unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// Transient reports whether retrying could succeed.
func (e *ErrUnavailable) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// ErrRateLimit indicates the encyclopedia returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }
