package store

import (
	"context"
	"time"
)

// KV is the scoped key-value persistence capability. Values are opaque
// strings; callers own their encoding.
type KV interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // finished_at >= From
	To    time.Time // finished_at <= To
}

// Quiz kinds recorded in the attempt history.
const (
	KindChoice    = "choice"
	KindTrueFalse = "truefalse"
	KindExam      = "exam"
)

// QuizAttempt is one finished quiz. Attempts feed statistics only; they
// never change which signs count as known.
type QuizAttempt struct {
	ID         string
	Sequence   int64
	Domain     string
	Kind       string
	Category   string
	Total      int
	Correct    int
	FinishedAt time.Time
}

// Score returns the attempt's accuracy in [0, 1].
func (a QuizAttempt) Score() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total)
}

// AttemptRepo provides append and query access to quiz history.
type AttemptRepo interface {
	// AppendAttempt records a finished quiz. A missing ID is generated.
	AppendAttempt(ctx context.Context, a QuizAttempt) error

	// Attempts returns a domain's attempts, newest first.
	Attempts(ctx context.Context, domain string, opts QueryOpts) ([]QuizAttempt, error)
}
