package session

import (
	"errors"

	"github.com/abhisek/signmaster/internal/catalog"
)

var (
	// ErrOutOfRange is returned when classifying past the end of a queue.
	ErrOutOfRange = errors.New("session: cursor past end of queue")

	// ErrSessionIncomplete is returned when branching before every item
	// has been classified.
	ErrSessionIncomplete = errors.New("session: queue not complete")

	// ErrUnknownBranch is returned for a branch choice the engine does not know.
	ErrUnknownBranch = errors.New("session: unknown branch")

	// ErrUnknownVerdict is returned for a verdict other than StillLearning or Known.
	ErrUnknownVerdict = errors.New("session: unknown verdict")
)

// Mode selects which catalog items a session draws from.
type Mode int

const (
	ModeNewOnly Mode = iota // skip items already known
	ModeAll                 // include known items
)

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}
	return "new-only"
}

// Verdict is the learner's classification of the current item.
type Verdict int

const (
	VerdictStillLearning Verdict = iota
	VerdictKnown
)

// Phase represents where a queue is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	default:
		return "not-started"
	}
}

// Branch is the choice offered once a queue is complete.
type Branch int

const (
	BranchRestart               Branch = iota // back to category selection
	BranchContinueStillLearning               // drill the still-learning items
	BranchPracticeAll                         // replay the whole category
	BranchExit                                // leave practice
)

// Queue is one pass over a fixed, shuffled list of signs. A zero Queue has
// not been started.
type Queue struct {
	// Domain is the progress domain Known verdicts are written to.
	Domain string

	// Mode is the mode the queue was started with. Drill-down queues keep
	// the mode of the queue they came from.
	Mode Mode

	// Items is fixed at start and never reshuffled.
	Items []catalog.SignRecord

	// Cursor indexes the next item to classify.
	Cursor int

	// StillLearning and Mastered hold the ids classified so far. An id is in
	// at most one of them.
	StillLearning map[int]struct{}
	Mastered      map[int]struct{}

	// source is the category subset the session was started from. Practice
	// all replays it.
	source []catalog.SignRecord
	phase  Phase
}

func newQueue(domain string, mode Mode, items, source []catalog.SignRecord) *Queue {
	q := &Queue{
		Domain:        domain,
		Mode:          mode,
		Items:         items,
		StillLearning: make(map[int]struct{}),
		Mastered:      make(map[int]struct{}),
		source:        source,
		phase:         PhaseInProgress,
	}
	if len(items) == 0 {
		q.phase = PhaseComplete
	}
	return q
}

// Phase returns the queue's lifecycle phase.
func (q *Queue) Phase() Phase {
	if q == nil {
		return PhaseNotStarted
	}
	return q.phase
}

// Len returns the number of items in the queue.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Items)
}

// Remaining returns how many items are left to classify.
func (q *Queue) Remaining() int {
	if q == nil || q.Cursor >= len(q.Items) {
		return 0
	}
	return len(q.Items) - q.Cursor
}

// Complete reports whether every item has been classified. A nil queue has
// not started and is never complete.
func (q *Queue) Complete() bool {
	return q != nil && q.Cursor >= len(q.Items)
}

// Current returns the item under the cursor. ok is false once the queue is
// complete.
func (q *Queue) Current() (item catalog.SignRecord, ok bool) {
	if q == nil || q.Complete() {
		return catalog.SignRecord{}, false
	}
	return q.Items[q.Cursor], true
}
