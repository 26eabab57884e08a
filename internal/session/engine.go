// Package session runs flashcard practice: it builds a shuffled queue from a
// category subset, tracks each classification and writes mastered signs
// through to progress as they happen.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/progress"
)

// ProgressWriter receives Known classifications.
type ProgressWriter interface {
	MergeKnown(ctx context.Context, domain string, ids ...int) error
}

// Start builds a queue over items. ModeNewOnly drops every item already in
// snap; ModeAll keeps them all. The result is shuffled once with rng, or
// with the global source when rng is nil. An empty result is returned as is.
func Start(items []catalog.SignRecord, snap progress.Snapshot, mode Mode, rng *rand.Rand) *Queue {
	source := slices.Clone(items)

	selected := make([]catalog.SignRecord, 0, len(items))
	for _, it := range items {
		if mode == ModeNewOnly && snap.Has(it.ID) {
			continue
		}
		selected = append(selected, it)
	}

	swap := func(i, j int) { selected[i], selected[j] = selected[j], selected[i] }
	if rng != nil {
		rng.Shuffle(len(selected), swap)
	} else {
		rand.Shuffle(len(selected), swap)
	}

	return newQueue(snap.Domain, mode, selected, source)
}

// Engine drives queues and persists Known verdicts.
type Engine struct {
	progress ProgressWriter
	rng      *rand.Rand
}

// NewEngine creates an engine writing through to pw. rng may be nil.
func NewEngine(pw ProgressWriter, rng *rand.Rand) *Engine {
	return &Engine{progress: pw, rng: rng}
}

// Start is Start using the engine's random source.
func (e *Engine) Start(items []catalog.SignRecord, snap progress.Snapshot, mode Mode) *Queue {
	return Start(items, snap, mode, e.rng)
}

// ClassifyCurrent records verdict for the item under the cursor and advances.
// A Known verdict is merged into progress immediately; a failed write is
// logged and does not stop the session.
func (e *Engine) ClassifyCurrent(ctx context.Context, q *Queue, verdict Verdict) error {
	item, ok := q.Current()
	if !ok {
		return ErrOutOfRange
	}

	switch verdict {
	case VerdictStillLearning:
		delete(q.Mastered, item.ID)
		q.StillLearning[item.ID] = struct{}{}
	case VerdictKnown:
		delete(q.StillLearning, item.ID)
		q.Mastered[item.ID] = struct{}{}
		if e.progress != nil {
			if err := e.progress.MergeKnown(ctx, q.Domain, item.ID); err != nil {
				slog.Warn("persist known sign failed", "domain", q.Domain, "sign", item.ID, "error", err)
			}
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVerdict, verdict)
	}

	q.Cursor++
	if q.Complete() {
		q.phase = PhaseComplete
	}
	return nil
}

// CompleteAndBranch acts on the learner's choice at the end of a queue.
// Restart and Exit return a nil queue. ContinueStillLearning returns the
// still-learning items in their original order without reshuffling.
// PracticeAll starts over the whole category in ModeAll.
func (e *Engine) CompleteAndBranch(q *Queue, choice Branch) (*Queue, error) {
	if !q.Complete() {
		return nil, ErrSessionIncomplete
	}

	switch choice {
	case BranchRestart, BranchExit:
		return nil, nil
	case BranchContinueStillLearning:
		drill := make([]catalog.SignRecord, 0, len(q.StillLearning))
		for _, it := range q.Items {
			if _, ok := q.StillLearning[it.ID]; ok {
				drill = append(drill, it)
			}
		}
		return newQueue(q.Domain, q.Mode, drill, q.source), nil
	case BranchPracticeAll:
		snap := progress.NewSnapshot(q.Domain)
		return Start(q.source, snap, ModeAll, e.rng), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBranch, choice)
	}
}
