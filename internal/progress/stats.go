package progress

import (
	"context"

	"github.com/abhisek/signmaster/internal/store"
)

// Stats summarizes a learner's standing in one domain.
type Stats struct {
	Domain       string
	Known        int // known ids present in the catalog
	Stale        int // known ids the catalog no longer has
	Total        int
	Percent      float64
	Level        Level
	ExamUnlocked bool
	QuizzesTaken int
	AverageScore float64 // mean quiz accuracy in [0, 1]
}

// Stats loads the domain's snapshot and combines it with quiz history.
// catalogIDs are the sign ids of the current catalog; stored ids outside it
// are reported as Stale and do not count toward mastery.
func (s *Store) Stats(ctx context.Context, domain string, catalogIDs []int, attempts []store.QuizAttempt) Stats {
	snap := s.Load(ctx, domain)
	return BuildStats(snap, catalogIDs, attempts)
}

// BuildStats is the pure form of Store.Stats.
func BuildStats(snap Snapshot, catalogIDs []int, attempts []store.QuizAttempt) Stats {
	known := snap.CountIn(catalogIDs)
	total := len(catalogIDs)
	st := Stats{
		Domain:       snap.Domain,
		Known:        known,
		Stale:        snap.Count() - known,
		Total:        total,
		Percent:      Percent(known, total),
		Level:        MasteryLevel(known, total),
		ExamUnlocked: ExamUnlocked(known),
		QuizzesTaken: len(attempts),
	}

	if len(attempts) > 0 {
		var sum float64
		for _, a := range attempts {
			sum += a.Score()
		}
		st.AverageScore = sum / float64(len(attempts))
	}
	return st
}
