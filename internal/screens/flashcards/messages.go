package flashcards

import "github.com/abhisek/signmaster/internal/progress"

// snapshotLoadedMsg carries the known set needed to start a queue.
type snapshotLoadedMsg struct {
	Snap progress.Snapshot
}
