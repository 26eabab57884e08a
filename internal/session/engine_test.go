package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/store"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testSigns(n int) []catalog.SignRecord {
	signs := make([]catalog.SignRecord, n)
	for i := range signs {
		signs[i] = catalog.SignRecord{
			ID:            i + 1,
			CanonicalName: fmt.Sprintf("Sign %d", i+1),
			LocalizedName: fmt.Sprintf("Značka %d", i+1),
			Category:      catalog.CategoryWarning,
		}
	}
	return signs
}

// recordingWriter counts merges and can fail on demand.
type recordingWriter struct {
	merged [][]int
	fail   bool
}

func (w *recordingWriter) MergeKnown(_ context.Context, _ string, ids ...int) error {
	if w.fail {
		return errors.New("write failed")
	}
	w.merged = append(w.merged, ids)
	return nil
}

func ids(items []catalog.SignRecord) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestStartNewOnlyExcludesKnown(t *testing.T) {
	signs := testSigns(20)
	snap := progress.NewSnapshot("cz", 2, 4, 6, 8, 19)

	for seed := uint64(0); seed < 25; seed++ {
		q := Start(signs, snap, ModeNewOnly, testRand(seed))
		require.Equal(t, 15, q.Len())
		for _, it := range q.Items {
			if snap.Has(it.ID) {
				t.Fatalf("seed %d: known id %d in NewOnly queue", seed, it.ID)
			}
		}
	}
}

func TestStartAllKeepsEverything(t *testing.T) {
	signs := testSigns(12)
	snap := progress.NewSnapshot("cz", 1, 2, 3)

	q := Start(signs, snap, ModeAll, testRand(7))
	assert.Equal(t, 12, q.Len())
	assert.ElementsMatch(t, ids(signs), ids(q.Items))
	assert.Equal(t, PhaseInProgress, q.Phase())
	assert.Equal(t, 0, q.Cursor)
	assert.Empty(t, q.StillLearning)
	assert.Empty(t, q.Mastered)
}

func TestStartDoesNotMutateInput(t *testing.T) {
	signs := testSigns(10)
	before := ids(signs)
	Start(signs, progress.NewSnapshot("cz"), ModeAll, testRand(3))
	assert.Equal(t, before, ids(signs))
}

func TestStartShufflesUniformly(t *testing.T) {
	// Each of 3 items should lead the queue about a third of the time.
	signs := testSigns(3)
	rng := testRand(42)
	counts := map[int]int{}
	const runs = 3000
	for i := 0; i < runs; i++ {
		q := Start(signs, progress.NewSnapshot("cz"), ModeAll, rng)
		counts[q.Items[0].ID]++
	}
	for id, c := range counts {
		if c < 850 || c > 1150 {
			t.Errorf("id %d led %d/%d queues, want about %d", id, c, runs, runs/3)
		}
	}
}

func TestClassifyExhaustsQueue(t *testing.T) {
	eng := NewEngine(&recordingWriter{}, testRand(1))
	q := eng.Start(testSigns(9), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	for i := 0; i < q.Len(); i++ {
		v := VerdictStillLearning
		if i%3 == 0 {
			v = VerdictKnown
		}
		require.NoError(t, eng.ClassifyCurrent(ctx, q, v))
	}

	assert.Equal(t, 9, q.Cursor)
	assert.True(t, q.Complete())
	assert.Equal(t, PhaseComplete, q.Phase())
	assert.Equal(t, 9, len(q.StillLearning)+len(q.Mastered))
	for id := range q.Mastered {
		_, both := q.StillLearning[id]
		assert.False(t, both, "id %d in both sets", id)
	}
}

func TestClassifyPastEnd(t *testing.T) {
	eng := NewEngine(nil, testRand(1))
	q := eng.Start(testSigns(1), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))
	err := eng.ClassifyCurrent(ctx, q, VerdictKnown)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 1, q.Cursor, "cursor must not move past the end")
}

func TestClassifyEmptyQueue(t *testing.T) {
	eng := NewEngine(nil, nil)
	q := eng.Start(nil, progress.NewSnapshot("cz"), ModeNewOnly)
	assert.Equal(t, PhaseComplete, q.Phase())
	assert.ErrorIs(t, eng.ClassifyCurrent(context.Background(), q, VerdictKnown), ErrOutOfRange)
}

func TestClassifyUnknownVerdict(t *testing.T) {
	eng := NewEngine(nil, testRand(1))
	q := eng.Start(testSigns(2), progress.NewSnapshot("cz"), ModeAll)
	err := eng.ClassifyCurrent(context.Background(), q, Verdict(9))
	assert.ErrorIs(t, err, ErrUnknownVerdict)
	assert.Equal(t, 0, q.Cursor)
}

func TestKnownWritesThroughOncePerVerdict(t *testing.T) {
	w := &recordingWriter{}
	eng := NewEngine(w, testRand(2))
	q := eng.Start(testSigns(4), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))
	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictStillLearning))
	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))

	require.Len(t, w.merged, 2)
	assert.Equal(t, []int{q.Items[0].ID}, w.merged[0])
	assert.Equal(t, []int{q.Items[2].ID}, w.merged[1])
}

func TestKnownWriteFailureIsSwallowed(t *testing.T) {
	eng := NewEngine(&recordingWriter{fail: true}, testRand(2))
	q := eng.Start(testSigns(2), progress.NewSnapshot("cz"), ModeAll)

	err := eng.ClassifyCurrent(context.Background(), q, VerdictKnown)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Cursor)
	assert.Len(t, q.Mastered, 1)
}

func TestCompleteAndBranchRequiresCompletion(t *testing.T) {
	eng := NewEngine(nil, testRand(1))
	q := eng.Start(testSigns(3), progress.NewSnapshot("cz"), ModeAll)

	_, err := eng.CompleteAndBranch(q, BranchRestart)
	assert.ErrorIs(t, err, ErrSessionIncomplete)
}

func TestCompleteAndBranchRestartAndExit(t *testing.T) {
	eng := NewEngine(nil, testRand(1))
	q := eng.Start(nil, progress.NewSnapshot("cz"), ModeAll)

	for _, b := range []Branch{BranchRestart, BranchExit} {
		next, err := eng.CompleteAndBranch(q, b)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	_, err := eng.CompleteAndBranch(q, Branch(99))
	assert.ErrorIs(t, err, ErrUnknownBranch)
}

func TestDrillDownKeepsOrder(t *testing.T) {
	eng := NewEngine(nil, testRand(11))
	q := eng.Start(testSigns(8), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	var want []int
	for i := 0; i < q.Len(); i++ {
		v := VerdictKnown
		if i%2 == 1 {
			v = VerdictStillLearning
			want = append(want, q.Items[i].ID)
		}
		require.NoError(t, eng.ClassifyCurrent(ctx, q, v))
	}

	drill, err := eng.CompleteAndBranch(q, BranchContinueStillLearning)
	require.NoError(t, err)
	require.NotNil(t, drill)
	assert.Equal(t, want, ids(drill.Items))
	assert.Equal(t, 0, drill.Cursor)
	assert.Empty(t, drill.StillLearning)
	assert.Empty(t, drill.Mastered)
	assert.Equal(t, PhaseInProgress, drill.Phase())
	assert.Equal(t, PhaseComplete, q.Phase(), "completed queue is not reopened")
}

func TestPracticeAllAfterDrill(t *testing.T) {
	signs := testSigns(6)
	eng := NewEngine(nil, testRand(5))
	q := eng.Start(signs, progress.NewSnapshot("cz", 1, 2, 3), ModeNewOnly)
	ctx := context.Background()
	require.Equal(t, 3, q.Len())

	for !q.Complete() {
		require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictStillLearning))
	}
	drill, err := eng.CompleteAndBranch(q, BranchContinueStillLearning)
	require.NoError(t, err)
	for !drill.Complete() {
		require.NoError(t, eng.ClassifyCurrent(ctx, drill, VerdictKnown))
	}

	all, err := eng.CompleteAndBranch(drill, BranchPracticeAll)
	require.NoError(t, err)
	assert.Equal(t, ModeAll, all.Mode)
	assert.ElementsMatch(t, ids(signs), ids(all.Items))
}

func TestFullPassLeavesNothingNew(t *testing.T) {
	ctx := context.Background()
	ps := progress.NewStore(store.NewMemoryKV())
	eng := NewEngine(ps, testRand(8))
	signs := testSigns(10)

	q := eng.Start(signs, ps.Load(ctx, "cz"), ModeNewOnly)
	require.Equal(t, 10, q.Len())
	for !q.Complete() {
		require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))
	}

	snap := ps.Load(ctx, "cz")
	assert.Equal(t, ids(signs), snap.IDs())

	again := eng.Start(signs, snap, ModeNewOnly)
	assert.Equal(t, 0, again.Len())
}

func TestAllKnownThenPracticeAll(t *testing.T) {
	signs := testSigns(3)
	snap := progress.NewSnapshot("cz", 1, 2, 3)
	eng := NewEngine(nil, testRand(4))

	newOnly := eng.Start(signs, snap, ModeNewOnly)
	assert.Equal(t, 0, newOnly.Len())
	assert.True(t, newOnly.Complete())

	all, err := eng.CompleteAndBranch(newOnly, BranchPracticeAll)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Len())

	direct := eng.Start(signs, snap, ModeAll)
	assert.Equal(t, 3, direct.Len())
}

func TestDrillAfterAlternatingVerdicts(t *testing.T) {
	eng := NewEngine(&recordingWriter{}, testRand(9))
	q := eng.Start(testSigns(5), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	verdicts := []Verdict{VerdictKnown, VerdictStillLearning, VerdictKnown, VerdictStillLearning, VerdictKnown}
	for _, v := range verdicts {
		require.NoError(t, eng.ClassifyCurrent(ctx, q, v))
	}

	drill, err := eng.CompleteAndBranch(q, BranchContinueStillLearning)
	require.NoError(t, err)
	assert.Equal(t, []int{q.Items[1].ID, q.Items[3].ID}, ids(drill.Items))
}

func TestBuildSummary(t *testing.T) {
	eng := NewEngine(nil, testRand(6))
	q := eng.Start(testSigns(4), progress.NewSnapshot("cz"), ModeAll)
	ctx := context.Background()

	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))
	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictStillLearning))
	require.NoError(t, eng.ClassifyCurrent(ctx, q, VerdictKnown))

	s := BuildSummary(q)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Mastered)
	assert.Equal(t, 1, s.StillLearning)
	assert.Equal(t, 1, s.Remaining)
	assert.Equal(t, []int{q.Items[0].ID, q.Items[2].ID}, s.MasteredIDs)
	assert.True(t, s.CanDrill())
}

func TestNilQueue(t *testing.T) {
	var q *Queue
	assert.Equal(t, PhaseNotStarted, q.Phase())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, q.Remaining())
	assert.False(t, q.Complete())

	eng := NewEngine(nil, nil)
	assert.ErrorIs(t, eng.ClassifyCurrent(context.Background(), nil, VerdictKnown), ErrOutOfRange)
	next, err := eng.CompleteAndBranch(nil, BranchExit)
	assert.ErrorIs(t, err, ErrSessionIncomplete)
	assert.Nil(t, next)
	assert.Equal(t, Summary{}, BuildSummary(nil))
}
