package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/picker"
	"github.com/abhisek/signmaster/internal/screens/screenstest"
	"github.com/abhisek/signmaster/internal/screens/signlist"
	"github.com/abhisek/signmaster/internal/store"
)

func loaded(t *testing.T, svc *screens.Services) *DashboardScreen {
	t.Helper()
	d := New(svc, screenstest.Catalog(t, svc))
	d.Update(screenstest.Exec(d.Init()))
	require.NotNil(t, d.stats)
	return d
}

func TestDashboardStats(t *testing.T) {
	svc := screenstest.Services(t)
	ctx := context.Background()
	require.NoError(t, svc.Progress.MergeKnown(ctx, screenstest.Domain, 1, 2, 3))
	require.NoError(t, svc.Attempts.AppendAttempt(ctx, store.QuizAttempt{
		Domain: screenstest.Domain, Kind: store.KindChoice, Total: 4, Correct: 2,
	}))

	d := loaded(t, svc)

	assert.Equal(t, 3, d.stats.Known)
	assert.Equal(t, 6, d.stats.Total)
	assert.Equal(t, 1, d.stats.QuizzesTaken)
	assert.Contains(t, d.Status(), "3/6 known")

	view := d.View(100, 30)
	assert.Contains(t, view, "3 of 6 signs")
	assert.Contains(t, view, progress.MasteryLevel(3, 6).String())
	assert.Contains(t, view, "1 taken, 50% average")
	assert.Contains(t, view, "Master exam locked")
}

func TestExamLockedBelowThreshold(t *testing.T) {
	svc := screenstest.Services(t)
	d := loaded(t, svc)

	exam := d.menu.Items[4]
	assert.Equal(t, "Master exam", exam.Label)
	assert.True(t, exam.Disabled)
	assert.Contains(t, exam.Hint, "100")
}

func TestMenuPushesPicker(t *testing.T) {
	svc := screenstest.Services(t)
	d := loaded(t, svc)

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg, ok := screenstest.Exec(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &picker.PickerScreen{}, msg.Screen)
	assert.Equal(t, "Flashcards", msg.Screen.Title())
}

func TestMenuPushesSignList(t *testing.T) {
	svc := screenstest.Services(t)
	d := loaded(t, svc)

	for range 3 {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg, ok := screenstest.Exec(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &signlist.SignListScreen{}, msg.Screen)
}

func TestResetFlow(t *testing.T) {
	svc := screenstest.Services(t)
	ctx := context.Background()
	require.NoError(t, svc.Progress.MergeKnown(ctx, screenstest.Domain, 1, 2))
	d := loaded(t, svc)

	// The locked exam is skipped on the way down to Reset.
	for range 4 {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, d.confirmReset)
	assert.Contains(t, d.View(100, 30), "Erase all known signs")

	_, cmd := d.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	assert.False(t, d.confirmReset)

	_, cmd = d.Update(screenstest.Exec(cmd))
	d.Update(screenstest.Exec(cmd))

	assert.Equal(t, 0, d.stats.Known)
	assert.Equal(t, 0, svc.Progress.Load(ctx, screenstest.Domain).Count())
}

func TestResetCancel(t *testing.T) {
	svc := screenstest.Services(t)
	require.NoError(t, svc.Progress.MergeKnown(context.Background(), screenstest.Domain, 1))
	d := loaded(t, svc)
	d.confirmReset = true

	_, cmd := d.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})

	assert.Nil(t, cmd)
	assert.False(t, d.confirmReset)
	assert.Equal(t, 1, svc.Progress.Load(context.Background(), screenstest.Domain).Count())
}

func TestDashboardIgnoresRemovedSigns(t *testing.T) {
	svc := screenstest.Services(t)
	require.NoError(t, svc.Progress.MergeKnown(context.Background(), screenstest.Domain, 1, 2, 901, 902, 903, 904, 905))

	d := loaded(t, svc)

	assert.Equal(t, 2, d.stats.Known)
	assert.Equal(t, 5, d.stats.Stale)
	assert.Contains(t, d.Status(), "2/6 known")
	assert.Contains(t, d.View(100, 30), "2 of 6 signs")
}

func TestDashboardCompactHeight(t *testing.T) {
	svc := screenstest.Services(t)
	require.NoError(t, svc.Progress.MergeKnown(context.Background(), screenstest.Domain, 1, 2, 3))
	d := loaded(t, svc)

	view := d.View(100, 18)
	assert.Contains(t, view, "3 of 6 signs")
	assert.Contains(t, view, "exam locked")
	assert.NotContains(t, view, "Quizzes")
	assert.Contains(t, view, "Flashcards")
}

func TestResumeReloadsStats(t *testing.T) {
	svc := screenstest.Services(t)
	d := loaded(t, svc)
	require.Equal(t, 0, d.stats.Known)

	require.NoError(t, svc.Progress.MergeKnown(context.Background(), screenstest.Domain, 5))
	d.Update(screenstest.Exec(d.Resume()))

	assert.Equal(t, 1, d.stats.Known)
}
