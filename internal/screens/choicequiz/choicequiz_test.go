package choicequiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screens/results"
	"github.com/abhisek/signmaster/internal/screens/screenstest"
	"github.com/abhisek/signmaster/internal/store"
)

var keyEnter = screenstest.SpecialKey(tea.KeyEnter)

// answer presses the digit for the correct option, or the one after it.
func answer(s *QuizScreen, correct bool) {
	idx := s.questions[s.idx].CorrectIndex()
	if !correct {
		idx = (idx + 1) % 4
	}
	s.Update(screenstest.KeyPress(rune('1' + idx)))
}

func TestQuizGeneratesConfiguredSize(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryWarning)
	assert.Nil(t, s.Init())

	require.Len(t, s.questions, 4)
	for _, q := range s.questions {
		assert.Equal(t, catalog.CategoryWarning, q.Subject.Category)
		assert.NoError(t, q.Validate())
	}
	assert.Contains(t, s.View(100, 30), "Which sign is this?")
}

func TestQuizScoresAndFinishes(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryWarning)
	s.Init()

	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		answer(s, i != 1)
		assert.True(t, s.mc.Submitted)
		_, cmd = s.Update(keyEnter)
	}

	assert.Equal(t, 3, s.Scorecard().Correct())
	require.Len(t, s.missed, 1)
	assert.Equal(t, s.questions[1].Correct, s.missed[0].Sign)
	wrong := (s.questions[1].CorrectIndex() + 1) % 4
	assert.Equal(t, s.questions[1].Options[wrong], s.missed[0].Answer)

	msg, ok := screenstest.Exec(cmd).(router.ReplaceScreenMsg)
	require.True(t, ok, "last Enter replaces the quiz with results")
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)
}

func TestAnswerIsLockedOnceSubmitted(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryAll)
	s.Init()

	answer(s, true)
	answer(s, false)

	assert.Equal(t, 1, s.Scorecard().Answered())
	assert.Equal(t, 1, s.Scorecard().Correct())
}

func TestExamCoversWholeCatalog(t *testing.T) {
	svc := screenstest.Services(t)
	cat := screenstest.Catalog(t, svc)
	s := NewExam(svc, cat)
	s.Init()

	assert.Len(t, s.questions, cat.Len())
	assert.Equal(t, store.KindExam, s.kind)
	assert.Equal(t, "Master exam", s.Title())
}

func TestQuizInsufficientCatalog(t *testing.T) {
	svc := screenstest.Services(t)
	small := catalog.New("pl", "Poland", screenstest.Signs()[:3])

	s := New(svc, small, catalog.CategoryAll)
	s.Init()

	assert.Nil(t, s.Scorecard())
	assert.Contains(t, s.View(100, 30), "catalog too small")

	_, cmd := s.Update(keyEnter)
	assert.Nil(t, cmd)
}
