package truefalse

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screens/results"
	"github.com/abhisek/signmaster/internal/screens/screenstest"
)

var keyEnter = screenstest.SpecialKey(tea.KeyEnter)

func answerKey(correct, expected bool) tea.KeyPressMsg {
	if correct == expected {
		return screenstest.KeyPress('t')
	}
	return screenstest.KeyPress('f')
}

func TestTrueFalseRun(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryAll)
	s.Init()
	require.Len(t, s.questions, 4)

	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		q := s.questions[i]
		s.Update(answerKey(i%2 == 0, q.Expected))
		assert.True(t, s.answered)
		_, cmd = s.Update(keyEnter)
	}

	assert.Equal(t, 2, s.Scorecard().Correct())
	assert.Len(t, s.missed, 2)

	msg, ok := screenstest.Exec(cmd).(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)
}

func TestTrueFalseIgnoresOtherKeysBeforeAnswer(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryAll)
	s.Init()

	s.Update(keyEnter)
	s.Update(screenstest.KeyPress('x'))

	assert.False(t, s.answered)
	assert.Equal(t, 0, s.idx)
}

func TestTrueFalseViewShowsDisplayedName(t *testing.T) {
	svc := screenstest.Services(t)
	s := New(svc, screenstest.Catalog(t, svc), catalog.CategoryAll)
	s.Init()

	assert.Contains(t, s.View(100, 30), s.questions[0].DisplayedName)
}

func TestTrueFalseInsufficientCatalog(t *testing.T) {
	svc := screenstest.Services(t)
	one := catalog.New("pl", "Poland", screenstest.Signs()[:1])

	s := New(svc, one, catalog.CategoryAll)
	s.Init()

	assert.Nil(t, s.Scorecard())
	assert.Contains(t, s.View(100, 30), "Error")
}
