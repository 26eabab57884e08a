package picker

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screens/choicequiz"
	"github.com/abhisek/signmaster/internal/screens/flashcards"
	"github.com/abhisek/signmaster/internal/screens/screenstest"
	"github.com/abhisek/signmaster/internal/screens/truefalse"
)

func TestPickerListsRandomAndPresentCategories(t *testing.T) {
	svc := screenstest.Services(t)
	p := New(svc, screenstest.Catalog(t, svc), PurposeChoice)

	require.Len(t, p.menu.Items, 3)
	assert.Equal(t, "Random", p.menu.Items[0].Label)
	assert.Equal(t, "6 signs", p.menu.Items[0].Hint)
	assert.Equal(t, "Warning", p.menu.Items[1].Label)
	assert.Equal(t, "4 signs", p.menu.Items[1].Hint)
	assert.Equal(t, "Prohibition", p.menu.Items[2].Label)
}

func TestPickerTargets(t *testing.T) {
	svc := screenstest.Services(t)
	cat := screenstest.Catalog(t, svc)

	assert.IsType(t, &flashcards.FlashcardScreen{}, New(svc, cat, PurposeFlashcards).Target(catalog.CategoryAll))
	assert.IsType(t, &choicequiz.QuizScreen{}, New(svc, cat, PurposeChoice).Target(catalog.CategoryAll))
	assert.IsType(t, &truefalse.TrueFalseScreen{}, New(svc, cat, PurposeTrueFalse).Target(catalog.CategoryAll))
}

func TestPickerEnterPushesCategory(t *testing.T) {
	svc := screenstest.Services(t)
	p := New(svc, screenstest.Catalog(t, svc), PurposeFlashcards)

	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg, ok := screenstest.Exec(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Flashcards · Prohibition", msg.Screen.Title())
}
