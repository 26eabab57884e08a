// Package truefalse runs a true/false quiz: does this name belong to the
// sign shown?
package truefalse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/quiz"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/results"
	"github.com/abhisek/signmaster/internal/store"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/layout"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

// TrueFalseScreen implements screen.Screen for a true/false quiz.
type TrueFalseScreen struct {
	svc      *screens.Services
	cat      *catalog.Catalog
	category catalog.Category

	questions []quiz.TrueFalseQuestion
	idx       int
	answered  bool
	answer    bool
	card      *quiz.Scorecard
	missed    []results.Miss
	errMsg    string
}

var _ screen.Screen = (*TrueFalseScreen)(nil)
var _ screen.KeyHintProvider = (*TrueFalseScreen)(nil)
var _ screen.HeaderStatus = (*TrueFalseScreen)(nil)

// New creates a true/false quiz over category.
func New(svc *screens.Services, cat *catalog.Catalog, category catalog.Category) *TrueFalseScreen {
	return &TrueFalseScreen{svc: svc, cat: cat, category: category}
}

func (s *TrueFalseScreen) Init() tea.Cmd {
	qs, err := s.svc.Generator(s.cat).GenerateTrueFalse(screens.Subset(s.cat, s.category), s.svc.QuizSize)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.questions = qs
	s.card = quiz.NewScorecard(len(qs))
	return nil
}

func (s *TrueFalseScreen) Title() string {
	return "True or false · " + s.category.DisplayName()
}

func (s *TrueFalseScreen) Status() string {
	if s.card == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d  ✓ %d", s.idx+1, s.card.Total(), s.card.Correct())
}

func (s *TrueFalseScreen) KeyHints() []layout.KeyHint {
	if s.answered {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit quiz"}}
	}
	return []layout.KeyHint{
		{Key: "T / ←", Description: "True"},
		{Key: "F / →", Description: "False"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

// Scorecard exposes the running score.
func (s *TrueFalseScreen) Scorecard() *quiz.Scorecard {
	return s.card
}

func (s *TrueFalseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.card == nil {
		return s, nil
	}

	key := kmsg.String()
	if !s.answered {
		switch key {
		case "t", "y", "left":
			s.submit(true)
		case "f", "n", "right":
			s.submit(false)
		}
		return s, nil
	}

	switch key {
	case "enter", "space", " ":
		if s.card.Done() {
			return s, s.finish()
		}
		s.idx++
		s.answered = false
	}
	return s, nil
}

func (s *TrueFalseScreen) submit(answer bool) {
	q := s.questions[s.idx]
	s.answered = true
	s.answer = answer
	correct := q.IsCorrect(answer)
	if err := s.card.Record(s.idx, correct); err != nil {
		s.errMsg = err.Error()
		return
	}
	if !correct {
		said := "false"
		if answer {
			said = "true"
		}
		s.missed = append(s.missed, results.Miss{Sign: q.Subject.LocalizedName, Answer: said + " for " + q.DisplayedName})
	}
}

func (s *TrueFalseScreen) finish() tea.Cmd {
	r := results.New(s.svc, results.Result{
		Domain:   s.cat.Domain,
		Kind:     store.KindTrueFalse,
		Category: s.category,
		Total:    s.card.Total(),
		Correct:  s.card.Correct(),
		Missed:   s.missed,
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: r} }
}

func (s *TrueFalseScreen) View(width, height int) string {
	if s.card == nil {
		if s.errMsg != "" {
			return screens.RenderError(width, s.errMsg)
		}
		return screens.RenderLoading(width, "Preparing questions...")
	}

	q := s.questions[s.idx]
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.NewProgressBar("", float64(s.card.Answered())/float64(s.card.Total()), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(components.Panel(theme.Body.Width(cw-6).Render(q.Subject.Description), cw))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Is this sign called"))
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(q.DisplayedName + "?"))
	b.WriteString("\n\n")

	if !s.answered {
		b.WriteString(theme.Correct.Render("[T] True") + "     " + theme.Incorrect.Render("[F] False"))
	} else {
		if q.IsCorrect(s.answer) {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. This is " + q.Subject.LocalizedName + "."))
		}
		b.WriteString("\n" + theme.Hint.Render("press Enter to continue"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
