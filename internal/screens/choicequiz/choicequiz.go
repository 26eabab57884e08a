// Package choicequiz runs a multiple-choice quiz: pick the sign's name from
// four options.
package choicequiz

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

// QuizScreen implements screen.Screen for a multiple-choice quiz.
type QuizScreen struct {
	svc      *screens.Services
	cat      *catalog.Catalog
	category catalog.Category
	kind     string
	size     int

	questions []quiz.Question
	idx       int
	mc        components.MultiChoice
	card      *quiz.Scorecard
	missed    []results.Miss
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.HeaderStatus = (*QuizScreen)(nil)

// New creates a quiz over category with the configured size.
func New(svc *screens.Services, cat *catalog.Catalog, category catalog.Category) *QuizScreen {
	return &QuizScreen{svc: svc, cat: cat, category: category, kind: store.KindChoice, size: svc.QuizSize}
}

// NewExam creates the master exam: one question for every sign.
func NewExam(svc *screens.Services, cat *catalog.Catalog) *QuizScreen {
	return &QuizScreen{svc: svc, cat: cat, category: catalog.CategoryAll, kind: store.KindExam, size: cat.Len()}
}

// Init generates the whole batch up front.
func (s *QuizScreen) Init() tea.Cmd {
	qs, err := s.svc.Generator(s.cat).GenerateChoice(screens.Subset(s.cat, s.category), s.size)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.questions = qs
	s.card = quiz.NewScorecard(len(qs))
	s.show(0)
	return nil
}

func (s *QuizScreen) show(i int) {
	s.idx = i
	q := s.questions[i]
	s.mc = components.NewMultiChoice("Which sign is this?", q.Options[:], q.CorrectIndex())
}

func (s *QuizScreen) Title() string {
	if s.kind == store.KindExam {
		return "Master exam"
	}
	return "Quiz · " + s.category.DisplayName()
}

func (s *QuizScreen) Status() string {
	if s.card == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d  ✓ %d", s.idx+1, s.card.Total(), s.card.Correct())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.mc.Submitted {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit quiz"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

// Scorecard exposes the running score.
func (s *QuizScreen) Scorecard() *quiz.Scorecard {
	return s.card
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.card == nil {
		return s, nil
	}

	if !s.mc.Submitted {
		s.mc, _ = s.mc.Update(kmsg)
		if s.mc.Submitted {
			s.record()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "space", " ":
		if s.card.Done() {
			return s, s.finish()
		}
		s.show(s.idx + 1)
	}
	return s, nil
}

func (s *QuizScreen) record() {
	q := s.questions[s.idx]
	correct := q.IsCorrect(s.mc.ChosenIndex)
	if err := s.card.Record(s.idx, correct); err != nil {
		s.errMsg = err.Error()
		return
	}
	if !correct {
		s.missed = append(s.missed, results.Miss{Sign: q.Correct, Answer: q.Options[s.mc.ChosenIndex]})
	}
}

func (s *QuizScreen) finish() tea.Cmd {
	r := results.New(s.svc, results.Result{
		Domain:   s.cat.Domain,
		Kind:     s.kind,
		Category: s.category,
		Total:    s.card.Total(),
		Correct:  s.card.Correct(),
		Missed:   s.missed,
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: r} }
}

func (s *QuizScreen) View(width, height int) string {
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

	clue := theme.Body.Width(cw - 6).Render(q.Subject.Description)
	if q.Subject.ImageRef != "" {
		clue += "\n" + theme.Hint.Render(q.Subject.ImageRef)
	}
	b.WriteString(components.Panel(clue, cw))
	b.WriteString("\n\n")
	b.WriteString(s.mc.View())

	if s.mc.Submitted {
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. It is " + q.Correct + "."))
		}
		b.WriteString("\n" + theme.Hint.Render("press Enter to continue"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
