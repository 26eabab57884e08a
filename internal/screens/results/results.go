// Package results shows a finished quiz's score and records the attempt in
// quiz history.
package results

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/store"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/layout"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

// Miss is one wrongly answered question.
type Miss struct {
	Sign   string
	Answer string
}

// Result is a finished quiz.
type Result struct {
	Domain   string
	Kind     string
	Category catalog.Category
	Total    int
	Correct  int
	Missed   []Miss
}

// Accuracy returns Correct/Total in [0, 1].
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

type savedMsg struct {
	Err error
}

// ResultsScreen implements screen.Screen for the end of a quiz.
type ResultsScreen struct {
	svc    *screens.Services
	result Result
	saved  bool
	errMsg string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for r.
func New(svc *screens.Services, r Result) *ResultsScreen {
	return &ResultsScreen{svc: svc, result: r}
}

// Init records the attempt. Quiz answers never change the known set.
func (s *ResultsScreen) Init() tea.Cmd {
	if s.svc.Attempts == nil {
		return nil
	}
	repo, r := s.svc.Attempts, s.result
	return func() tea.Msg {
		err := repo.AppendAttempt(context.Background(), store.QuizAttempt{
			Domain:     r.Domain,
			Kind:       r.Kind,
			Category:   string(r.Category),
			Total:      r.Total,
			Correct:    r.Correct,
			FinishedAt: time.Now(),
		})
		return savedMsg{Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

// Saved reports whether the attempt reached quiz history.
func (s *ResultsScreen) Saved() bool {
	return s.saved
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			slog.Warn("record quiz attempt failed", "domain", s.result.Domain, "error", msg.Err)
			s.errMsg = "Could not save this result."
			return s, nil
		}
		s.saved = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// verdict picks the headline for an accuracy.
func verdict(acc float64) string {
	switch {
	case acc >= 0.9:
		return "Excellent!"
	case acc >= 0.7:
		return "Well done"
	case acc >= 0.5:
		return "Getting there"
	default:
		return "Keep practicing"
	}
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(screens.Centered(width, theme.Title, verdict(r.Accuracy())))
	b.WriteString("\n\n")
	b.WriteString(screens.Centered(width, theme.Body.Bold(true),
		fmt.Sprintf("%d / %d correct  (%.0f%%)", r.Correct, r.Total, r.Accuracy()*100)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("", r.Accuracy(), false, cw).View()))
	b.WriteString("\n\n")

	if len(r.Missed) > 0 {
		lines := []string{theme.Label.Render("Review these:")}
		for _, m := range r.Missed {
			lines = append(lines, theme.Incorrect.Render("✗ ")+theme.Body.Render(m.Sign)+
				theme.Hint.Render("  you said "+m.Answer))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.Panel(strings.Join(lines, "\n"), cw)))
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(screens.Centered(width, theme.Incorrect, s.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(screens.Centered(width, theme.Hint, "press Enter to continue"))
	return b.String()
}
