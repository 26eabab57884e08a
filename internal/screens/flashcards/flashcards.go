// Package flashcards is the flip-card practice screen. Each card is sorted
// into "still learning" or "known"; known cards are saved immediately.
package flashcards

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/lookup"
	"github.com/abhisek/signmaster/internal/session"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/layout"
)

// FlashcardScreen implements screen.Screen for a practice queue.
type FlashcardScreen struct {
	svc      *screens.Services
	cat      *catalog.Catalog
	category catalog.Category

	queue   *session.Queue
	flipped bool
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)
var _ screen.HeaderStatus = (*FlashcardScreen)(nil)

// New creates a flashcard screen over the signs of category in cat.
func New(svc *screens.Services, cat *catalog.Catalog, category catalog.Category) *FlashcardScreen {
	return &FlashcardScreen{svc: svc, cat: cat, category: category}
}

func (s *FlashcardScreen) Init() tea.Cmd {
	svc, domain := s.svc, s.cat.Domain
	return func() tea.Msg {
		return snapshotLoadedMsg{Snap: svc.Progress.Load(context.Background(), domain)}
	}
}

func (s *FlashcardScreen) Title() string {
	return "Flashcards · " + s.category.DisplayName()
}

func (s *FlashcardScreen) Status() string {
	if s.queue == nil || s.queue.Len() == 0 {
		return ""
	}
	pos := s.queue.Cursor + 1
	if pos > s.queue.Len() {
		pos = s.queue.Len()
	}
	return fmt.Sprintf("card %d/%d", pos, s.queue.Len())
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	if s.queue == nil || s.queue.Complete() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←", Description: "Still learning"},
		{Key: "→", Description: "Known"},
	}
	if s.svc.Enrich != nil {
		hints = append(hints, layout.KeyHint{Key: "I", Description: "Look up"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Queue exposes the active queue.
func (s *FlashcardScreen) Queue() *session.Queue {
	return s.queue
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		items := screens.Subset(s.cat, s.category)
		s.setQueue(s.svc.Engine.Start(items, msg.Snap, session.ModeNewOnly))
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.queue == nil {
		return s, nil
	}
	if s.queue.Complete() {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "space", " ", "enter":
		s.flipped = !s.flipped
	case "left", "h":
		s.classify(session.VerdictStillLearning)
	case "right", "l":
		s.classify(session.VerdictKnown)
	case "i":
		if s.svc.Enrich == nil {
			return s, nil
		}
		if item, ok := s.queue.Current(); ok {
			target := lookup.New(s.svc, item)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: target} }
		}
	}
	return s, nil
}

// classify runs synchronously: a Known verdict is a single local write.
func (s *FlashcardScreen) classify(v session.Verdict) {
	if err := s.svc.Engine.ClassifyCurrent(context.Background(), s.queue, v); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.flipped = false
	if s.queue.Complete() {
		s.menu = s.buildMenu()
	}
}

func (s *FlashcardScreen) setQueue(q *session.Queue) {
	s.queue = q
	s.flipped = false
	s.errMsg = ""
	if q.Complete() {
		s.menu = s.buildMenu()
	}
}

func (s *FlashcardScreen) branch(choice session.Branch) tea.Cmd {
	next, err := s.svc.Engine.CompleteAndBranch(s.queue, choice)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	switch choice {
	case session.BranchRestart:
		return func() tea.Msg { return router.PopScreenMsg{} }
	case session.BranchExit:
		// Drop this screen and the category picker under it.
		return func() tea.Msg { return router.PopScreensMsg{Count: 2} }
	}
	s.setQueue(next)
	return nil
}

func (s *FlashcardScreen) buildMenu() components.Menu {
	sum := session.BuildSummary(s.queue)
	var items []components.MenuItem
	if sum.CanDrill() {
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Continue with still learning (%d)", sum.StillLearning),
			Action: func() tea.Cmd { return s.branch(session.BranchContinueStillLearning) },
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "Practice all signs in this category",
			Action: func() tea.Cmd { return s.branch(session.BranchPracticeAll) },
		},
		components.MenuItem{
			Label:  "Choose another category",
			Action: func() tea.Cmd { return s.branch(session.BranchRestart) },
		},
		components.MenuItem{
			Label:  "Back to dashboard",
			Action: func() tea.Cmd { return s.branch(session.BranchExit) },
		},
	)
	return components.NewMenu(items)
}
