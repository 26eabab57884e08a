// Package signlist is the searchable catalog browser.
package signlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/lookup"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/layout"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

type knownLoadedMsg struct {
	Snap progress.Snapshot
}

// SignListScreen filters the catalog by a search query and a category.
type SignListScreen struct {
	svc        *screens.Services
	cat        *catalog.Catalog
	categories []catalog.Category
	catIdx     int

	input   components.SearchInput
	results []catalog.SignRecord
	cursor  int
	offset  int
	known   progress.Snapshot
}

var _ screen.Screen = (*SignListScreen)(nil)
var _ screen.KeyHintProvider = (*SignListScreen)(nil)
var _ screen.Resumer = (*SignListScreen)(nil)

// New creates a sign list over cat.
func New(svc *screens.Services, cat *catalog.Catalog) *SignListScreen {
	s := &SignListScreen{
		svc:        svc,
		cat:        cat,
		categories: append([]catalog.Category{catalog.CategoryAll}, cat.Categories()...),
		input:      components.NewSearchInput("search by name or description", 40),
		known:      progress.NewSnapshot(cat.Domain),
	}
	s.refilter()
	return s
}

func (s *SignListScreen) Init() tea.Cmd {
	return s.loadKnown()
}

// Resume refreshes the known marks.
func (s *SignListScreen) Resume() tea.Cmd {
	return s.loadKnown()
}

func (s *SignListScreen) loadKnown() tea.Cmd {
	svc, domain := s.svc, s.cat.Domain
	return func() tea.Msg {
		return knownLoadedMsg{Snap: svc.Progress.Load(context.Background(), domain)}
	}
}

func (s *SignListScreen) Title() string {
	return "Signs"
}

func (s *SignListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Tab", Description: "Category"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// Category returns the active category filter.
func (s *SignListScreen) Category() catalog.Category {
	return s.categories[s.catIdx]
}

// Results returns the signs currently listed.
func (s *SignListScreen) Results() []catalog.SignRecord {
	return s.results
}

func (s *SignListScreen) refilter() {
	s.results = s.cat.Search(s.input.Value(), s.Category())
	if s.cursor >= len(s.results) {
		s.cursor = max(len(s.results)-1, 0)
	}
	if s.offset > s.cursor {
		s.offset = s.cursor
	}
}

func (s *SignListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case knownLoadedMsg:
		s.known = msg.Snap
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.catIdx = (s.catIdx + 1) % len(s.categories)
			s.refilter()
			return s, nil
		case "shift+tab":
			s.catIdx = (s.catIdx + len(s.categories) - 1) % len(s.categories)
			s.refilter()
			return s, nil
		case "up":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			if s.cursor < len(s.results) {
				target := lookup.New(s.svc, s.results[s.cursor])
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: target} }
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refilter()
	return s, cmd
}

func (s *SignListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n")

	var tabs []string
	for i, c := range s.categories {
		if i == s.catIdx {
			tabs = append(tabs, theme.Selected.Render("["+c.DisplayName()+"]"))
		} else {
			tabs = append(tabs, theme.Hint.Render(c.DisplayName()))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(theme.Hint.Render("No signs match."))
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(b.String()))
	}

	rows := height - 6
	if rows < 3 {
		rows = 3
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+rows {
		s.offset = s.cursor - rows + 1
	}
	end := min(s.offset+rows, len(s.results))

	for i := s.offset; i < end; i++ {
		sign := s.results[i]
		mark := "  "
		if s.known.Has(sign.ID) {
			mark = theme.Correct.Render("✓ ")
		}
		name := sign.LocalizedName
		if sign.CanonicalName != "" && sign.CanonicalName != sign.LocalizedName {
			name += theme.Hint.Render("  " + sign.CanonicalName)
		}
		line := mark + name
		if i == s.cursor {
			line = theme.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d signs", len(s.results), s.cat.Len())))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(b.String()))
}
