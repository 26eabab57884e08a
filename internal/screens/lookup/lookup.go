// Package lookup shows a sign's catalog entry together with the matching
// encyclopedia article.
package lookup

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/enrich"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

type pageLoadedMsg struct {
	Page *enrich.Page
	Err  error
}

// LookupScreen fetches the article for one sign.
type LookupScreen struct {
	svc     *screens.Services
	sign    catalog.SignRecord
	loading bool
	page    *enrich.Page
	err     error
}

var _ screen.Screen = (*LookupScreen)(nil)

// New creates a lookup screen for sign.
func New(svc *screens.Services, sign catalog.SignRecord) *LookupScreen {
	return &LookupScreen{svc: svc, sign: sign}
}

func (s *LookupScreen) Init() tea.Cmd {
	if s.svc.Enrich == nil {
		return nil
	}
	s.loading = true
	src, name := s.svc.Enrich, s.sign.CanonicalName
	return func() tea.Msg {
		page, err := src.Lookup(context.Background(), name)
		return pageLoadedMsg{Page: page, Err: err}
	}
}

func (s *LookupScreen) Title() string {
	return s.sign.CanonicalName
}

func (s *LookupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(pageLoadedMsg); ok {
		s.loading = false
		s.page, s.err = msg.Page, msg.Err
	}
	return s, nil
}

func (s *LookupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	entry := []string{theme.Title.Render(s.sign.CanonicalName)}
	if s.sign.LocalizedName != "" && s.sign.LocalizedName != s.sign.CanonicalName {
		entry = append(entry, theme.Subtitle.Render(s.sign.LocalizedName))
	}
	entry = append(entry,
		theme.CategoryColor(s.sign.Category.DisplayName()).Render(s.sign.Category.DisplayName()),
		"",
		theme.Body.Width(cw-6).Render(s.sign.Description),
	)

	sections := []string{components.Panel(strings.Join(entry, "\n"), cw), "", s.renderArticle(cw)}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *LookupScreen) renderArticle(cw int) string {
	switch {
	case s.svc.Enrich == nil:
		return theme.Hint.Render("Online lookup is disabled.")
	case s.loading:
		return theme.Hint.Render("Looking it up...")
	case errors.Is(s.err, enrich.ErrNotFound):
		return theme.Hint.Render("No encyclopedia article found for this sign.")
	case s.err != nil:
		return theme.Incorrect.Render("Lookup unavailable. Check your connection and try again later.")
	case s.page == nil:
		return ""
	}

	lines := []string{
		theme.Label.Render(s.page.Title),
		"",
		theme.Body.Width(cw - 6).Render(s.page.Extract),
		"",
		theme.Hint.Render(s.page.URL),
	}
	if s.page.Thumbnail != nil {
		lines = append(lines, theme.Hint.Render("image: "+s.page.Thumbnail.Source))
	}
	return components.Panel(strings.Join(lines, "\n"), cw)
}
