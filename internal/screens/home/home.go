// Package home is the country picker shown after the splash.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/dashboard"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

// HomeScreen lists every known country. Countries without a catalog are
// shown but cannot be opened.
type HomeScreen struct {
	svc    *screens.Services
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with the configured default country
// preselected.
func New(svc *screens.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}

	var items []components.MenuItem
	selected := -1
	for _, c := range catalog.Countries() {
		item := components.MenuItem{Label: c.Flag + "  " + c.Name}
		if svc.Registry.Available(c.Code) {
			item.Action = func() tea.Cmd { return h.open(c.Code) }
			if strings.EqualFold(c.Code, svc.DefaultDomain) {
				selected = len(items)
			}
		} else {
			item.Disabled = true
			item.Hint = "coming soon"
		}
		items = append(items, item)
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})

	h.menu = components.NewMenu(items)
	if selected >= 0 {
		h.menu.Selected = selected
	}
	return h
}

func (h *HomeScreen) open(code string) tea.Cmd {
	cat, err := h.svc.Registry.Get(code)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	next := dashboard.New(h.svc, cat)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose a country"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(screens.Centered(width, theme.Title, "Where are you driving?"))
	b.WriteString("\n")
	b.WriteString(screens.Centered(width, theme.Subtitle, "Pick a country to learn its road signs"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(screens.Centered(width, theme.Incorrect, h.errMsg))
	}
	return b.String()
}
