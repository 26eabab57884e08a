// Package picker asks which sign category to practice and opens the
// matching practice screen.
package picker

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/choicequiz"
	"github.com/abhisek/signmaster/internal/screens/flashcards"
	"github.com/abhisek/signmaster/internal/screens/truefalse"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

// Purpose selects the screen opened for the chosen category.
type Purpose int

const (
	PurposeFlashcards Purpose = iota
	PurposeChoice
	PurposeTrueFalse
)

func (p Purpose) String() string {
	switch p {
	case PurposeFlashcards:
		return "Flashcards"
	case PurposeChoice:
		return "Multiple choice"
	case PurposeTrueFalse:
		return "True or false"
	default:
		return "unknown"
	}
}

// PickerScreen lists Random plus every category present in the catalog.
type PickerScreen struct {
	svc     *screens.Services
	cat     *catalog.Catalog
	purpose Purpose
	menu    components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// New creates a category picker for purpose.
func New(svc *screens.Services, cat *catalog.Catalog, purpose Purpose) *PickerScreen {
	p := &PickerScreen{svc: svc, cat: cat, purpose: purpose}

	choices := append([]catalog.Category{catalog.CategoryAll}, cat.Categories()...)
	items := make([]components.MenuItem, 0, len(choices))
	for _, c := range choices {
		items = append(items, components.MenuItem{
			Label:  c.DisplayName(),
			Hint:   fmt.Sprintf("%d signs", len(screens.Subset(cat, c))),
			Action: func() tea.Cmd { return p.open(c) },
		})
	}
	p.menu = components.NewMenu(items)
	return p
}

// Target builds the practice screen for category c.
func (p *PickerScreen) Target(c catalog.Category) screen.Screen {
	switch p.purpose {
	case PurposeChoice:
		return choicequiz.New(p.svc, p.cat, c)
	case PurposeTrueFalse:
		return truefalse.New(p.svc, p.cat, c)
	default:
		return flashcards.New(p.svc, p.cat, c)
	}
}

func (p *PickerScreen) open(c catalog.Category) tea.Cmd {
	target := p.Target(c)
	return func() tea.Msg { return router.PushScreenMsg{Screen: target} }
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return p.purpose.String()
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(screens.Centered(width, theme.Title, "Choose a category"))
	b.WriteString("\n")
	b.WriteString(screens.Centered(width, theme.Subtitle, p.purpose.String()+" · "+p.cat.Name))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.menu.View()))
	return b.String()
}
