// Package screens holds the dependencies shared by every TUI screen and a
// few rendering helpers. Each screen lives in its own subpackage.
package screens

import (
	"fmt"
	"math/rand/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/enrich"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/quiz"
	"github.com/abhisek/signmaster/internal/session"
	"github.com/abhisek/signmaster/internal/store"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

// Services bundles what screens need. Enrich is nil when online lookup is
// disabled.
type Services struct {
	Registry      *catalog.Registry
	Progress      *progress.Store
	Attempts      store.AttemptRepo
	Engine        *session.Engine
	Enrich        enrich.Source
	DefaultDomain string
	QuizSize      int

	// Rand drives quiz generation. It is only used from the UI goroutine.
	Rand *rand.Rand
}

// Generator returns a quiz generator drawing distractors from cat.
func (s *Services) Generator(cat *catalog.Catalog) *quiz.Generator {
	return quiz.NewGenerator(cat.All(), s.Rand)
}

// Subset returns the signs of cat in category c, or every sign for
// catalog.CategoryAll.
func Subset(cat *catalog.Catalog, c catalog.Category) []catalog.SignRecord {
	if c == catalog.CategoryAll {
		return cat.All()
	}
	return cat.ByCategory(c)
}

// RenderLoading renders a centered, dimmed waiting message.
func RenderLoading(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + text)
}

// RenderError renders an error with a hint to go back.
func RenderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\nError: %s\n\nPress Esc to go back.", errMsg))
}

// Centered renders text centered across width.
func Centered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
