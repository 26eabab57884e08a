package flashcards

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/session"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

func (s *FlashcardScreen) View(width, height int) string {
	if s.queue == nil {
		return screens.RenderLoading(width, "Shuffling cards...")
	}
	var out string
	if s.queue.Complete() {
		out = s.renderSummary(width)
	} else {
		out = s.renderCard(width)
	}
	if s.errMsg != "" {
		out += "\n" + screens.Centered(width, theme.Incorrect, s.errMsg)
	}
	return out
}

// renderCard shows the sign's description on the front and its name and
// category on the back.
func (s *FlashcardScreen) renderCard(width int) string {
	item, _ := s.queue.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.NewProgressBar("", float64(s.queue.Cursor)/float64(s.queue.Len()), false, cw).View())
	b.WriteString("\n\n")

	var face string
	if s.flipped {
		name := theme.Title.Render(item.CanonicalName)
		if item.LocalizedName != "" && item.LocalizedName != item.CanonicalName {
			name += "\n" + theme.Subtitle.Render(item.LocalizedName)
		}
		face = name + "\n\n" + theme.CategoryColor(item.Category.DisplayName()).Render(item.Category.DisplayName())
	} else {
		face = theme.Body.Render(item.Description)
		if item.ImageRef != "" {
			face += "\n\n" + theme.Hint.Render(item.ImageRef)
		}
		face += "\n\n" + theme.Hint.Render("What is this sign?")
	}

	style := theme.Flashcard.Width(cw)
	if s.flipped {
		style = style.BorderForeground(theme.Accent)
	}
	b.WriteString(style.Render(face))
	b.WriteString("\n\n")

	tally := fmt.Sprintf("%s %d   %s %d",
		theme.Incorrect.Render("still learning"), len(s.queue.StillLearning),
		theme.Correct.Render("known"), len(s.queue.Mastered))
	b.WriteString(tally)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *FlashcardScreen) renderSummary(width int) string {
	sum := session.BuildSummary(s.queue)

	var b strings.Builder
	b.WriteString("\n")
	if sum.Total == 0 {
		b.WriteString(screens.Centered(width, theme.Title, "Nothing new here"))
		b.WriteString("\n")
		b.WriteString(screens.Centered(width, theme.Subtitle,
			"You already know every sign in "+s.category.DisplayName()+"."))
	} else {
		b.WriteString(screens.Centered(width, theme.Title, "Round complete"))
		b.WriteString("\n\n")
		stats := fmt.Sprintf("%s   %s",
			theme.Correct.Render(fmt.Sprintf("%d known", sum.Mastered)),
			theme.Incorrect.Render(fmt.Sprintf("%d still learning", sum.StillLearning)))
		b.WriteString(screens.Centered(width, lipgloss.NewStyle(), stats))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
