package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/signmaster/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a focused, single-line query box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search box limited to maxLen runes.
func NewSearchInput(placeholder string, maxLen int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	ti.Focus()
	return SearchInput{Model: ti}
}

// Update forwards msg to the underlying input.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s SearchInput) View() string {
	return theme.Body.Render(s.Model.View())
}

// Value returns the current query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Focused reports whether keystrokes go to the input.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Focus gives the input keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur releases keyboard focus.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}
