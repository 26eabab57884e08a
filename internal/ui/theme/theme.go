package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette borrowed from road signage: warning amber, prohibition red,
// mandatory blue.
var (
	Primary   = lipgloss.Color("#2563EB") // Mandatory blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Warning amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#DC2626") // Prohibition red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// Flashcard is the card frame used while practicing; the border turns
	// accent when the card is flipped.
	Flashcard = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Primary).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Faint(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// CategoryColor returns the accent color used for a sign category name.
func CategoryColor(category string) lipgloss.Style {
	switch category {
	case "Warning":
		return lipgloss.NewStyle().Foreground(Accent)
	case "Prohibition":
		return lipgloss.NewStyle().Foreground(Error)
	case "Mandatory":
		return lipgloss.NewStyle().Foreground(Primary)
	default:
		return lipgloss.NewStyle().Foreground(Secondary)
	}
}
