package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	// CompactWidthThreshold applies to the terminal width.
	CompactWidthThreshold = 100
	// CompactHeightThreshold applies to the content area left between
	// header and footer.
	CompactHeightThreshold = 22

	brand = "  Signmaster"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether the terminal is too narrow for the
// header brand and the full footer.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether a content area of height lines should
// use condensed screen layouts.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the lines left for a screen once the header and
// footer are drawn.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage tells the user how far to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small for Signmaster\n\nNeeds %d x %d, have %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the header bar: brand on the left, the screen title
// centered and status on the right. Narrow terminals drop the brand and
// left-align the title.
func RenderHeader(title, status string, width int) string {
	left := ""
	if !IsCompactWidth(width) {
		left = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Bold(left == "").Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	leftW, centerW, rightW := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := 2
	if left != "" {
		leftGap = max((inner-centerW)/2-leftW, 1)
	}
	rightGap := max(inner-leftW-leftGap-centerW-rightW, 1)

	return bar(width, left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right)
}

// RenderFooter renders key hints left to right, dropping trailing hints
// that would not fit on one line.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	room := max(width-6, 0)
	line := ""
	for _, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		next := part
		if line != "" {
			next = line + "   " + part
		}
		if lipgloss.Width(next) > room {
			break
		}
		line = next
	}
	return bar(width, "  "+line)
}

// RenderFrame stacks header, content and footer. Content is padded or
// clipped to ContentHeight so the footer stays on screen.
func RenderFrame(header, content, footer string, width, height int) string {
	h := ContentHeight(height)
	body := lipgloss.NewStyle().
		Width(width).
		Height(h).
		MaxHeight(h).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
