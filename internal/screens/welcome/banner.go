package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/ui/theme"
)

const bannerArt = `
 ╔═╗╦╔═╗╔╗╔╔╦╗╔═╗╔═╗╔╦╗╔═╗╦═╗
 ╚═╗║║ ╦║║║║║║╠═╣╚═╗ ║ ║╣ ╠╦╝
 ╚═╝╩╚═╝╝╚╝╩ ╩╩ ╩╚═╝ ╩ ╚═╝╩╚═`

const bannerCompact = "S I G N M A S T E R"

// RenderBanner returns the banner in the primary color, or a one-line
// fallback for terminals narrower than 34 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 34 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
