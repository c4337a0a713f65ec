package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathway/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ████████╗██╗  ██╗██╗    ██╗ █████╗ ██╗   ██╗
 ██╔══██╗██╔══██╗╚══██╔══╝██║  ██║██║    ██║██╔══██╗╚██╗ ██╔╝
 ██████╔╝███████║   ██║   ███████║██║ █╗ ██║███████║ ╚████╔╝
 ██╔═══╝ ██╔══██║   ██║   ██╔══██║██║███╗██║██╔══██║  ╚██╔╝
 ██║     ██║  ██║   ██║   ██║  ██║╚███╔███╔╝██║  ██║   ██║
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝`

const bannerCompact = "P A T H W A Y"

// RenderBanner returns the PATHWAY banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
