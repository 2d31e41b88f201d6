package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗      ██████╗ ██╗   ██╗ ██████╗
 ██╔════╝██║     ██╔═══██╗██║   ██║██╔═══██╗
 ███████╗██║     ██║   ██║██║   ██║██║   ██║
 ╚════██║██║     ██║   ██║╚██╗ ██╔╝██║   ██║
 ███████║███████╗╚██████╔╝ ╚████╔╝ ╚██████╔╝
 ╚══════╝╚══════╝ ╚═════╝   ╚═══╝   ╚═════╝`

const bannerCompact = "С Л О В О"

// bannerMinHeight is the content height needed to fit the art above the menu.
const bannerMinHeight = 26

// renderBanner returns the SLOVO banner, or the compact Cyrillic title when
// the area is too narrow or too short for the art.
func renderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 || height < bannerMinHeight {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
