package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Centered places content in the middle of the given area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// CardBox wraps content in a rounded-border card at the given content width.
// Revealed cards use the accent border.
func CardBox(content string, cw int, revealed bool) string {
	style := theme.Card
	if revealed {
		style = theme.CardRevealed
	}
	return style.
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(content)
}
