// Package layout draws the frame around every screen: a header with the
// app name, screen title and translation direction, and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair of the footer.
type KeyHint struct {
	Key         string
	Description string
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

var (
	brandStyle     = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	directionStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	hintKeyStyle   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hintDescStyle  = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"Terminal trop petit !\n\nAgrandissez-le à au moins\n%d x %d\n\nActuel : %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader puts the app name on the left, the screen title in the
// middle and the translation direction ("RU → FR") on the right.
func RenderHeader(title, direction string, width int) string {
	inner := max(width-4, 0)
	brand := brandStyle.Render("  Slovo")
	dir := directionStyle.Render(direction)

	side := max(lipgloss.Width(brand), lipgloss.Width(dir))
	middle := max(inner-2*side, 0)
	row := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, titleStyle.Render(title)) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, dir)

	return bar.Width(width).Render(row)
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = hintKeyStyle.Render(h.Key) + " " + hintDescStyle.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
