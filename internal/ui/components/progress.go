package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

// QuestionProgress renders "Question x / n" followed by a bar filled up to
// the questions already answered. index is zero-based.
func QuestionProgress(index, total int, answered bool, width int) string {
	if total <= 0 {
		return ""
	}
	index = min(max(index, 0), total-1)
	done := index
	if answered {
		done++
	}

	label := theme.Body.Render(fmt.Sprintf("Question %d / %d", index+1, total)) + "  "
	bar := max(width-lipgloss.Width(label), 4)
	filled := bar * done / total

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", bar-filled))
}
