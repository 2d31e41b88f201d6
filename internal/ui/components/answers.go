package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

// AnswerChoices lists the candidate translations of one question. The
// cursor moves with arrows or j/k; enter or a digit 1-9 locks an answer in,
// after which the list only shows which option was right.
type AnswerChoices struct {
	Options []string
	Correct int
	Cursor  int
	Chosen  int // -1 until answered
}

func NewAnswerChoices(options []string, correct int) AnswerChoices {
	return AnswerChoices{Options: options, Correct: correct, Chosen: -1}
}

func (a AnswerChoices) Answered() bool { return a.Chosen >= 0 }

func (a AnswerChoices) Update(msg tea.Msg) (AnswerChoices, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || a.Answered() || len(a.Options) == 0 {
		return a, nil
	}
	switch k := kmsg.String(); k {
	case "up", "k":
		a.Cursor = max(a.Cursor-1, 0)
	case "down", "j":
		a.Cursor = min(a.Cursor+1, len(a.Options)-1)
	case "enter":
		a.Chosen = a.Cursor
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' && int(k[0]-'1') < len(a.Options) {
			a.Cursor = int(k[0] - '1')
			a.Chosen = a.Cursor
		}
	}
	return a, nil
}

// Answer returns the text of the locked-in option.
func (a AnswerChoices) Answer() (string, bool) {
	if a.Chosen < 0 || a.Chosen >= len(a.Options) {
		return "", false
	}
	return a.Options[a.Chosen], true
}

func (a AnswerChoices) IsCorrect() bool {
	return a.Answered() && a.Chosen == a.Correct
}

func (a AnswerChoices) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := make([]string, len(a.Options))
	for i, opt := range a.Options {
		cursor := "  "
		if i == a.Cursor && !a.Answered() {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", cursor, i+1, opt)
		switch {
		case !a.Answered() && i == a.Cursor:
			lines[i] = theme.Selected.Render(line)
		case !a.Answered():
			lines[i] = theme.Unselected.Render(line)
		case i == a.Correct:
			lines[i] = theme.Correct.Render(line + "  ✓")
		case i == a.Chosen:
			lines[i] = theme.Incorrect.Render(line + "  ✗")
		default:
			lines[i] = dim.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
