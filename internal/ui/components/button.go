package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/ui/theme"
)

// NextLabel is the label of the button that follows an answered question.
func NextLabel(last bool) string {
	if last {
		return "Voir le score !"
	}
	return "Suivant →"
}

// NextButton renders the focused button shown under an answered question.
func NextButton(last bool) string {
	return theme.ButtonActive.Render("▸ " + NextLabel(last))
}

// Button is one entry of a ButtonRow. Key is an optional shortcut.
type Button struct {
	Label   string
	Key     string
	OnPress func() tea.Cmd
}

// ButtonRow lays buttons out side by side with one of them focused.
type ButtonRow struct {
	Buttons []Button
	Focus   int
}

func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Update moves focus with arrows and tab, presses the focused button on
// enter and any button by its shortcut key.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}
	n := len(r.Buttons)
	switch k := kmsg.String(); k {
	case "left", "up", "shift+tab":
		r.Focus = (r.Focus + n - 1) % n
	case "right", "down", "tab":
		r.Focus = (r.Focus + 1) % n
	case "enter":
		return r, r.press(r.Focus)
	default:
		for i, b := range r.Buttons {
			if b.Key != "" && b.Key == k {
				return r, r.press(i)
			}
		}
	}
	return r, nil
}

func (r ButtonRow) press(i int) tea.Cmd {
	if f := r.Buttons[i].OnPress; f != nil {
		return f()
	}
	return nil
}

func (r ButtonRow) View() string {
	views := make([]string, 0, 2*len(r.Buttons))
	for i, b := range r.Buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		if i == r.Focus {
			views = append(views, theme.ButtonActive.Render("▸ "+b.Label))
		} else {
			views = append(views, theme.ButtonInactive.Render(b.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
