// Package result shows the score of a finished quiz.
package result

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

// ResultScreen displays the quiz summary with retry and menu buttons.
type ResultScreen struct {
	flow    *session.Flow
	replay  func() screen.Screen
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.Backer = (*ResultScreen)(nil)

// New creates a ResultScreen. replay builds the screen that runs the quiz
// again after a retry.
func New(flow *session.Flow, replay func() screen.Screen) *ResultScreen {
	s := &ResultScreen{flow: flow, replay: replay}
	s.buttons = components.NewButtonRow(
		components.Button{Label: "Réessayer", Key: "r", OnPress: s.retry},
		components.Button{Label: "Retour au menu", Key: "m", OnPress: s.Back},
	)
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Résultat"
}

func (s *ResultScreen) retry() tea.Cmd {
	if err := s.flow.Retry(); err != nil {
		slog.Warn("retry quiz", "error", err)
		return nil
	}
	return router.Replace(s.replay())
}

// Back resets the flow and returns to the activity menu.
func (s *ResultScreen) Back() tea.Cmd {
	s.flow.Reset()
	return router.PopToRoot()
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sum := s.flow.Summary()

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Quiz terminé !"))

	score := theme.Word.Render(fmt.Sprintf("%d / %d", sum.Score, sum.Total))
	percent := theme.Subtitle.Render(fmt.Sprintf("%d %%", sum.Percent()))
	verdictStyle := theme.Correct
	if sum.Percent() < 40 {
		verdictStyle = theme.Incorrect
	}
	card := score + "\n" + percent + "\n\n" + verdictStyle.Render(sum.Verdict())
	sections = append(sections, components.CardBox(card, cw, true))

	sections = append(sections, center.Render(s.buttons.View()))

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choisir"},
		{Key: "Entrée", Description: "Valider"},
		{Key: "r", Description: "Réessayer"},
		{Key: "Esc", Description: "Menu"},
	}
}
