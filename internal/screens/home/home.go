package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/screens/category"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

// HomeScreen is the activity menu at the bottom of the stack.
type HomeScreen struct {
	flow *session.Flow
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(flow *session.Flow) *HomeScreen {
	h := &HomeScreen{flow: flow}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: session.ActivityFlashcards.Label(), Action: h.start(session.ActivityFlashcards)},
		{Label: session.ActivityQuiz.Label(), Action: h.start(session.ActivityQuiz)},
		{Label: "Quitter", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) start(a session.Activity) func() tea.Cmd {
	return func() tea.Cmd {
		if err := h.flow.ChooseActivity(a); err != nil {
			slog.Warn("choose activity", "activity", a, "error", err)
			return nil
		}
		return router.Push(category.New(h.flow))
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "d" {
		h.flow.ToggleDirection()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(renderBanner(width, height)))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Vocabulaire russe · français"))

	dir := h.flow.Direction()
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
		theme.Label.Render("Sens : ")+theme.Body.Render(fmt.Sprintf("%s → %s", dir.PromptLanguage(), dir.AnswerLanguage())),
	))
	sections = append(sections, components.CardBox(strings.TrimRight(h.menu.View(), "\n"), cw, false))

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Choisir"},
		{Key: "d", Description: "Inverser le sens"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}
