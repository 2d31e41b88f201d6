// Package packs lets the learner pick a ten-word slice of a category.
package packs

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/screens/flashcards"
	"github.com/abhisek/slovo/internal/screens/quiz"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

// PacksScreen lists the packs of the chosen category.
type PacksScreen struct {
	flow *session.Flow
	menu components.Menu
}

var _ screen.Screen = (*PacksScreen)(nil)
var _ screen.Leaver = (*PacksScreen)(nil)

// New creates a PacksScreen for a flow at the pack step.
func New(flow *session.Flow) *PacksScreen {
	s := &PacksScreen{flow: flow}
	var items []components.MenuItem
	for _, p := range flow.Packs() {
		detail := fmt.Sprintf("(%d mots)", p.Size)
		if p.Size == 0 {
			detail = "(vide)"
		}
		items = append(items, components.MenuItem{
			Label:  "Mots " + p.Label,
			Detail: detail,
			Action: s.choose(p.Index),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *PacksScreen) choose(index int) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.flow.ChoosePack(index); err != nil {
			slog.Warn("choose pack", "pack", index, "error", err)
			return nil
		}
		slog.Debug("run started",
			"run_id", s.flow.RunID(),
			"activity", s.flow.Activity(),
			"category", s.flow.Category(),
			"pack", index,
			"words", len(s.flow.ActiveSet()),
		)
		if s.flow.Activity() == session.ActivityQuiz {
			return router.Push(quiz.New(s.flow))
		}
		return router.Push(flashcards.New(s.flow))
	}
}

func (s *PacksScreen) Init() tea.Cmd {
	return nil
}

func (s *PacksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PacksScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := theme.Title.Width(cw).Render(s.flow.Category().Label())
	sub := theme.Subtitle.Width(cw).Render("Choisis un paquet de 10 mots")
	box := components.CardBox(strings.TrimRight(s.menu.View(), "\n"), cw, false)
	return components.Centered(heading+"\n"+sub+"\n\n"+box, width, height)
}

func (s *PacksScreen) Title() string {
	return "Paquets"
}

// Leave returns the flow to category selection.
func (s *PacksScreen) Leave() {
	if err := s.flow.Back(); err != nil {
		slog.Debug("leave packs", "error", err)
	}
}

func (s *PacksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Commencer"},
		{Key: "Esc", Description: "Retour"},
	}
}
