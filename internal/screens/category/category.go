// Package category lets the learner pick which words to practise.
package category

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/screens/packs"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

// choices is the menu order: concrete categories, then the mixed set.
var choices = append(append([]catalog.Category{}, catalog.Categories...), catalog.CategoryAll)

// CategoryScreen lists the word categories with their sizes.
type CategoryScreen struct {
	flow *session.Flow
	menu components.Menu
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.Leaver = (*CategoryScreen)(nil)

// New creates a CategoryScreen for a flow at the category step.
func New(flow *session.Flow) *CategoryScreen {
	s := &CategoryScreen{flow: flow}
	items := make([]components.MenuItem, 0, len(choices))
	for _, c := range choices {
		n := flow.Catalog().Count(c)
		items = append(items, components.MenuItem{
			Label:  c.Label(),
			Detail: fmt.Sprintf("(%d mots)", n),
			Action: s.choose(c),
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *CategoryScreen) choose(c catalog.Category) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.flow.ChooseCategory(c); err != nil {
			slog.Warn("choose category", "category", c, "error", err)
			return nil
		}
		return router.Push(packs.New(s.flow))
	}
}

func (s *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CategoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := theme.Title.Width(cw).Render(s.flow.Activity().Label())
	sub := theme.Subtitle.Width(cw).Render("Choisis une catégorie")
	box := components.CardBox(strings.TrimRight(s.menu.View(), "\n"), cw, false)
	return components.Centered(heading+"\n"+sub+"\n\n"+box, width, height)
}

func (s *CategoryScreen) Title() string {
	return "Catégorie"
}

// Leave returns the flow to the activity menu.
func (s *CategoryScreen) Leave() {
	if err := s.flow.Back(); err != nil {
		slog.Debug("leave category", "error", err)
	}
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Choisir"},
		{Key: "Esc", Description: "Retour"},
	}
}
