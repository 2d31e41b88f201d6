// Package flashcards shows one card at a time with reveal, navigation
// and on-demand explanations.
package flashcards

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/explain"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

type keyMap struct {
	Reveal    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Direction key.Binding
	Shuffle   key.Binding
	Explain   key.Binding
}

var keys = keyMap{
	Reveal:    key.NewBinding(key.WithKeys("space", " ", "enter"), key.WithHelp("Espace", "Retourner")),
	Next:      key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "Suivante")),
	Prev:      key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "Précédente")),
	Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Sens")),
	Shuffle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Mélanger")),
	Explain:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Expliquer")),
}

// explanationMsg carries a finished explanation back to the screen.
type explanationMsg struct {
	Ticket explain.Ticket
	Text   string
}

// FlashcardsScreen runs the flashcard activity of a flow.
type FlashcardsScreen struct {
	flow    *session.Flow
	tracker explain.Tracker
	spinner spinner.Model

	// explanation is the accepted text for explainedID.
	explanation string
	explainedID string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.Leaver = (*FlashcardsScreen)(nil)

// New creates a FlashcardsScreen for a flow playing flashcards.
func New(flow *session.Flow) *FlashcardsScreen {
	return &FlashcardsScreen{
		flow: flow,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return session.ActivityFlashcards.Label()
}

func (s *FlashcardsScreen) current() (catalog.Word, bool) {
	nav := s.flow.Navigator()
	if nav == nil {
		return catalog.Word{}, false
	}
	return nav.Current()
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		w, ok := s.current()
		if !ok || !s.tracker.Accept(msg.Ticket, w.ID) {
			slog.Debug("stale explanation dropped", "word_id", msg.Ticket.WordID)
			return s, nil
		}
		s.explanation = msg.Text
		s.explainedID = w.ID
		return s, nil

	case spinner.TickMsg:
		if !s.tracker.Pending() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	nav := s.flow.Navigator()
	if nav == nil || nav.Empty() {
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Reveal):
		nav.ToggleReveal()
	case key.Matches(msg, keys.Next):
		nav.Next()
		s.clearExplanation()
	case key.Matches(msg, keys.Prev):
		nav.Prev()
		s.clearExplanation()
	case key.Matches(msg, keys.Direction):
		s.flow.ToggleDirection()
	case key.Matches(msg, keys.Shuffle):
		if err := s.flow.ToggleShuffle(); err != nil {
			slog.Warn("toggle shuffle", "error", err)
			return s, nil
		}
		s.clearExplanation()
	case key.Matches(msg, keys.Explain):
		return s, s.requestExplanation()
	}
	return s, nil
}

// clearExplanation forgets the shown explanation and ignores any reply
// still in flight for the previous card.
func (s *FlashcardsScreen) clearExplanation() {
	s.tracker.Invalidate()
	s.explanation = ""
	s.explainedID = ""
}

func (s *FlashcardsScreen) requestExplanation() tea.Cmd {
	w, ok := s.current()
	if !ok || s.tracker.PendingFor(w.ID) {
		return nil
	}
	s.explanation = ""
	s.explainedID = ""
	tk := s.tracker.Issue(w.ID)
	return tea.Batch(s.spinner.Tick, explainCmd(s.flow.Explainer(), tk, w))
}

func explainCmd(g explain.Gateway, tk explain.Ticket, w catalog.Word) tea.Cmd {
	return func() tea.Msg {
		text := explain.Resolve(context.Background(), g, w.Russian, explain.Topic(w))
		return explanationMsg{Ticket: tk, Text: text}
	}
}

// Leave drops pending explanations and returns the flow to pack selection.
func (s *FlashcardsScreen) Leave() {
	s.clearExplanation()
	if err := s.flow.Back(); err != nil {
		slog.Debug("leave flashcards", "error", err)
	}
}

func (s *FlashcardsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	nav := s.flow.Navigator()

	if nav == nil || nav.Empty() {
		msg := theme.Title.Width(cw).Render("Aucun mot dans ce paquet.") + "\n\n" +
			theme.Subtitle.Width(cw).Render("Esc pour choisir un autre paquet")
		return components.Centered(msg, width, height)
	}

	w, _ := nav.Current()
	dir := nav.Direction()

	var sections []string

	order := "ordre du catalogue"
	if s.flow.Shuffled() {
		order = "ordre aléatoire"
	}
	status := fmt.Sprintf("Carte %d / %d  ·  %s  ·  %s", nav.Index()+1, nav.Len(), s.flow.Category().Label(), order)
	sections = append(sections, theme.Subtitle.Width(cw).Render(status))

	sections = append(sections, components.CardBox(s.renderCard(w, dir, nav.Revealed()), cw, nav.Revealed()))

	switch {
	case s.tracker.PendingFor(w.ID):
		sections = append(sections, s.spinner.View()+" "+theme.Hint.Render("Explication en cours..."))
	case s.explainedID == w.ID && s.explanation != "":
		sections = append(sections, theme.Explanation.Width(cw).Render(s.explanation))
	}

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *FlashcardsScreen) renderCard(w catalog.Word, dir catalog.Direction, revealed bool) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(dir.PromptLanguage()) + "\n\n")
	b.WriteString(theme.Word.Render(dir.Prompt(w)))
	if dir == catalog.RussianToFrench && w.Phonetic != "" {
		b.WriteString("\n" + theme.Phonetic.Render("["+w.Phonetic+"]"))
	}

	if !revealed {
		b.WriteString("\n\n" + theme.Hint.Render("Espace pour retourner la carte"))
		return b.String()
	}

	b.WriteString("\n\n" + theme.Label.Render(dir.AnswerLanguage()) + "\n\n")
	b.WriteString(theme.Word.Render(dir.Answer(w)))
	if dir == catalog.FrenchToRussian && w.Phonetic != "" {
		b.WriteString("\n" + theme.Phonetic.Render("["+w.Phonetic+"]"))
	}
	if w.Example != "" {
		b.WriteString("\n\n" + theme.Hint.Render(w.Example))
	}
	return b.String()
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, 7)
	for _, b := range []key.Binding{keys.Reveal, keys.Prev, keys.Next, keys.Direction, keys.Shuffle, keys.Explain} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Retour"})
}
