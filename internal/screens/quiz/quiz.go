// Package quiz runs a multiple-choice quiz over the active pack.
package quiz

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screen"
	"github.com/abhisek/slovo/internal/screens/result"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/ui/components"
	"github.com/abhisek/slovo/internal/ui/layout"
	"github.com/abhisek/slovo/internal/ui/theme"
)

// finishedMsg is sent when the last question has been left.
type finishedMsg struct{}

// QuizScreen shows one question at a time and hands over to the result
// screen when the quiz completes.
type QuizScreen struct {
	flow   *session.Flow
	choice components.AnswerChoices
	qIndex int // question the choice component was built for
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)

// New creates a QuizScreen for a flow playing a quiz.
func New(flow *session.Flow) *QuizScreen {
	s := &QuizScreen{flow: flow, qIndex: -1}
	s.syncChoice()
	return s
}

// syncChoice rebuilds the choice component when the engine moved on.
func (s *QuizScreen) syncChoice() {
	e := s.flow.Quiz()
	if e == nil || e.Completed() || e.Index() == s.qIndex {
		return
	}
	q, ok := e.Current()
	if !ok {
		return
	}
	s.qIndex = e.Index()
	s.choice = components.NewAnswerChoices(q.Options, q.CorrectIndex())
}

// Init finishes right away when there is nothing to ask.
func (s *QuizScreen) Init() tea.Cmd {
	if e := s.flow.Quiz(); e == nil || e.Completed() {
		return finish
	}
	return nil
}

func finish() tea.Msg { return finishedMsg{} }

func (s *QuizScreen) Title() string {
	return session.ActivityQuiz.Label()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		return s, s.showResult()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	e := s.flow.Quiz()
	if e == nil || e.Completed() {
		return s, nil
	}

	if e.Answered() {
		switch msg.String() {
		case "enter", "n", "right":
			if err := e.Advance(); err != nil {
				slog.Warn("advance quiz", "error", err)
				return s, nil
			}
			if e.Completed() {
				return s, finish
			}
			s.syncChoice()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if chosen, ok := s.choice.Answer(); ok {
		correct, accepted := e.Answer(chosen)
		slog.Debug("quiz answer",
			"run_id", s.flow.RunID(),
			"question", e.Index(),
			"correct", correct,
			"accepted", accepted,
		)
	}
	return s, nil
}

func (s *QuizScreen) showResult() tea.Cmd {
	if err := s.flow.Finish(); err != nil {
		slog.Warn("finish quiz", "error", err)
		return nil
	}
	sum := s.flow.Summary()
	slog.Info("quiz finished", "run_id", s.flow.RunID(), "score", sum.Score, "total", sum.Total)
	return router.Replace(result.New(s.flow, func() screen.Screen { return New(s.flow) }))
}

// Leave abandons the quiz and returns the flow to pack selection.
func (s *QuizScreen) Leave() {
	if err := s.flow.Back(); err != nil {
		slog.Debug("leave quiz", "error", err)
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	e := s.flow.Quiz()
	if e == nil || e.Completed() {
		return components.Centered(theme.Subtitle.Width(cw).Render("Calcul du score..."), width, height)
	}
	q, _ := e.Current()
	dir := e.Direction()

	var sections []string

	sections = append(sections, components.QuestionProgress(e.Index(), e.Len(), e.Answered(), cw))

	prompt := theme.Label.Render(dir.PromptLanguage()) + "\n\n" + theme.Word.Render(q.Prompt) + "\n\n" +
		theme.Hint.Render("Traduction en "+strings.ToLower(dir.AnswerLanguage())+" ?")
	sections = append(sections, components.CardBox(prompt, cw, false))
	sections = append(sections, s.choice.View())

	if e.Answered() {
		var fb string
		if e.LastCorrect() {
			fb = theme.Correct.Render("Correct !")
		} else {
			fb = theme.Incorrect.Render("Incorrect.") + " " + theme.Body.Render("La bonne réponse : "+q.Correct)
		}
		sections = append(sections, fb+"\n\n"+components.NextButton(e.IsLast()))
	}

	sections = append(sections, theme.Subtitle.Width(cw).Render(fmt.Sprintf("Score : %d", e.Score())))
	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if e := s.flow.Quiz(); e != nil && e.Answered() {
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Suivant"},
			{Key: "Esc", Description: "Abandonner"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "1-4", Description: "Répondre"},
		{Key: "Entrée", Description: "Valider"},
		{Key: "Esc", Description: "Abandonner"},
	}
}
