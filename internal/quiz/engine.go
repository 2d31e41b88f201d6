package quiz

import (
	"errors"

	"github.com/abhisek/slovo/internal/catalog"
)

var (
	// ErrNotAnswered is returned by Advance before the current question
	// has been answered.
	ErrNotAnswered = errors.New("quiz: current question not answered")

	// ErrCompleted is returned when acting on a completed quiz.
	ErrCompleted = errors.New("quiz: already completed")
)

// State is the lifecycle phase of an Engine.
type State int

const (
	StateBuilding State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Engine runs one quiz over a fixed question set. Questions are built once
// at construction and never change afterwards.
type Engine struct {
	questions []Question
	direction catalog.Direction

	state    State
	index    int
	score    int
	answered []bool
	selected []string
}

// New builds the question set for words and starts the quiz. An empty word
// list yields a quiz that is already completed with a score of zero.
func New(words []catalog.Word, dir catalog.Direction, opts BuildOptions) *Engine {
	e := &Engine{direction: dir, state: StateBuilding}
	e.questions = BuildQuestions(words, dir, opts)
	e.answered = make([]bool, len(e.questions))
	e.selected = make([]string, len(e.questions))

	if len(e.questions) == 0 {
		e.state = StateCompleted
	} else {
		e.state = StateInProgress
	}
	return e
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Completed reports whether every question has been answered and advanced past.
func (e *Engine) Completed() bool { return e.state == StateCompleted }

// Direction returns the direction the questions were built with.
func (e *Engine) Direction() catalog.Direction { return e.direction }

// Len returns the number of questions.
func (e *Engine) Len() int { return len(e.questions) }

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Score returns the number of correct answers so far.
func (e *Engine) Score() int { return e.score }

// Questions returns a copy of the question set.
func (e *Engine) Questions() []Question {
	out := make([]Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// Current returns the question being asked. The second value is false once
// the quiz is completed.
func (e *Engine) Current() (Question, bool) {
	if e.state != StateInProgress {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// Answered reports whether the current question has been answered.
func (e *Engine) Answered() bool {
	return e.state == StateInProgress && e.answered[e.index]
}

// Selected returns the option chosen for the current question, if any.
func (e *Engine) Selected() string {
	if e.state != StateInProgress {
		return ""
	}
	return e.selected[e.index]
}

// LastCorrect reports whether the answer to the current question was correct.
func (e *Engine) LastCorrect() bool {
	if !e.Answered() {
		return false
	}
	return e.selected[e.index] == e.questions[e.index].Correct
}

// IsLast reports whether the current question is the final one.
func (e *Engine) IsLast() bool {
	return e.state == StateInProgress && e.index == len(e.questions)-1
}

// Answer records option for the current question. Only the first answer per
// question counts: later calls return false and leave the score unchanged.
func (e *Engine) Answer(option string) (correct, accepted bool) {
	if e.state != StateInProgress || e.answered[e.index] {
		return false, false
	}
	e.answered[e.index] = true
	e.selected[e.index] = option

	correct = option == e.questions[e.index].Correct
	if correct {
		e.score++
	}
	return correct, true
}

// Advance moves to the next question, or completes the quiz after the last.
func (e *Engine) Advance() error {
	if e.state == StateCompleted {
		return ErrCompleted
	}
	if !e.answered[e.index] {
		return ErrNotAnswered
	}
	if e.index == len(e.questions)-1 {
		e.state = StateCompleted
		return nil
	}
	e.index++
	return nil
}

// Summary is the final outcome of a quiz.
type Summary struct {
	Score int
	Total int
}

// Percent returns the score as a whole percentage.
func (s Summary) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Score * 100 / s.Total
}

// Verdict returns a short French comment on the result.
func (s Summary) Verdict() string {
	switch p := s.Percent(); {
	case s.Total == 0:
		return "Aucun mot dans ce paquet."
	case p == 100:
		return "Parfait !"
	case p >= 70:
		return "Très bien !"
	case p >= 40:
		return "Pas mal, continue !"
	default:
		return "Courage, réessaie !"
	}
}

// Summary reports the score against the number of questions.
func (e *Engine) Summary() Summary {
	return Summary{Score: e.score, Total: len(e.questions)}
}
