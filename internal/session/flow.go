// Package session drives the menu flow of a practice session:
// activity, then category, then pack, then flashcards or a quiz.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/explain"
	"github.com/abhisek/slovo/internal/flashcard"
	"github.com/abhisek/slovo/internal/quiz"
	"github.com/abhisek/slovo/internal/selection"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current step.
var ErrInvalidTransition = errors.New("session: invalid transition")

// Step is a position in the menu flow.
type Step int

const (
	StepActivity Step = iota // choosing flashcards or quiz
	StepCategory             // choosing a word category
	StepPack                 // choosing a pack within the category
	StepPlaying              // flashcards or quiz in progress
	StepResult               // quiz finished, score shown
)

func (s Step) String() string {
	switch s {
	case StepActivity:
		return "activity"
	case StepCategory:
		return "category"
	case StepPack:
		return "pack"
	case StepPlaying:
		return "playing"
	case StepResult:
		return "result"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Activity is what the learner practices.
type Activity int

const (
	ActivityNone Activity = iota
	ActivityFlashcards
	ActivityQuiz
)

func (a Activity) String() string {
	switch a {
	case ActivityFlashcards:
		return "flashcards"
	case ActivityQuiz:
		return "quiz"
	default:
		return "none"
	}
}

// Label is the French menu label of the activity.
func (a Activity) Label() string {
	switch a {
	case ActivityFlashcards:
		return "Cartes mémoire"
	case ActivityQuiz:
		return "Quiz"
	default:
		return ""
	}
}

// Deps holds what a Flow needs from the outside world.
type Deps struct {
	Catalog   *catalog.Catalog
	Explainer explain.Gateway // nil disables explanations
	Rand      *rand.Rand      // nil seeds from the clock
}

// Flow is the explicit state machine behind the menus. Every transition
// method returns ErrInvalidTransition when called from the wrong step and
// leaves the flow unchanged.
type Flow struct {
	deps Deps

	step      Step
	activity  Activity
	category  catalog.Category
	pack      int
	direction catalog.Direction
	shuffle   bool

	runID     string
	active    []catalog.Word
	navigator *flashcard.Navigator
	engine    *quiz.Engine
}

// New creates a Flow at the activity step.
func New(deps Deps) *Flow {
	if deps.Rand == nil {
		deps.Rand = selection.NewRand(0)
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	return &Flow{deps: deps, step: StepActivity, category: catalog.CategoryAll}
}

func (f *Flow) Step() Step                   { return f.step }
func (f *Flow) Activity() Activity           { return f.activity }
func (f *Flow) Category() catalog.Category   { return f.category }
func (f *Flow) PackIndex() int               { return f.pack }
func (f *Flow) Direction() catalog.Direction { return f.direction }
func (f *Flow) Shuffled() bool               { return f.shuffle }
func (f *Flow) Catalog() *catalog.Catalog    { return f.deps.Catalog }
func (f *Flow) Explainer() explain.Gateway   { return f.deps.Explainer }

// RunID identifies the current flashcard or quiz run. It changes on every
// start and retry.
func (f *Flow) RunID() string { return f.runID }

// ActiveSet returns a copy of the words in play.
func (f *Flow) ActiveSet() []catalog.Word {
	out := make([]catalog.Word, len(f.active))
	copy(out, f.active)
	return out
}

// Navigator returns the flashcard navigator while flashcards are playing.
func (f *Flow) Navigator() *flashcard.Navigator { return f.navigator }

// Quiz returns the quiz engine while a quiz is playing or finished.
func (f *Flow) Quiz() *quiz.Engine { return f.engine }

// ToggleDirection flips the prompt/answer languages. It is allowed at any
// step; flashcards follow immediately, a running quiz keeps the direction
// it was built with.
func (f *Flow) ToggleDirection() {
	f.direction = f.direction.Toggle()
	if f.navigator != nil {
		f.navigator.SetDirection(f.direction)
	}
}

// ChooseActivity moves from the activity step to category selection.
func (f *Flow) ChooseActivity(a Activity) error {
	if f.step != StepActivity || (a != ActivityFlashcards && a != ActivityQuiz) {
		return fmt.Errorf("choose activity %s at %s: %w", a, f.step, ErrInvalidTransition)
	}
	f.activity = a
	f.step = StepCategory
	return nil
}

// ChooseCategory moves from category selection to pack selection.
func (f *Flow) ChooseCategory(cat catalog.Category) error {
	if f.step != StepCategory || (cat != catalog.CategoryAll && !cat.Valid()) {
		return fmt.Errorf("choose category %q at %s: %w", cat, f.step, ErrInvalidTransition)
	}
	f.category = cat
	f.step = StepPack
	return nil
}

// Packs lists the packs offered for the chosen category.
func (f *Flow) Packs() []selection.Pack {
	return selection.Packs(f.deps.Catalog, f.category)
}

// ChoosePack derives the active set and starts the activity. A pack past
// the end of the category starts an empty session.
func (f *Flow) ChoosePack(index int) error {
	if f.step != StepPack || index < 0 {
		return fmt.Errorf("choose pack %d at %s: %w", index, f.step, ErrInvalidTransition)
	}
	f.pack = index
	f.start()
	f.step = StepPlaying
	return nil
}

// ToggleShuffle switches flashcards between catalog order and a fresh
// random order, restarting at the first card.
func (f *Flow) ToggleShuffle() error {
	if f.step != StepPlaying || f.activity != ActivityFlashcards {
		return fmt.Errorf("toggle shuffle at %s: %w", f.step, ErrInvalidTransition)
	}
	f.shuffle = !f.shuffle
	f.start()
	return nil
}

// Finish moves a completed quiz to the result step.
func (f *Flow) Finish() error {
	if f.step != StepPlaying || f.activity != ActivityQuiz || f.engine == nil || !f.engine.Completed() {
		return fmt.Errorf("finish at %s: %w", f.step, ErrInvalidTransition)
	}
	f.step = StepResult
	return nil
}

// Summary reports the quiz result.
func (f *Flow) Summary() quiz.Summary {
	if f.engine == nil {
		return quiz.Summary{}
	}
	return f.engine.Summary()
}

// Retry restarts the quiz on the same pack with a fresh shuffle.
func (f *Flow) Retry() error {
	if f.step != StepResult {
		return fmt.Errorf("retry at %s: %w", f.step, ErrInvalidTransition)
	}
	f.start()
	f.step = StepPlaying
	return nil
}

// Back returns to the previous menu step.
func (f *Flow) Back() error {
	switch f.step {
	case StepCategory:
		f.activity = ActivityNone
		f.step = StepActivity
	case StepPack:
		f.step = StepCategory
	case StepPlaying:
		f.stop()
		f.step = StepPack
	case StepResult:
		f.Reset()
	default:
		return fmt.Errorf("back at %s: %w", f.step, ErrInvalidTransition)
	}
	return nil
}

// Reset returns to the activity menu, keeping the direction.
func (f *Flow) Reset() {
	f.stop()
	f.activity = ActivityNone
	f.category = catalog.CategoryAll
	f.pack = 0
	f.shuffle = false
	f.step = StepActivity
}

func (f *Flow) start() {
	ordering := selection.Sequential
	if f.activity == ActivityQuiz || f.shuffle {
		ordering = selection.Randomized
	}

	f.active = selection.DeriveActiveSet(f.deps.Catalog, selection.Config{
		Category:  f.category,
		PackIndex: f.pack,
		Ordering:  ordering,
	}, f.deps.Rand)
	f.runID = uuid.NewString()

	switch f.activity {
	case ActivityFlashcards:
		f.navigator = flashcard.New(f.active, f.direction)
		f.engine = nil
	case ActivityQuiz:
		f.engine = quiz.New(f.active, f.direction, quiz.BuildOptions{
			Rand:    f.deps.Rand,
			Padding: f.deps.Catalog.FilterByCategory(f.category),
		})
		f.navigator = nil
	}
}

func (f *Flow) stop() {
	f.active = nil
	f.navigator = nil
	f.engine = nil
	f.runID = ""
}
