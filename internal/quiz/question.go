package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/selection"
)

// MaxOptions is the number of options a question has when enough distinct
// answers are available.
const MaxOptions = 4

// Question is one multiple-choice prompt. Options are unique by value and
// contain Correct exactly once.
type Question struct {
	Word    catalog.Word
	Prompt  string
	Options []string
	Correct string
}

// CorrectIndex returns the position of the correct answer in Options.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Correct {
			return i
		}
	}
	return -1
}

// BuildOptions configures question construction.
type BuildOptions struct {
	// Rand drives every shuffle. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Padding supplies extra distractor candidates when the active set has
	// fewer than MaxOptions-1 distinct alternatives. Nil accepts fewer options.
	Padding []catalog.Word
}

// BuildQuestions creates one question per word, in the order given.
func BuildQuestions(words []catalog.Word, dir catalog.Direction, opts BuildOptions) []Question {
	rng := opts.Rand
	if rng == nil {
		rng = selection.NewRand(0)
	}

	questions := make([]Question, 0, len(words))
	for _, w := range words {
		correct := dir.Answer(w)

		used := map[string]bool{correct: true}
		distractors := pickDistractors(words, w, dir, used, MaxOptions-1, rng)
		if len(distractors) < MaxOptions-1 && len(opts.Padding) > 0 {
			distractors = append(distractors,
				pickDistractors(opts.Padding, w, dir, used, MaxOptions-1-len(distractors), rng)...)
		}

		options := append([]string{correct}, distractors...)
		selection.Shuffle(options, rng)

		questions = append(questions, Question{
			Word:    w,
			Prompt:  dir.Prompt(w),
			Options: options,
			Correct: correct,
		})
	}
	return questions
}

// pickDistractors returns up to n answer values from pool, skipping the
// prompt word and any value already in used. Chosen values are added to used.
func pickDistractors(pool []catalog.Word, prompt catalog.Word, dir catalog.Direction, used map[string]bool, n int, rng *rand.Rand) []string {
	var candidates []string
	seen := make(map[string]bool)
	for _, o := range pool {
		if o.ID == prompt.ID {
			continue
		}
		v := dir.Answer(o)
		if used[v] || seen[v] {
			continue
		}
		seen[v] = true
		candidates = append(candidates, v)
	}

	selection.Shuffle(candidates, rng)
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	for _, v := range candidates {
		used[v] = true
	}
	return candidates
}
