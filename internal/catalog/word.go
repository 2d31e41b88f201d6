package catalog

import (
	"fmt"
	"strings"
)

// Category tags a word with its part of speech.
type Category string

const (
	CategoryVerb   Category = "verb"
	CategoryNoun   Category = "noun"
	CategoryNumber Category = "number"

	// CategoryAll is a filter value, never stored on a word.
	CategoryAll Category = "all"
)

// Categories lists the concrete categories in display order.
var Categories = []Category{CategoryVerb, CategoryNoun, CategoryNumber}

// Valid reports whether c is a concrete word category.
func (c Category) Valid() bool {
	switch c {
	case CategoryVerb, CategoryNoun, CategoryNumber:
		return true
	}
	return false
}

// Label returns the French display label.
func (c Category) Label() string {
	switch c {
	case CategoryVerb:
		return "Verbes"
	case CategoryNoun:
		return "Noms"
	case CategoryNumber:
		return "Nombres"
	case CategoryAll:
		return "Mixte"
	}
	return string(c)
}

// ParseCategory accepts singular, plural and French spellings.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verb", "verbs", "verbe", "verbes":
		return CategoryVerb, nil
	case "noun", "nouns", "nom", "noms":
		return CategoryNoun, nil
	case "number", "numbers", "nombre", "nombres":
		return CategoryNumber, nil
	case "", "all", "both", "mix", "mixte":
		return CategoryAll, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Word is a single Russian-French vocabulary record.
type Word struct {
	ID       string   `yaml:"id"`
	Russian  string   `yaml:"russian"`
	French   string   `yaml:"french"`
	Phonetic string   `yaml:"phonetic"`
	Category Category `yaml:"category"`
	Example  string   `yaml:"example,omitempty"`
}

// Direction selects which language is shown as the prompt.
type Direction int

const (
	RussianToFrench Direction = iota
	FrenchToRussian
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == RussianToFrench {
		return FrenchToRussian
	}
	return RussianToFrench
}

// Prompt returns the side of w shown to the learner.
func (d Direction) Prompt(w Word) string {
	if d == FrenchToRussian {
		return w.French
	}
	return w.Russian
}

// Answer returns the side of w the learner must produce.
func (d Direction) Answer(w Word) string {
	if d == FrenchToRussian {
		return w.Russian
	}
	return w.French
}

// PromptLanguage names the prompt language in French.
func (d Direction) PromptLanguage() string {
	if d == FrenchToRussian {
		return "Français"
	}
	return "Russe"
}

// AnswerLanguage names the answer language in French.
func (d Direction) AnswerLanguage() string {
	if d == FrenchToRussian {
		return "Russe"
	}
	return "Français"
}

func (d Direction) String() string {
	if d == FrenchToRussian {
		return "FR → RU"
	}
	return "RU → FR"
}
