package flashcard

import "github.com/abhisek/slovo/internal/catalog"

// Navigator walks a word set cyclically, one card at a time.
type Navigator struct {
	words     []catalog.Word
	index     int
	revealed  bool
	direction catalog.Direction
}

// New creates a Navigator positioned on the first word.
func New(words []catalog.Word, dir catalog.Direction) *Navigator {
	w := make([]catalog.Word, len(words))
	copy(w, words)
	return &Navigator{words: w, direction: dir}
}

// Len returns the number of cards.
func (n *Navigator) Len() int { return len(n.words) }

// Empty reports whether there are no cards to show.
func (n *Navigator) Empty() bool { return len(n.words) == 0 }

// Index returns the zero-based position of the current card.
func (n *Navigator) Index() int { return n.index }

// Current returns the word on the current card, or false when empty.
func (n *Navigator) Current() (catalog.Word, bool) {
	if len(n.words) == 0 {
		return catalog.Word{}, false
	}
	return n.words[n.index], true
}

// Next moves to the following card, wrapping to the first.
func (n *Navigator) Next() {
	if len(n.words) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.words)
	n.revealed = false
}

// Prev moves to the previous card, wrapping to the last.
func (n *Navigator) Prev() {
	if len(n.words) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.words)) % len(n.words)
	n.revealed = false
}

// Revealed reports whether the answer side is showing.
func (n *Navigator) Revealed() bool { return n.revealed }

// ToggleReveal flips the current card.
func (n *Navigator) ToggleReveal() {
	if len(n.words) == 0 {
		return
	}
	n.revealed = !n.revealed
}

// Direction returns the prompt/answer direction applied to every card.
func (n *Navigator) Direction() catalog.Direction { return n.direction }

// SetDirection applies dir to every card.
func (n *Navigator) SetDirection(dir catalog.Direction) { n.direction = dir }

// ToggleDirection swaps prompt and answer languages for every card.
func (n *Navigator) ToggleDirection() { n.direction = n.direction.Toggle() }

// Prompt returns the visible side of the current card.
func (n *Navigator) Prompt() string {
	w, ok := n.Current()
	if !ok {
		return ""
	}
	return n.direction.Prompt(w)
}

// Answer returns the hidden side of the current card.
func (n *Navigator) Answer() string {
	w, ok := n.Current()
	if !ok {
		return ""
	}
	return n.direction.Answer(w)
}
