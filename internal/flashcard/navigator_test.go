package flashcard

import (
	"fmt"
	"testing"

	"github.com/abhisek/slovo/internal/catalog"
)

func deck(n int) []catalog.Word {
	out := make([]catalog.Word, n)
	for i := range out {
		out[i] = catalog.Word{
			ID:      fmt.Sprintf("w%d", i),
			Russian: fmt.Sprintf("ру%d", i),
			French:  fmt.Sprintf("fr%d", i),
		}
	}
	return out
}

func TestNextPrevWrap(t *testing.T) {
	n := New(deck(3), catalog.RussianToFrench)

	n.Prev()
	if n.Index() != 2 {
		t.Fatalf("prev from 0 = %d, want 2", n.Index())
	}
	n.Next()
	if n.Index() != 0 {
		t.Fatalf("next from 2 = %d, want 0", n.Index())
	}
}

func TestNextPrevRoundTrip(t *testing.T) {
	for size := 1; size <= 5; size++ {
		n := New(deck(size), catalog.RussianToFrench)
		for start := range size {
			for n.Index() != start {
				n.Next()
			}
			n.Next()
			n.Prev()
			if n.Index() != start {
				t.Errorf("size %d: next/prev from %d landed on %d", size, start, n.Index())
			}
			n.Prev()
			n.Next()
			if n.Index() != start {
				t.Errorf("size %d: prev/next from %d landed on %d", size, start, n.Index())
			}
		}
	}
}

func TestEmptyNavigator(t *testing.T) {
	n := New(nil, catalog.RussianToFrench)
	n.Next()
	n.Prev()
	n.ToggleReveal()

	if n.Index() != 0 {
		t.Errorf("index = %d, want 0", n.Index())
	}
	if _, ok := n.Current(); ok {
		t.Error("empty navigator should have no current word")
	}
	if n.Revealed() {
		t.Error("empty navigator cannot be revealed")
	}
	if n.Prompt() != "" || n.Answer() != "" {
		t.Error("empty navigator should render no text")
	}
}

func TestRevealResetsOnMove(t *testing.T) {
	n := New(deck(3), catalog.RussianToFrench)

	n.ToggleReveal()
	if !n.Revealed() {
		t.Fatal("expected revealed")
	}
	n.Next()
	if n.Revealed() {
		t.Fatal("reveal should reset after next")
	}

	n.ToggleReveal()
	n.Prev()
	if n.Revealed() {
		t.Fatal("reveal should reset after prev")
	}
}

func TestDirectionAppliesToAllCards(t *testing.T) {
	n := New(deck(2), catalog.RussianToFrench)
	if n.Prompt() != "ру0" || n.Answer() != "fr0" {
		t.Fatalf("RU→FR card = %q/%q", n.Prompt(), n.Answer())
	}

	n.ToggleReveal()
	n.ToggleDirection()
	if !n.Revealed() {
		t.Error("direction toggle should not hide the card")
	}
	if n.Prompt() != "fr0" || n.Answer() != "ру0" {
		t.Fatalf("FR→RU card = %q/%q", n.Prompt(), n.Answer())
	}

	n.Next()
	if n.Prompt() != "fr1" {
		t.Errorf("direction not kept across cards: %q", n.Prompt())
	}
}
