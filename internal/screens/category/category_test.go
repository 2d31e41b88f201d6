package category

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screens/packs"
	"github.com/abhisek/slovo/internal/selection"
	"github.com/abhisek/slovo/internal/session"
)

func flowAtCategory(t *testing.T) *session.Flow {
	t.Helper()
	f := session.New(session.Deps{Rand: selection.NewRand(1)})
	if err := f.ChooseActivity(session.ActivityFlashcards); err != nil {
		t.Fatalf("choose activity: %v", err)
	}
	return f
}

func TestCategoryScreen_ChooseNouns(t *testing.T) {
	f := flowAtCategory(t)
	s := New(f)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*packs.PacksScreen); !ok {
		t.Errorf("pushed %T, want *packs.PacksScreen", push.Screen)
	}
	if f.Category() != catalog.CategoryNoun || f.Step() != session.StepPack {
		t.Errorf("flow at %s with category %s", f.Step(), f.Category())
	}
}

func TestCategoryScreen_MixedIsLast(t *testing.T) {
	f := flowAtCategory(t)
	s := New(f)

	for range 3 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if f.Category() != catalog.CategoryAll {
		t.Errorf("category = %s, want all", f.Category())
	}
}

func TestCategoryScreen_Leave(t *testing.T) {
	f := flowAtCategory(t)
	New(f).Leave()
	if f.Step() != session.StepActivity || f.Activity() != session.ActivityNone {
		t.Errorf("flow at %s/%s after leave", f.Step(), f.Activity())
	}
}

func TestCategoryScreen_ViewShowsCounts(t *testing.T) {
	f := flowAtCategory(t)
	view := New(f).View(80, 24)

	for _, c := range []catalog.Category{catalog.CategoryVerb, catalog.CategoryNoun, catalog.CategoryNumber, catalog.CategoryAll} {
		if !strings.Contains(view, c.Label()) {
			t.Errorf("view missing %q", c.Label())
		}
	}
	if !strings.Contains(view, "mots)") {
		t.Error("view should show word counts")
	}
}
