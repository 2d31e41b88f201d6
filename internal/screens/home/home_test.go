package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screens/category"
	"github.com/abhisek/slovo/internal/selection"
	"github.com/abhisek/slovo/internal/session"
)

func newFlow() *session.Flow {
	return session.New(session.Deps{Rand: selection.NewRand(1)})
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(newFlow())
	if h.Title() != "Accueil" {
		t.Errorf("Title = %q, want %q", h.Title(), "Accueil")
	}
}

func TestHomeScreen_ToggleDirection(t *testing.T) {
	f := newFlow()
	h := New(f)

	h.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if f.Direction() != catalog.FrenchToRussian {
		t.Fatalf("direction = %v, want FR → RU", f.Direction())
	}
	h.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if f.Direction() != catalog.RussianToFrench {
		t.Fatalf("direction = %v, want RU → FR", f.Direction())
	}
}

func TestHomeScreen_StartFlashcards(t *testing.T) {
	f := newFlow()
	h := New(f)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*category.CategoryScreen); !ok {
		t.Errorf("pushed %T, want *category.CategoryScreen", push.Screen)
	}
	if f.Step() != session.StepCategory || f.Activity() != session.ActivityFlashcards {
		t.Errorf("flow at %s/%s", f.Step(), f.Activity())
	}
}

func TestHomeScreen_StartQuiz(t *testing.T) {
	f := newFlow()
	h := New(f)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if f.Activity() != session.ActivityQuiz {
		t.Errorf("activity = %s, want quiz", f.Activity())
	}
}

func TestHomeScreen_Quit(t *testing.T) {
	h := New(newFlow())

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHomeScreen_View(t *testing.T) {
	view := New(newFlow()).View(80, 24)
	for _, want := range []string{"С Л О В О", "Cartes mémoire", "Quiz", "Quitter", "Russe → Français"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	if got := renderBanner(120, 40); !strings.Contains(got, "███████╗") {
		t.Error("large area should render the art banner")
	}
	if got := renderBanner(40, 40); !strings.Contains(got, bannerCompact) {
		t.Error("narrow area should render the compact banner")
	}
	if got := renderBanner(120, 20); !strings.Contains(got, bannerCompact) {
		t.Error("short area should render the compact banner")
	}
}
