package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/router"
	"github.com/abhisek/slovo/internal/screens/result"
	"github.com/abhisek/slovo/internal/selection"
	"github.com/abhisek/slovo/internal/session"
)

var keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func quizFlow(t *testing.T, pack int) *session.Flow {
	t.Helper()
	f := session.New(session.Deps{Rand: selection.NewRand(11)})
	for _, err := range []error{
		f.ChooseActivity(session.ActivityQuiz),
		f.ChooseCategory(catalog.CategoryNoun),
		f.ChoosePack(pack),
	} {
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return f
}

// correctKey returns the digit key that picks the right option.
func correctKey(t *testing.T, f *session.Flow) tea.KeyPressMsg {
	t.Helper()
	q, ok := f.Quiz().Current()
	if !ok {
		t.Fatal("no current question")
	}
	return press(rune('1' + q.CorrectIndex()))
}

func TestQuizScreen_AnswerAndAdvance(t *testing.T) {
	f := quizFlow(t, 0)
	s := New(f)
	e := f.Quiz()

	s.Update(correctKey(t, f))
	if !e.Answered() || e.Score() != 1 {
		t.Fatalf("answered=%v score=%d", e.Answered(), e.Score())
	}
	if !strings.Contains(s.View(80, 40), "Correct !") {
		t.Error("view should show positive feedback")
	}

	s.Update(keyEnter)
	if e.Index() != 1 || e.Answered() {
		t.Fatalf("after enter: index %d answered %v", e.Index(), e.Answered())
	}
}

func TestQuizScreen_WrongAnswerShowsCorrection(t *testing.T) {
	f := quizFlow(t, 0)
	s := New(f)

	q, _ := f.Quiz().Current()
	wrong := (q.CorrectIndex() + 1) % len(q.Options)
	s.Update(press(rune('1' + wrong)))

	if f.Quiz().Score() != 0 {
		t.Fatal("wrong answer should not score")
	}
	if !strings.Contains(s.View(80, 40), "La bonne réponse : "+q.Correct) {
		t.Error("view should show the correct answer")
	}
}

func TestQuizScreen_SecondAnswerIgnored(t *testing.T) {
	f := quizFlow(t, 0)
	s := New(f)

	s.Update(correctKey(t, f))
	s.Update(press('1'))
	s.Update(press('2'))
	if f.Quiz().Score() != 1 || f.Quiz().Index() != 0 {
		t.Fatalf("score %d index %d", f.Quiz().Score(), f.Quiz().Index())
	}
}

func TestQuizScreen_CompletesToResult(t *testing.T) {
	f := quizFlow(t, 0)
	s := New(f)

	var cmd tea.Cmd
	for i := 0; i < f.Quiz().Len(); i++ {
		s.Update(correctKey(t, f))
		_, cmd = s.Update(keyEnter)
	}
	if cmd == nil {
		t.Fatal("expected finish command after last question")
	}

	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*result.ResultScreen); !ok {
		t.Errorf("replaced with %T", msg.Screen)
	}
	if f.Step() != session.StepResult {
		t.Errorf("step = %s, want result", f.Step())
	}
	if sum := f.Summary(); sum.Score != 10 || sum.Total != 10 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestQuizScreen_EmptyPackFinishesImmediately(t *testing.T) {
	f := quizFlow(t, 4)
	s := New(f)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected finish command for an empty quiz")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if f.Step() != session.StepResult || f.Summary().Total != 0 {
		t.Errorf("flow at %s with %+v", f.Step(), f.Summary())
	}
}

func TestQuizScreen_Leave(t *testing.T) {
	f := quizFlow(t, 0)
	New(f).Leave()
	if f.Step() != session.StepPack || f.Quiz() != nil {
		t.Errorf("leave should abandon the quiz, step %s", f.Step())
	}
}
