package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestAnswerChoices_DigitSubmits(t *testing.T) {
	mc := NewAnswerChoices([]string{"chat", "chien", "maison"}, 1)

	mc, _ = mc.Update(key('2'))
	if !mc.Answered() || !mc.IsCorrect() {
		t.Fatalf("expected correct submission, got %+v", mc)
	}
	if got, _ := mc.Answer(); got != "chien" {
		t.Fatalf("chosen = %q", got)
	}

	mc, _ = mc.Update(key('1'))
	if mc.Chosen != 1 {
		t.Fatal("submitted choice must not change")
	}
}

func TestAnswerChoices_DigitOutOfRangeIgnored(t *testing.T) {
	mc := NewAnswerChoices([]string{"un", "deux"}, 0)
	mc, _ = mc.Update(key('4'))
	if mc.Answered() {
		t.Fatal("digit beyond option count should be ignored")
	}
}

func TestAnswerChoices_ArrowsAndEnter(t *testing.T) {
	mc := NewAnswerChoices([]string{"a", "b", "c"}, 2)
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.IsCorrect() {
		t.Fatalf("expected to land on last option, chosen %d", mc.Chosen)
	}
	if !strings.Contains(mc.View(), "✓") {
		t.Error("view should mark the correct answer")
	}
}

func TestMenu_SkipsDisabledAndRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one", Action: func() tea.Cmd { ran = "one"; return nil }},
		{Label: "two", Detail: "(3)", Action: func() tea.Cmd { ran = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Fatal("up should not land on a disabled item")
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "two" {
		t.Fatalf("ran %q, want two", ran)
	}
	if !strings.Contains(m.View(), "(3)") {
		t.Error("view should include item detail")
	}
}

func TestQuestionProgress(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		total    int
		answered bool
		label    string
	}{
		{"first question", 0, 10, false, "Question 1 / 10"},
		{"answered last", 9, 10, true, "Question 10 / 10"},
		{"index past end", 12, 10, false, "Question 10 / 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuestionProgress(tt.index, tt.total, tt.answered, 60)
			if !strings.Contains(got, tt.label) {
				t.Errorf("view %q missing %q", got, tt.label)
			}
		})
	}
	if got := QuestionProgress(0, 0, false, 60); got != "" {
		t.Errorf("empty quiz rendered %q", got)
	}
}

func TestNextButton(t *testing.T) {
	if !strings.Contains(NextButton(false), "Suivant →") {
		t.Error("next button should advance to the following question")
	}
	if !strings.Contains(NextButton(true), "Voir le score !") {
		t.Error("last question should lead to the score")
	}
}

func TestButtonRow_FocusAndShortcuts(t *testing.T) {
	pressed := ""
	row := NewButtonRow(
		Button{Label: "Réessayer", Key: "r", OnPress: func() tea.Cmd { pressed = "retry"; return nil }},
		Button{Label: "Retour au menu", Key: "m", OnPress: func() tea.Cmd { pressed = "menu"; return nil }},
	)

	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if row.Focus != 1 {
		t.Fatalf("focus = %d, want 1", row.Focus)
	}
	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if row.Focus != 0 {
		t.Fatalf("focus should wrap, got %d", row.Focus)
	}
	row.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "retry" {
		t.Fatalf("enter pressed %q", pressed)
	}
	row.Update(key('m'))
	if pressed != "menu" {
		t.Fatalf("shortcut pressed %q", pressed)
	}
	if view := row.View(); !strings.Contains(view, "▸ Réessayer") || !strings.Contains(view, "Retour au menu") {
		t.Errorf("view = %q", view)
	}
}
