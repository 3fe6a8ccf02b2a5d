package repl

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	lperror "github.com/msto63/lanpy/pkg/core/error"
	"github.com/msto63/lanpy/pkg/token"
)

func newSizedModel(t *testing.T) Model {
	t.Helper()
	updated, _ := New(nil).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// submit types line, presses enter and feeds the evaluation result back
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("enter on %q returned no command", line)
	}

	msg := cmd()
	result, ok := msg.(evalResultMsg)
	if !ok {
		t.Fatalf("command returned %T, want evalResultMsg", msg)
	}

	updated, _ = m.Update(result)
	return updated.(Model)
}

func lastEntry(t *testing.T, m Model) Entry {
	t.Helper()
	entries := m.Entries()
	if len(entries) == 0 {
		t.Fatal("transcript is empty")
	}
	return entries[len(entries)-1]
}

func TestModel_Evaluate(t *testing.T) {
	m := newSizedModel(t)

	m = submit(t, m, "let x = 6;")
	m = submit(t, m, "print x * 7;")
	m = submit(t, m, "x / 2;")

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Output != "" || entries[0].Err != nil {
		t.Errorf("let entry = %+v", entries[0])
	}
	if entries[1].Output != "42" {
		t.Errorf("print output = %q, want 42", entries[1].Output)
	}
	if entries[2].Output != "3" {
		t.Errorf("echo output = %q, want 3", entries[2].Output)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after enter")
	}
}

func TestModel_EvaluateError(t *testing.T) {
	m := newSizedModel(t)
	m = submit(t, m, "print 1 / 0;")

	entry := lastEntry(t, m)
	if !lperror.HasCode(entry.Err, lperror.CodeEvaluation) {
		t.Fatalf("Err = %v, want EVALUATION_ERROR", entry.Err)
	}
	if !strings.Contains(m.View(), "division by zero") {
		t.Error("view should show the error")
	}
}

func TestModel_Commands(t *testing.T) {
	m := newSizedModel(t)
	m = submit(t, m, `let s = "hi"; let n = 2;`)

	m = submit(t, m, ":vars")
	if got := lastEntry(t, m).Output; got != "n = 2\ns = \"hi\"" {
		t.Errorf(":vars output = %q", got)
	}

	m = submit(t, m, ":tokens let y = 1;")
	out := lastEntry(t, m).Output
	for _, want := range []string{"LET", "WORD", "ASSIGN", "NUMBER", "SEMICOLON"} {
		if !strings.Contains(out, want) {
			t.Errorf(":tokens output missing %s:\n%s", want, out)
		}
	}

	m = submit(t, m, ":reset")
	m = submit(t, m, ":vars")
	if got := lastEntry(t, m).Output; got != "(keine Variablen)" {
		t.Errorf(":vars after reset = %q", got)
	}
}

func TestModel_History(t *testing.T) {
	m := newSizedModel(t)
	m = submit(t, m, "1;")
	m = submit(t, m, "2;")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "2;" {
		t.Errorf("first up = %q, want 2;", m.input.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "1;" {
		t.Errorf("second up = %q, want 1;", m.input.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.input.Value() != "" {
		t.Errorf("down past the end = %q, want empty", m.input.Value())
	}
}

func TestModel_EmptyInputAndQuit(t *testing.T) {
	m := newSizedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty input should not start an evaluation")
	}

	m.input.SetValue(":quit")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal(":quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error(":quit should quit")
	}
}

func TestModel_ClearTranscript(t *testing.T) {
	m := newSizedModel(t)
	m = submit(t, m, "1;")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	if len(m.Entries()) != 0 {
		t.Error("ctrl+l should clear the transcript")
	}
}

func TestRenderTokens(t *testing.T) {
	out := RenderTokens([]token.Token{
		token.New(token.NUMBER, "12"),
		token.New("PLUS", "+"),
	})

	for _, want := range []string{"NAME", "VALUE", "NUMBER", `"12"`, "PLUS"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderError(t *testing.T) {
	coded := RenderError(lperror.New("boom").WithCode(lperror.CodeEvaluation))
	if !strings.Contains(coded, "EVALUATION_ERROR") {
		t.Errorf("coded error = %q", coded)
	}

	plain := RenderError(errors.New("boom"))
	if strings.Contains(plain, "UNKNOWN") {
		t.Errorf("plain error should have no code: %q", plain)
	}
}
