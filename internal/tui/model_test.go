package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/givers/contact/internal/formspec"
	"github.com/givers/contact/internal/model"
	"github.com/givers/contact/internal/validation"
)

func newTestModel() Model {
	return New(formspec.Default(), validation.NewChecker())
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestModel_TypingUpdatesOnlyFocusedField(t *testing.T) {
	m := send(t, newTestModel(), runes("Jane"))
	want := model.ContactForm{Name: "Jane"}
	if m.Form() != want {
		t.Fatalf("expected %+v, got %+v", want, m.Form())
	}

	m = send(t, m, tab, runes("jane@x.com"))
	want.Email = "jane@x.com"
	if m.Form() != want {
		t.Errorf("expected %+v, got %+v", want, m.Form())
	}
}

func TestModel_SubmitExample(t *testing.T) {
	m := send(t, newTestModel(),
		runes("Jane"), tab,
		runes("jane@x.com"), tab,
		runes("Hi"),
		ctrlS,
	)

	if m.Status() != model.SuccessStatus {
		t.Fatalf("expected success status, got %q", m.Status())
	}
	if !m.Form().IsEmpty() {
		t.Errorf("expected fields reset, got %+v", m.Form())
	}
	if m.name.Value() != "" || m.email.Value() != "" || m.message.Value() != "" {
		t.Error("expected inputs cleared")
	}
	if m.focus != focusName {
		t.Errorf("expected focus back on name, got %d", m.focus)
	}
	if !strings.Contains(m.View(), string(model.SuccessStatus)) {
		t.Error("expected status in rendered view")
	}
}

func TestModel_EnterOnButtonSubmits(t *testing.T) {
	m := send(t, newTestModel(),
		runes("Jane"), enter,
		runes("jane@x.com"), enter,
		runes("Hi"), tab,
		enter,
	)
	if m.Status() != model.SuccessStatus {
		t.Errorf("expected success status, got %q", m.Status())
	}
}

func TestModel_BlockedSubmitFocusesMissingField(t *testing.T) {
	m := send(t, newTestModel(), runes("Jane"), tab, tab, runes("Hi"), ctrlS)

	if m.Status() != "" {
		t.Errorf("status must not change, got %q", m.Status())
	}
	if m.focus != focusEmail {
		t.Errorf("expected focus on email, got %d", m.focus)
	}
	if m.Form() != (model.ContactForm{Name: "Jane", Message: "Hi"}) {
		t.Errorf("form changed: %+v", m.Form())
	}
	if !strings.Contains(m.View(), "Please fill out this field.") {
		t.Error("expected required hint in view")
	}

	m = send(t, m, runes("j"))
	if strings.Contains(m.View(), "Please fill out this field.") {
		t.Error("hint should clear once the field is edited")
	}
}

func TestModel_FocusWraps(t *testing.T) {
	m := send(t, newTestModel(), shiftTab)
	if m.focus != focusSubmit {
		t.Errorf("expected wrap to submit, got %d", m.focus)
	}
	m = send(t, m, tab)
	if m.focus != focusName {
		t.Errorf("expected wrap to name, got %d", m.focus)
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newTestModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_ViewShowsLabels(t *testing.T) {
	v := newTestModel().View()
	for _, want := range []string{"Contact Us", "Full Name", "Email Address", "Your Message", "Send Message"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
