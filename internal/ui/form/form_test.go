package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/ui/field"
	"tuikit/internal/ui/validate"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func signupForm() (Model, tea.Cmd) {
	return New(
		Spec{
			Options: field.Options{Label: "Username"},
			Rules:   validate.Rules{Required: true, MinLength: 3},
		},
		Spec{
			Options: field.Options{Label: "Password", Password: true, ShowPasswordToggle: true},
			Rules:   validate.Rules{Required: true, MinLength: 8},
		},
	)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func TestFormFocusesFirstField(t *testing.T) {
	m, _ := signupForm()
	if m.ring.Index() != 0 {
		t.Fatalf("expected first field focused, got index %d", m.ring.Index())
	}
}

func TestFormTabCyclesFocus(t *testing.T) {
	m, _ := signupForm()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ring.Index() != 1 {
		t.Fatalf("expected second field focused, got %d", m.ring.Index())
	}
	// Tab on the last field wraps back to the first.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.ring.Index() != 0 {
		t.Fatalf("expected wraparound to first field, got %d", m.ring.Index())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ring.Index() != 1 {
		t.Fatalf("expected shift+tab wrap to last field, got %d", m.ring.Index())
	}
}

func TestFormTypingReachesFocusedField(t *testing.T) {
	m, _ := signupForm()
	m = typeString(m, "alice")
	if m.Values()["Username"] != "alice" {
		t.Fatalf("expected typed value in focused field, got %q", m.Values()["Username"])
	}
	if m.Values()["Password"] != "" {
		t.Fatal("unfocused field must not receive input")
	}
}

func TestFormSubmitInvalid(t *testing.T) {
	m, _ := signupForm()
	m = typeString(m, "al")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	// Enter on the last field submits.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Submitted() {
		t.Fatal("short username and empty password must not submit")
	}
	view := m.View()
	if !strings.Contains(view, "at least 3") {
		t.Fatalf("expected username length error in view:\n%s", view)
	}
	if !strings.Contains(view, "2 field(s) need attention") {
		t.Fatalf("expected announcement in view:\n%s", view)
	}
}

func TestFormSubmitValid(t *testing.T) {
	m, _ := signupForm()
	m = typeString(m, "alice")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // advance to password
	m = typeString(m, "hunter2hunter2")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Submitted() {
		t.Fatal("expected valid form to submit")
	}
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if !strings.Contains(m.View(), "[Submitted]") {
		t.Fatal("expected submitted marker in view")
	}
}

func TestFormEnterAdvancesBeforeLastField(t *testing.T) {
	m, _ := signupForm()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.ring.Index() != 1 {
		t.Fatalf("enter on a non-final field must advance focus, got %d", m.ring.Index())
	}
	if m.Submitted() {
		t.Fatal("enter on a non-final field must not submit")
	}
}
