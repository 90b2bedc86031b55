package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui/access"
	"tuikit/internal/ui/field"
	"tuikit/internal/ui/validate"
)

// Spec declares one form field: its presentation and the rules it
// must satisfy on submit.
type Spec struct {
	Options field.Options
	Rules   validate.Rules
}

// SubmittedMsg is emitted when the form passes validation. Values
// are keyed by field label.
type SubmittedMsg struct {
	Values map[string]string
}

// Model is a vertical stack of fields with tab-trapped focus,
// submit-time validation, and an announcer line for the outcome.
type Model struct {
	fields    []field.Model
	rules     []validate.Rules
	ring      access.Ring
	announcer access.Announcer
	submitted bool
}

// New creates a form from specs and focuses the first field.
func New(specs ...Spec) (Model, tea.Cmd) {
	m := Model{
		fields: make([]field.Model, len(specs)),
		rules:  make([]validate.Rules, len(specs)),
	}
	for i, s := range specs {
		m.fields[i] = field.New(s.Options)
		m.rules[i] = s.Rules
	}
	items := make([]access.Focusable, len(m.fields))
	for i := range m.fields {
		items[i] = &m.fields[i]
	}
	var cmd tea.Cmd
	m.ring, cmd = access.NewRing(items...)
	return m, cmd
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Values returns the current field values keyed by label.
func (m *Model) Values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for i := range m.fields {
		out[m.fields[i].Options().Label] = m.fields[i].Value()
	}
	return out
}

// Submitted reports whether the form has passed validation.
func (m *Model) Submitted() bool { return m.submitted }

// Validate runs every field's rules, pushes failures into the
// fields' error lines, and returns the per-field results.
func (m *Model) Validate() []validate.Result {
	results := make([]validate.Result, len(m.fields))
	for i := range m.fields {
		res := validate.Validate(m.fields[i].Value(), m.rules[i])
		results[i] = res
		if res.Valid {
			m.fields[i].SetError("")
		} else {
			m.fields[i].SetError(res.Errors[0])
		}
	}
	return results
}

// Update handles focus movement, submission, and field input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.announcer.Update(msg) {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, consumed := m.ring.HandleKey(msg); consumed {
			return m, cmd
		}
		if msg.String() == "enter" {
			if m.ring.Index() < len(m.fields)-1 {
				// Not on the last field yet: advance focus.
				return m, m.ring.Next()
			}
			return m.submit()
		}
	}
	// Route everything else to the focused field.
	idx := m.ring.Index()
	if idx < 0 || idx >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[idx], cmd = m.fields[idx].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	results := m.Validate()
	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}
	if failed > 0 {
		m.submitted = false
		return m, m.announcer.Announce(fmt.Sprintf("%d field(s) need attention", failed))
	}
	m.submitted = true
	values := m.Values()
	return m, tea.Batch(
		m.announcer.Announce("Form submitted"),
		func() tea.Msg { return SubmittedMsg{Values: values} },
	)
}

// View renders the fields, a submit hint, and the announcer line.
func (m Model) View() string {
	var b strings.Builder
	for i := range m.fields {
		b.WriteString(m.fields[i].View())
		b.WriteString("\n\n")
	}
	if m.submitted {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("[Submitted]"))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("tab to move, enter on the last field to submit"))
		b.WriteString("\n")
	}
	if live := m.announcer.View(); live != "" {
		b.WriteString(live)
		b.WriteString("\n")
	}
	return b.String()
}
