package field

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui/uiconst"
)

// Variant selects the visual treatment of the field.
type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantGhost
)

// Size selects the input width.
type Size int

const (
	SizeMD Size = iota
	SizeSM
	SizeLG
)

// Key bindings for the field's own affordances.
const (
	keyClear  = "ctrl+u"
	keyReveal = "ctrl+r"
)

// Options configures a field. The value itself is owned by the
// embedded text input; everything here is presentation and behavior.
type Options struct {
	Label        string
	Placeholder  string
	HelperText   string
	ErrorMessage string

	Variant Variant
	Size    Size

	// Password masks the value and, with ShowPasswordToggle, allows
	// revealing it.
	Password           bool
	ShowPasswordToggle bool

	Disabled  bool
	Invalid   bool
	Loading   bool
	Clearable bool

	CharLimit int
}

var idCounter atomic.Int64

// nextID returns a process-unique id used to associate the label and
// description lines with the input.
func nextID() string {
	return fmt.Sprintf("field-%d", idCounter.Add(1))
}

// Model is a labeled text input with helper/error text, optional
// clear affordance, and an optional password reveal toggle. The
// reveal flag is the only state the model owns beyond the input
// itself; validity and error text are controlled by the caller.
type Model struct {
	opts     Options
	input    textinput.Model
	spinner  spinner.Model
	id       string
	revealed bool
}

// New creates a field from opts.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = ""
	ti.Width = widthFor(opts.Size)
	if opts.CharLimit > 0 {
		ti.CharLimit = opts.CharLimit
	}
	if opts.Password {
		ti.EchoMode = textinput.EchoPassword
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{opts: opts, input: ti, spinner: s, id: nextID()}
}

func widthFor(size Size) int {
	switch size {
	case SizeSM:
		return uiconst.FieldWidthSM
	case SizeLG:
		return uiconst.FieldWidthLG
	default:
		return uiconst.FieldWidthMD
	}
}

// ID returns the generated id linking label and description to the
// input. Unique per process.
func (m *Model) ID() string { return m.id }

// Value returns the current input value.
func (m *Model) Value() string { return m.input.Value() }

// SetValue replaces the current input value.
func (m *Model) SetValue(v string) { m.input.SetValue(v) }

// SetError sets the caller-controlled error message and marks the
// field invalid; an empty message clears both.
func (m *Model) SetError(msg string) {
	m.opts.ErrorMessage = msg
	m.opts.Invalid = msg != ""
}

// Options returns the field configuration.
func (m *Model) Options() Options { return m.opts }

// Revealed reports whether a password value is currently unmasked.
func (m *Model) Revealed() bool { return m.revealed }

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	if !m.CanFocus() {
		return nil
	}
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() { m.input.Blur() }

// Focused reports whether the input has keyboard focus.
func (m *Model) Focused() bool { return m.input.Focused() }

// CanFocus reports whether the field can take focus; disabled and
// loading fields are non-interactive.
func (m *Model) CanFocus() bool { return !m.opts.Disabled && !m.opts.Loading }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.opts.Loading {
		return tea.Batch(textinput.Blink, m.spinner.Tick)
	}
	return textinput.Blink
}

// clearAvailable reports whether the clear affordance is active:
// clearable, non-empty, and interactive.
func (m Model) clearAvailable() bool {
	return m.opts.Clearable && m.input.Value() != "" && m.CanFocus()
}

// Update handles key input and spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.opts.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if !m.CanFocus() {
			// Disabled or loading: ignore all input.
			return m, nil
		}
		switch msg.String() {
		case keyClear:
			if !m.clearAvailable() {
				return m, nil
			}
			m.input.SetValue("")
			id := m.id
			return m, tea.Batch(
				func() tea.Msg { return ClearedMsg{ID: id} },
				func() tea.Msg { return ChangedMsg{ID: id, Value: ""} },
			)
		case keyReveal:
			if !m.opts.Password || !m.opts.ShowPasswordToggle {
				return m, nil
			}
			m.revealed = !m.revealed
			if m.revealed {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		}
		old := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != old {
			id := m.id
			return m, tea.Batch(cmd, func() tea.Msg { return ChangedMsg{ID: id, Value: v} })
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the label, input line, and helper or error text.
func (m Model) View() string {
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Bold(true)
	if m.opts.Disabled {
		labelStyle = labelStyle.Faint(true)
	}
	if m.opts.Label != "" {
		b.WriteString(labelStyle.Render(m.opts.Label))
		b.WriteString("\n")
	}

	var line strings.Builder
	if m.opts.Loading {
		line.WriteString(m.spinner.View())
		line.WriteString(" ")
	}
	line.WriteString(m.input.View())
	if m.clearAvailable() {
		line.WriteString(lipgloss.NewStyle().Faint(true).Render(" ✕"))
	}
	if m.opts.Password && m.opts.ShowPasswordToggle && m.revealed {
		line.WriteString(lipgloss.NewStyle().Faint(true).Render(" (shown)"))
	}
	b.WriteString(m.inputStyle().Render(line.String()))

	// Description line: error wins over helper, absent when neither
	// is set.
	if m.opts.Invalid && m.opts.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.opts.ErrorMessage))
	} else if m.opts.HelperText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.opts.HelperText))
	}
	return b.String()
}

// inputStyle returns the lipgloss style for the input line based on
// variant, validity, and interactivity.
func (m Model) inputStyle() lipgloss.Style {
	style := lipgloss.NewStyle()
	switch m.opts.Variant {
	case VariantOutlined:
		style = style.Border(lipgloss.NormalBorder()).Padding(0, 1)
	case VariantGhost:
		// No decoration.
	default:
		style = style.Background(lipgloss.Color("236")).Padding(0, 1)
	}
	if m.opts.Invalid {
		style = style.BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("196"))
	}
	if m.opts.Disabled || m.opts.Loading {
		style = style.Faint(true)
	}
	return style
}
