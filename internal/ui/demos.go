package ui

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/dataset"
	"tuikit/internal/ui/access"
	"tuikit/internal/ui/datatable"
	"tuikit/internal/ui/field"
	formui "tuikit/internal/ui/form"
	"tuikit/internal/ui/validate"
)

var sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hexPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// tableDemo shows a dataset through the datatable component.
type tableDemo struct {
	title string
	table datatable.Model
}

func newTableDemo(ds dataset.Dataset, pageSize int, selectable bool) tableDemo {
	title := ds.Name
	if selectable {
		title += " (selectable)"
	}
	return tableDemo{
		title: title,
		table: datatable.New(ds.TableRows(), datatable.Options{
			Columns:           ds.TableColumns(),
			Searchable:        true,
			SearchPlaceholder: "Search " + ds.Name + "...",
			Selectable:        selectable,
			Paginated:         true,
			PageSize:          pageSize,
			ShowRowCount:      true,
		}),
	}
}

// Init implements tea.Model.
func (m tableDemo) Init() tea.Cmd { return m.table.Init() }

// Update forwards messages to the table.
func (m tableDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table under a section title.
func (m tableDemo) View() string {
	return sectionTitleStyle.Render(m.title) + "\n\n" + m.table.View()
}

var _ tea.Model = (*tableDemo)(nil)

// fieldsDemo showcases the input field variants with a tab-trapped
// focus ring. The disabled and loading fields are part of the ring's
// input but never receive focus.
type fieldsDemo struct {
	fields []field.Model
	ring   access.Ring
	last   string // last change notification, for display
}

func newFieldsDemo() (fieldsDemo, tea.Cmd) {
	m := fieldsDemo{fields: []field.Model{
		field.New(field.Options{Label: "Name", Placeholder: "Jane Doe", Variant: field.VariantOutlined, Clearable: true}),
		field.New(field.Options{Label: "Email", Placeholder: "jane@example.com", HelperText: "We never share it", Variant: field.VariantFilled}),
		field.New(field.Options{Label: "Password", Password: true, ShowPasswordToggle: true, HelperText: "ctrl+r to reveal", Variant: field.VariantOutlined}),
		field.New(field.Options{Label: "Disabled", Disabled: true, Variant: field.VariantGhost}),
		field.New(field.Options{Label: "Loading", Loading: true, Variant: field.VariantGhost}),
	}}
	items := make([]access.Focusable, len(m.fields))
	for i := range m.fields {
		items[i] = &m.fields[i]
	}
	var cmd tea.Cmd
	m.ring, cmd = access.NewRing(items...)
	return m, cmd
}

// Init implements tea.Model.
func (m fieldsDemo) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.fields {
		cmds = append(cmds, m.fields[i].Init())
	}
	return tea.Batch(cmds...)
}

// Update routes keys to the focused field.
func (m fieldsDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, consumed := m.ring.HandleKey(msg); consumed {
			return m, cmd
		}
	case field.ChangedMsg:
		m.last = fmt.Sprintf("changed %s: %q", msg.ID, msg.Value)
		return m, nil
	case field.ClearedMsg:
		m.last = fmt.Sprintf("cleared %s", msg.ID)
		return m, nil
	}
	idx := m.ring.Index()
	if idx < 0 || idx >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[idx], cmd = m.fields[idx].Update(msg)
	return m, cmd
}

// View renders all fields plus the last emitted notification.
func (m fieldsDemo) View() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Input Fields"))
	b.WriteString("\n\n")
	for i := range m.fields {
		b.WriteString(m.fields[i].View())
		b.WriteString("\n\n")
	}
	if m.last != "" {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.last))
		b.WriteString("\n")
	}
	return b.String()
}

var _ tea.Model = (*fieldsDemo)(nil)

// formDemo wraps the signup form.
type formDemo struct {
	model formui.Model
}

func newFormDemo() (formDemo, tea.Cmd) {
	m, cmd := formui.New(
		formui.Spec{
			Options: field.Options{Label: "Username", Placeholder: "letters and digits", Variant: field.VariantOutlined},
			Rules:   validate.Rules{Required: true, MinLength: 3, MaxLength: 24},
		},
		formui.Spec{
			Options: field.Options{Label: "Email", Placeholder: "you@example.com", Variant: field.VariantOutlined},
			Rules:   validate.Rules{Required: true, Pattern: emailPattern},
		},
		formui.Spec{
			Options: field.Options{Label: "Password", Password: true, ShowPasswordToggle: true, Variant: field.VariantOutlined},
			Rules:   validate.Rules{Required: true, MinLength: 8},
		},
	)
	return formDemo{model: m}, cmd
}

// Init implements tea.Model.
func (m formDemo) Init() tea.Cmd { return m.model.Init() }

// Update forwards messages to the form.
func (m formDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.model, cmd = m.model.Update(msg)
	return m, cmd
}

// View renders the form under a section title.
func (m formDemo) View() string {
	return sectionTitleStyle.Render("Signup Form") + "\n\n" + m.model.View()
}

var _ tea.Model = (*formDemo)(nil)

// contrastDemo checks a foreground/background pair against the WCAG
// thresholds as the user types. fields[0] is the foreground,
// fields[1] the background.
type contrastDemo struct {
	fields []field.Model
	ring   access.Ring
}

func newContrastDemo() (contrastDemo, tea.Cmd) {
	m := contrastDemo{fields: []field.Model{
		field.New(field.Options{Label: "Foreground", Placeholder: "#1e1e2e", Variant: field.VariantOutlined, Size: field.SizeSM, Clearable: true}),
		field.New(field.Options{Label: "Background", Placeholder: "#ffffff", Variant: field.VariantOutlined, Size: field.SizeSM, Clearable: true}),
	}}
	var cmd tea.Cmd
	m.ring, cmd = access.NewRing(&m.fields[0], &m.fields[1])
	return m, cmd
}

// Init implements tea.Model.
func (m contrastDemo) Init() tea.Cmd {
	return tea.Batch(m.fields[0].Init(), m.fields[1].Init())
}

// Update routes keys to the focused color input.
func (m contrastDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if cmd, consumed := m.ring.HandleKey(key); consumed {
			return m, cmd
		}
	}
	idx := m.ring.Index()
	if idx < 0 || idx >= len(m.fields) {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[idx], cmd = m.fields[idx].Update(msg)
	return m, cmd
}

// View renders the inputs and the live contrast verdict.
func (m contrastDemo) View() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Contrast Checker"))
	b.WriteString("\n\n")
	b.WriteString(m.fields[0].View())
	b.WriteString("\n\n")
	b.WriteString(m.fields[1].View())
	b.WriteString("\n\n")
	b.WriteString(m.verdict())
	b.WriteString("\n")
	return b.String()
}

func (m contrastDemo) verdict() string {
	fg, bg := m.fields[0].Value(), m.fields[1].Value()
	if fg == "" || bg == "" {
		return lipgloss.NewStyle().Faint(true).Render("Enter two hex colors")
	}
	if !hexPattern.MatchString(fg) || !hexPattern.MatchString(bg) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(validate.MsgPatternFailed)
	}
	ratio, err := access.ContrastRatioHex(fg, bg)
	if err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(err.Error())
	}
	mark := func(ok bool) string {
		if ok {
			return "pass"
		}
		return "fail"
	}
	return fmt.Sprintf("Ratio %.2f:1  AA %s  AA-large %s  AAA %s",
		ratio,
		mark(access.MeetsAA(ratio, false)),
		mark(access.MeetsAA(ratio, true)),
		mark(access.MeetsAAA(ratio, false)))
}

var _ tea.Model = (*contrastDemo)(nil)
