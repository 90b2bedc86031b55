package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/dataset"
	"tuikit/internal/ui/access"
	"tuikit/internal/ui/datatable"
	formui "tuikit/internal/ui/form"
)

// item represents a selectable entry in the sidebar.
type item struct {
	title       string
	description string
}

// item implements list.Item
func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.title }

// UI states for the root model.
const (
	stateSidebar = "sidebar"
	stateMain    = "main"
	stateHelp    = "help"
	stateCommand = "command"
)

// AppModel is the root model of the component browser, managing a
// simple state machine over the demo sections.
type AppModel struct {
	datasets []dataset.Dataset
	pageSize int

	sidebar   list.Model
	width     int
	height    int
	state     string
	prevState string
	// selectedItem holds the item chosen from the sidebar when entering the main view.
	selectedItem item
	// mainModel holds the currently active demo model. It implements
	// tea.Model and is updated/rendered when the user navigates into
	// a sidebar entry. When no demo is active this field is nil.
	mainModel tea.Model
	// announcer is the shared live region for selection and form
	// notifications.
	announcer access.Announcer
	// commandBar is the text input for command mode.
	commandBar textinput.Model
	// commandMap maps command strings to section titles.
	commandMap map[string]string
	// tabMatches holds autocomplete suggestions for the current prefix.
	tabMatches []string
	tabIndex   int
}

// NewModel creates a new AppModel with a sidebar list over the demo
// sections. The first dataset feeds the table demos.
func NewModel(datasets []dataset.Dataset, pageSize int) AppModel {
	items := []list.Item{
		item{title: "=== COMPONENTS ===", description: ""},
		item{title: "Data Table", description: "Search, sort, paginate"},
		item{title: "Selectable Table", description: "Row selection and select-all"},
		item{title: "Input Fields", description: "Variants, clear, password"},
		item{title: "Signup Form", description: "Validation on submit"},
		item{title: "Contrast Checker", description: "WCAG ratio and levels"},
		item{title: "Exit", description: "Quit the application"},
	}
	const defaultWidth = 30
	const defaultHeight = 14
	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = "tuikit – component browser"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	// Initialize command mode text input.
	cmdBar := textinput.New()
	cmdBar.Placeholder = "command"
	// Command map: aliases to section titles.
	cmdMap := map[string]string{
		"table": "Data Table", "tbl": "Data Table",
		"select": "Selectable Table", "sel": "Selectable Table",
		"fields": "Input Fields", "input": "Input Fields",
		"form":     "Signup Form",
		"contrast": "Contrast Checker", "wcag": "Contrast Checker",
		"quit": "__quit__",
	}
	if len(datasets) == 0 {
		datasets = []dataset.Dataset{dataset.Sample()}
	}
	return AppModel{datasets: datasets, pageSize: pageSize, sidebar: l, state: stateSidebar, commandBar: cmdBar, commandMap: cmdMap}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// navigateTo instantiates the appropriate demo model based on the
// given section title and returns its init command.
func (m *AppModel) navigateTo(section string) tea.Cmd {
	switch section {
	case "Data Table":
		demo := newTableDemo(m.datasets[0], m.pageSize, false)
		m.mainModel = demo
		return demo.Init()
	case "Selectable Table":
		demo := newTableDemo(m.datasets[0], m.pageSize, true)
		m.mainModel = demo
		return demo.Init()
	case "Input Fields":
		demo, cmd := newFieldsDemo()
		m.mainModel = demo
		return tea.Batch(cmd, demo.Init())
	case "Signup Form":
		demo, cmd := newFormDemo()
		m.mainModel = demo
		return tea.Batch(cmd, demo.Init())
	case "Contrast Checker":
		demo, cmd := newContrastDemo()
		m.mainModel = demo
		return tea.Batch(cmd, demo.Init())
	default:
		// No demo for unknown sections.
		return nil
	}
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar.SetSize(msg.Width/5, msg.Height-4)
		if m.mainModel != nil {
			var cmd tea.Cmd
			m.mainModel, cmd = m.mainModel.Update(msg)
			return m, cmd
		}
		return m, nil
	case datatable.SelectionMsg:
		return m, m.announcer.Announce(fmt.Sprintf("%d row(s) selected", len(msg.Rows)))
	case formui.SubmittedMsg:
		return m, m.announcer.Announce(fmt.Sprintf("Submitted %d value(s)", len(msg.Values)))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Demos with text entry need the letter itself.
			if m.state == stateSidebar || m.state == stateHelp {
				return m, tea.Quit
			}
		case "?":
			if m.state == stateSidebar {
				m.prevState = m.state
				m.state = stateHelp
				return m, nil
			}
		case "esc":
			if m.state == stateHelp {
				m.state = m.prevState
				m.prevState = ""
				return m, nil
			}
		case ":":
			// Demos own their text entry; command mode opens from
			// the sidebar and help only.
			if m.state == stateSidebar || m.state == stateHelp {
				m.prevState = m.state
				m.state = stateCommand
				m.commandBar.Focus()
				m.commandBar.SetValue("")
				return m, textinput.Blink
			}
		case "enter":
			if m.state == stateSidebar {
				if i, ok := m.sidebar.SelectedItem().(item); ok {
					if i.title == "Exit" {
						return m, tea.Quit
					}
					if strings.HasPrefix(i.title, "===") {
						return m, nil
					}
					m.selectedItem = i
					m.state = stateMain
					return m, m.navigateTo(i.title)
				}
				return m, nil
			}
		}
	}
	if m.announcer.Update(msg) {
		return m, nil
	}
	// Command mode handling
	if m.state == stateCommand {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				// exit command mode
				m.state = m.prevState
				m.prevState = ""
				m.commandBar.Blur()
				m.commandBar.SetValue("")
				m.tabMatches = nil
				m.tabIndex = 0
				return m, nil
			case "enter":
				cmd := strings.TrimSpace(m.commandBar.Value())
				m.commandBar.SetValue("")
				m.commandBar.Blur()
				m.tabMatches = nil
				m.tabIndex = 0
				if section, ok := m.commandMap[cmd]; ok {
					if section == "__quit__" {
						return m, tea.Quit
					}
					m.state = stateMain
					return m, m.navigateTo(section)
				}
				// unknown command: back to the previous state
				m.state = m.prevState
				m.prevState = ""
				return m, nil
			case "tab":
				prefix := strings.TrimSpace(m.commandBar.Value())
				// Collect and sort all matches
				var matches []string
				for k := range m.commandMap {
					if strings.HasPrefix(k, prefix) {
						matches = append(matches, k)
					}
				}
				sort.Strings(matches)
				if len(matches) == 0 {
					return m, nil
				}
				// If prefix changed, reset cycle
				if len(m.tabMatches) == 0 || m.commandBar.Value() != m.tabMatches[m.tabIndex] {
					m.tabMatches = matches
					m.tabIndex = 0
				} else {
					m.tabIndex = (m.tabIndex + 1) % len(m.tabMatches)
				}
				m.commandBar.SetValue(m.tabMatches[m.tabIndex])
				return m, nil
			default:
				var cmd tea.Cmd
				m.commandBar, cmd = m.commandBar.Update(msg)
				return m, cmd
			}
		}
		// ignore other messages
		return m, nil
	}
	// When in sidebar state, forward updates to the list component.
	if m.state == stateSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	if m.state == stateMain && m.mainModel != nil {
		if key, isKey := msg.(tea.KeyMsg); isKey && key.String() == "esc" {
			// esc returns to the sidebar unless the demo is in a
			// transient mode it resolves itself; the demos treat a
			// stray esc as a no-op, so intercept it here only when
			// nothing is focused.
			if !m.demoWantsEsc() {
				m.state = stateSidebar
				m.mainModel = nil
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.mainModel, cmd = m.mainModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// demoWantsEsc reports whether the active demo consumes esc itself
// (search mode, detail view).
func (m *AppModel) demoWantsEsc() bool {
	demo, ok := m.mainModel.(tableDemo)
	if !ok {
		return false
	}
	return demo.table.InTransientMode()
}

// View implements tea.Model.
func (m AppModel) View() string {
	footer := fmt.Sprintf("\n[%s] : command mode, ? help, esc back", m.state)
	if live := m.announcer.View(); live != "" {
		footer += "\n" + live
	}
	switch m.state {
	case stateSidebar:
		return "\n" + m.sidebar.View() + "\n" + footer
	case stateMain:
		if m.mainModel != nil {
			return m.mainModel.View() + footer
		}
		return fmt.Sprintf("\n%s view – press esc to return\n", m.selectedItem.title) + footer
	case stateHelp:
		return m.helpView() + footer
	case stateCommand:
		// Render previous view plus command bar overlay, with
		// autocomplete suggestions.
		var base string
		switch m.prevState {
		case stateSidebar:
			base = "\n" + m.sidebar.View() + "\n"
		case stateMain:
			if m.mainModel != nil {
				base = m.mainModel.View()
			}
		case stateHelp:
			base = m.helpView()
		}
		view := base + "\n" + m.commandBar.View()
		// Show suggestions if multiple matches are available.
		if len(m.tabMatches) > 1 {
			suggestions := strings.Join(m.tabMatches, "  ")
			view += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(suggestions)
		}
		return view + footer
	default:
		return ""
	}
}

func (m AppModel) helpView() string {
	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))

	key := func(k, desc string) string {
		return keyStyle.Render(fmt.Sprintf("  %-12s", k)) + descStyle.Render(desc) + "\n"
	}

	b.WriteString(titleStyle.Render("\n  Global") + "\n")
	b.WriteString(key("ctrl+c", "Quit"))
	b.WriteString(key("?", "Toggle help"))
	b.WriteString(key(":", "Command mode"))
	b.WriteString(key("esc", "Back"))

	b.WriteString(titleStyle.Render("\n  Table") + "\n")
	b.WriteString(key("j / k", "Move down / up"))
	b.WriteString(key("h / l", "Move column cursor"))
	b.WriteString(key("s", "Cycle sort on column"))
	b.WriteString(key("/", "Search"))
	b.WriteString(key("space", "Toggle row selection"))
	b.WriteString(key("a", "Select / clear visible page"))
	b.WriteString(key("[  /  ]", "Previous / next page"))
	b.WriteString(key("g / G", "First / last page"))
	b.WriteString(key("enter", "Row details"))

	b.WriteString(titleStyle.Render("\n  Fields & forms") + "\n")
	b.WriteString(key("tab", "Next field (wraps)"))
	b.WriteString(key("shift+tab", "Previous field (wraps)"))
	b.WriteString(key("ctrl+u", "Clear field"))
	b.WriteString(key("ctrl+r", "Reveal password"))
	b.WriteString(key("enter", "Submit on last form field"))

	b.WriteString(titleStyle.Render("\n  Commands") + "\n")
	b.WriteString(key("table / tbl", "Data Table"))
	b.WriteString(key("select / sel", "Selectable Table"))
	b.WriteString(key("fields / input", "Input Fields"))
	b.WriteString(key("form", "Signup Form"))
	b.WriteString(key("contrast / wcag", "Contrast Checker"))
	b.WriteString(key("quit", "Exit"))

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render("\n  [esc] close help\n"))
	return b.String()
}

// Ensure AppModel implements tea.Model.
var _ tea.Model = (*AppModel)(nil)
