package datatable

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/ui/field"
	"tuikit/internal/ui/uiconst"
)

// Options configures a table.
type Options struct {
	Columns []Column

	// Loading shows a spinner instead of the table body and ignores
	// input until cleared via SetLoading.
	Loading bool

	// Selectable enables the per-row checkbox column and select-all.
	Selectable bool

	// Searchable enables the free-text search bar. When false the
	// query is ignored entirely.
	Searchable        bool
	SearchPlaceholder string

	// Paginated slices the sorted rows into pages of PageSize.
	// PageSize defaults to uiconst.DefaultPageSize.
	Paginated bool
	PageSize  int

	// ShowRowCount renders a "Showing x-y of n" footer line.
	ShowRowCount bool

	// RowKey optionally supplies an explicit row identity for
	// selection tracking. When nil, deep value equality is used and
	// duplicate-content rows are indistinguishable.
	RowKey func(Row) string
}

// Model derives filtered, sorted, and paginated views over a caller-
// supplied dataset and tracks local sort/search/page/selection state.
// All state starts at its default on creation and is discarded with
// the model; the caller owns the canonical data.
type Model struct {
	opts Options
	data []Row

	sortColumn string
	sortDir    Direction
	query      string
	page       int
	selected   []Row

	cursor     int // row cursor within the visible page
	colCursor  int // column cursor for sort selection
	searchMode bool
	showDetail bool
	detailRow  Row

	search  field.Model
	spinner spinner.Model

	width  int
	height int
}

// New creates a table over data with the given options. The data
// slice is never mutated.
func New(data []Row, opts Options) Model {
	if opts.PageSize <= 0 {
		opts.PageSize = uiconst.DefaultPageSize
	}
	placeholder := opts.SearchPlaceholder
	if placeholder == "" {
		placeholder = "Search..."
	}
	search := field.New(field.Options{Placeholder: placeholder, Clearable: true})
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{opts: opts, data: data, page: 1, search: search, spinner: s, width: 120, height: 30}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.opts.Loading {
		return m.spinner.Tick
	}
	return nil
}

// SetData replaces the dataset. Local state is kept; the page is
// re-clamped against the new row count.
func (m *Model) SetData(data []Row) {
	m.data = data
	m.page = ClampPage(m.page, m.totalPages())
	m.clampCursor()
}

// SetLoading toggles the loading state. Entering it returns the
// command that starts the spinner animation.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.opts.Loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

// Options returns the table configuration.
func (m *Model) Options() Options { return m.opts }

// Query returns the active search query.
func (m *Model) Query() string { return m.query }

// SortState returns the active sort column key (empty when unsorted)
// and direction.
func (m *Model) SortState() (string, Direction) { return m.sortColumn, m.sortDir }

// Page returns the current 1-based page.
func (m *Model) Page() int { return m.page }

// Selected returns the current selection in selection order.
func (m *Model) Selected() []Row { return m.selected }

// FilteredRows returns the dataset narrowed by the active query,
// order preserved. With search disabled, or an empty query, this is
// the dataset itself.
func (m *Model) FilteredRows() []Row {
	if !m.opts.Searchable {
		return m.data
	}
	return Filter(m.data, m.query, m.opts.Columns)
}

// SortedRows returns the filtered rows under the active sort.
func (m *Model) SortedRows() []Row {
	return Sort(m.FilteredRows(), m.sortColumn, m.sortDir)
}

// VisibleRows returns the rows actually displayed: the current page
// when paginated, otherwise all sorted rows.
func (m *Model) VisibleRows() []Row {
	rows := m.SortedRows()
	if !m.opts.Paginated {
		return rows
	}
	return Paginate(rows, m.page, m.opts.PageSize)
}

// TotalPages returns the page count over the sorted rows, at least 1.
func (m *Model) TotalPages() int {
	return m.totalPages()
}

func (m *Model) totalPages() int {
	if !m.opts.Paginated {
		return 1
	}
	n := TotalPages(len(m.SortedRows()), m.opts.PageSize)
	if n < 1 {
		return 1
	}
	return n
}

// SetQuery replaces the search query and unconditionally resets to
// the first page.
func (m *Model) SetQuery(q string) {
	m.query = q
	m.page = 1
	m.clampCursor()
}

// ToggleSort advances the sort cycle for the column with the given
// key: a new column starts ascending; the active column cycles
// asc, desc, none, clearing the sort column on the last step.
// Non-sortable and unknown columns are a no-op.
func (m *Model) ToggleSort(key string) {
	col, ok := m.columnByKey(key)
	if !ok || !col.Sortable {
		return
	}
	if m.sortColumn == key {
		m.sortDir = NextDirection(m.sortDir)
		if m.sortDir == DirNone {
			m.sortColumn = ""
		}
		return
	}
	m.sortColumn = key
	m.sortDir = DirAsc
}

func (m *Model) columnByKey(key string) (Column, bool) {
	for _, c := range m.opts.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// rowsEqual applies the configured row identity.
func (m *Model) rowsEqual(a, b Row) bool {
	if m.opts.RowKey != nil {
		return m.opts.RowKey(a) == m.opts.RowKey(b)
	}
	return EqualRows(a, b)
}

// IsSelected reports membership of row in the selection.
func (m *Model) IsSelected(row Row) bool {
	for _, s := range m.selected {
		if m.rowsEqual(s, row) {
			return true
		}
	}
	return false
}

// ToggleRow adds or removes a single row from the selection and
// returns the command announcing the new selection.
func (m *Model) ToggleRow(row Row, checked bool) tea.Cmd {
	if checked {
		if !m.IsSelected(row) {
			m.selected = append(m.selected, row)
		}
	} else {
		// Fresh slice: callers may still hold the result of Selected.
		kept := make([]Row, 0, len(m.selected))
		for _, s := range m.selected {
			if !m.rowsEqual(s, row) {
				kept = append(kept, s)
			}
		}
		m.selected = kept
	}
	return m.selectionCmd()
}

// ToggleAll selects every row on the visible page, or clears the
// selection entirely. Selecting all never reaches beyond the visible
// page: prior out-of-page selections are replaced, not unioned.
func (m *Model) ToggleAll(checked bool) tea.Cmd {
	if checked {
		visible := m.VisibleRows()
		m.selected = make([]Row, len(visible))
		copy(m.selected, visible)
	} else {
		m.selected = nil
	}
	return m.selectionCmd()
}

func (m *Model) selectionCmd() tea.Cmd {
	rows := make([]Row, len(m.selected))
	copy(rows, m.selected)
	return func() tea.Msg { return SelectionMsg{Rows: rows} }
}

// AllSelected is true iff the visible page is non-empty and every
// visible row is selected.
func (m *Model) AllSelected() bool {
	visible := m.VisibleRows()
	if len(visible) == 0 {
		return false
	}
	for _, r := range visible {
		if !m.IsSelected(r) {
			return false
		}
	}
	return true
}

// Indeterminate is true iff at least one but not all visible rows
// are selected.
func (m *Model) Indeterminate() bool {
	visible := m.VisibleRows()
	any := false
	all := len(visible) > 0
	for _, r := range visible {
		if m.IsSelected(r) {
			any = true
		} else {
			all = false
		}
	}
	return any && !all
}

// GoToPage clamps the requested page into range.
func (m *Model) GoToPage(page int) {
	m.page = ClampPage(page, m.totalPages())
	m.clampCursor()
}

// NextPage advances one page, clamped to the last.
func (m *Model) NextPage() { m.GoToPage(m.page + 1) }

// PrevPage goes back one page, clamped to the first.
func (m *Model) PrevPage() { m.GoToPage(m.page - 1) }

func (m *Model) clampCursor() {
	n := len(m.VisibleRows())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// InTransientMode reports whether the table is in a mode it resolves
// with esc itself: search entry or the row detail view.
func (m *Model) InTransientMode() bool {
	return m.searchMode || m.showDetail
}

// CursorRow returns the row under the cursor, nil when the page is
// empty.
func (m *Model) CursorRow() Row {
	visible := m.VisibleRows()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

// Update handles key input, spinner ticks, and window sizing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.opts.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if m.opts.Loading {
			// ignore key input while loading
			return m, nil
		}
		if m.showDetail {
			if msg.String() == "esc" {
				m.showDetail = false
				m.detailRow = nil
			}
			return m, nil
		}
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateSearch routes keys to the search field and applies query
// changes to the pipeline.
func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// leave search mode and clear the query
		m.searchMode = false
		m.search.Blur()
		m.search.SetValue("")
		m.SetQuery("")
		return m, nil
	case "enter":
		m.searchMode = false
		m.search.Blur()
		return m, nil
	}
	old := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != old {
		m.SetQuery(v)
	}
	return m, cmd
}

// updateBrowse handles table navigation keys.
func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		if !m.opts.Searchable {
			return m, nil
		}
		m.searchMode = true
		return m, tea.Batch(m.search.Focus(), textinput.Blink)
	case "j", "down":
		if m.cursor < len(m.VisibleRows())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "h", "left":
		if m.colCursor > 0 {
			m.colCursor--
		}
		return m, nil
	case "l", "right":
		if m.colCursor < len(m.opts.Columns)-1 {
			m.colCursor++
		}
		return m, nil
	case "s":
		if m.colCursor < len(m.opts.Columns) {
			m.ToggleSort(m.opts.Columns[m.colCursor].Key)
			m.clampCursor()
		}
		return m, nil
	case " ":
		if !m.opts.Selectable {
			return m, nil
		}
		row := m.CursorRow()
		if row == nil {
			return m, nil
		}
		return m, m.ToggleRow(row, !m.IsSelected(row))
	case "a":
		if !m.opts.Selectable {
			return m, nil
		}
		return m, m.ToggleAll(!m.AllSelected())
	case "[", "pgup":
		if m.opts.Paginated {
			m.PrevPage()
		}
		return m, nil
	case "]", "pgdown":
		if m.opts.Paginated {
			m.NextPage()
		}
		return m, nil
	case "g":
		if m.opts.Paginated {
			m.GoToPage(1)
		}
		return m, nil
	case "G":
		if m.opts.Paginated {
			m.GoToPage(m.totalPages())
		}
		return m, nil
	case "enter":
		if row := m.CursorRow(); row != nil {
			m.showDetail = true
			m.detailRow = row
		}
		return m, nil
	}
	return m, nil
}
