package datatable

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stripANSI removes CSI sequences so view assertions see only
// visible text.
func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		if r == '\x1b' {
			inEsc = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func peopleRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"name": fmt.Sprintf("person-%02d", i), "age": 20 + i}
	}
	return rows
}

var peopleCols = []Column{
	{Key: "name", Header: "Name", Sortable: true},
	{Key: "age", Header: "Age", Sortable: true, Align: AlignRight},
}

func TestDefaultState(t *testing.T) {
	m := New(peopleRows(3), Options{Columns: peopleCols, Paginated: true})
	if col, dir := m.SortState(); col != "" || dir != DirNone {
		t.Fatalf("expected unsorted default, got %q %v", col, dir)
	}
	if m.Query() != "" || m.Page() != 1 || len(m.Selected()) != 0 {
		t.Fatal("expected empty query, page 1, empty selection")
	}
}

func TestToggleSortCycle(t *testing.T) {
	m := New(namedRows("Bob", "Ann"), Options{Columns: nameCols})
	m.ToggleSort("name")
	if !equalNames(names(m.VisibleRows()), "Ann", "Bob") {
		t.Fatalf("asc: got %v", names(m.VisibleRows()))
	}
	m.ToggleSort("name")
	if !equalNames(names(m.VisibleRows()), "Bob", "Ann") {
		t.Fatalf("desc: got %v", names(m.VisibleRows()))
	}
	m.ToggleSort("name")
	// Third click clears the sort and restores original order.
	if col, dir := m.SortState(); col != "" || dir != DirNone {
		t.Fatalf("expected cleared sort, got %q %v", col, dir)
	}
	if !equalNames(names(m.VisibleRows()), "Bob", "Ann") {
		t.Fatalf("original order: got %v", names(m.VisibleRows()))
	}
}

func TestToggleSortNewColumnStartsAsc(t *testing.T) {
	m := New(peopleRows(3), Options{Columns: peopleCols})
	m.ToggleSort("name")
	m.ToggleSort("name") // name desc
	m.ToggleSort("age")
	if col, dir := m.SortState(); col != "age" || dir != DirAsc {
		t.Fatalf("expected age asc, got %q %v", col, dir)
	}
}

func TestToggleSortIgnoresNonSortable(t *testing.T) {
	cols := []Column{{Key: "name", Header: "Name"}}
	m := New(namedRows("b", "a"), Options{Columns: cols})
	m.ToggleSort("name")
	if col, _ := m.SortState(); col != "" {
		t.Fatal("non-sortable column must be a no-op")
	}
	m.ToggleSort("missing")
	if col, _ := m.SortState(); col != "" {
		t.Fatal("unknown column must be a no-op")
	}
}

func TestSearchResetsPage(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Searchable: true, Paginated: true, PageSize: 5})
	m.GoToPage(3)
	if m.Page() != 3 {
		t.Fatalf("expected page 3, got %d", m.Page())
	}
	m.SetQuery("person")
	if m.Page() != 1 {
		t.Fatalf("search must reset to page 1, got %d", m.Page())
	}
}

func TestSearchDisabledIgnoresQuery(t *testing.T) {
	m := New(peopleRows(4), Options{Columns: peopleCols})
	m.SetQuery("no-such-person")
	if len(m.FilteredRows()) != 4 {
		t.Fatal("query must be ignored when search is disabled")
	}
}

func TestPageNavigationClamps(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Paginated: true, PageSize: 5})
	if m.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", m.TotalPages())
	}
	m.PrevPage()
	if m.Page() != 1 {
		t.Fatalf("prev at first page must clamp, got %d", m.Page())
	}
	m.GoToPage(99)
	if m.Page() != 3 {
		t.Fatalf("expected clamp to last page, got %d", m.Page())
	}
	m.NextPage()
	if m.Page() != 3 {
		t.Fatalf("next at last page must clamp, got %d", m.Page())
	}
}

func TestSelectAllSelectsOnlyVisiblePage(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Selectable: true, Paginated: true, PageSize: 5})
	cmd := m.ToggleAll(true)
	if len(m.Selected()) != 5 {
		t.Fatalf("select-all must cover exactly the visible page: got %d rows", len(m.Selected()))
	}
	msg, ok := cmd().(SelectionMsg)
	if !ok {
		t.Fatalf("expected SelectionMsg, got %T", cmd())
	}
	if len(msg.Rows) != 5 {
		t.Fatalf("expected 5 rows in message, got %d", len(msg.Rows))
	}
	// Deselect-all empties the selection.
	m.ToggleAll(false)
	if len(m.Selected()) != 0 {
		t.Fatal("deselect-all must empty the selection")
	}
}

func TestSelectAllReplacesOutOfPageSelection(t *testing.T) {
	rows := peopleRows(12)
	m := New(rows, Options{Columns: peopleCols, Selectable: true, Paginated: true, PageSize: 5})
	m.ToggleRow(rows[11], true)
	m.ToggleAll(true)
	// The page-2 row is gone: select-all replaces, it does not union.
	if m.IsSelected(rows[11]) {
		t.Fatal("select-all must not keep out-of-page selections")
	}
	if len(m.Selected()) != 5 {
		t.Fatalf("expected 5 selected rows, got %d", len(m.Selected()))
	}
}

func TestToggleRowValueEquality(t *testing.T) {
	rows := []Row{{"name": "Ann"}, {"name": "Bob"}}
	m := New(rows, Options{Columns: nameCols, Selectable: true})
	m.ToggleRow(Row{"name": "Ann"}, true)
	if !m.IsSelected(rows[0]) {
		t.Fatal("selection must match by value, not reference")
	}
	// Selecting an already-present value does not duplicate it.
	m.ToggleRow(rows[0], true)
	if len(m.Selected()) != 1 {
		t.Fatalf("expected 1 selected row, got %d", len(m.Selected()))
	}
	m.ToggleRow(Row{"name": "Ann"}, false)
	if len(m.Selected()) != 0 {
		t.Fatal("deselect must remove all value-equal entries")
	}
}

func TestSelectedSnapshotSurvivesDeselect(t *testing.T) {
	rows := peopleRows(3)
	m := New(rows, Options{Columns: peopleCols, Selectable: true})
	m.ToggleRow(rows[0], true)
	m.ToggleRow(rows[1], true)
	snapshot := m.Selected()
	m.ToggleRow(rows[0], false)
	if len(snapshot) != 2 {
		t.Fatalf("expected snapshot length untouched, got %d", len(snapshot))
	}
	if snapshot[0]["name"] != "person-00" || snapshot[1]["name"] != "person-01" {
		t.Fatalf("deselect overwrote an earlier Selected result: %v", names(snapshot))
	}
}

func TestRowKeyOverridesIdentity(t *testing.T) {
	rows := []Row{{"id": 1, "name": "Ann"}, {"id": 2, "name": "Ann"}}
	cols := []Column{{Key: "name", Header: "Name"}}
	m := New(rows, Options{Columns: cols, Selectable: true, RowKey: func(r Row) string {
		return CellString(r["id"])
	}})
	m.ToggleRow(rows[0], true)
	if m.IsSelected(rows[1]) {
		t.Fatal("distinct keys must not be conflated")
	}
	if !m.IsSelected(Row{"id": 1}) {
		t.Fatal("identity must follow the key extractor only")
	}
}

func TestAllSelectedAndIndeterminate(t *testing.T) {
	rows := peopleRows(3)
	m := New(rows, Options{Columns: peopleCols, Selectable: true})
	if m.AllSelected() || m.Indeterminate() {
		t.Fatal("empty selection must be neither all nor indeterminate")
	}
	m.ToggleRow(rows[0], true)
	if m.AllSelected() || !m.Indeterminate() {
		t.Fatal("partial selection must be indeterminate")
	}
	m.ToggleRow(rows[1], true)
	m.ToggleRow(rows[2], true)
	if !m.AllSelected() || m.Indeterminate() {
		t.Fatal("full selection must be all, not indeterminate")
	}
}

func TestAllSelectedFalseOnEmptyDisplay(t *testing.T) {
	m := New(nil, Options{Columns: peopleCols, Selectable: true})
	if m.AllSelected() {
		t.Fatal("empty display can never be all-selected")
	}
}

func TestKeySpaceTogglesCursorRow(t *testing.T) {
	m := New(peopleRows(3), Options{Columns: peopleCols, Selectable: true})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if len(m.Selected()) != 1 {
		t.Fatalf("expected cursor row selected, got %d", len(m.Selected()))
	}
	if _, ok := cmd().(SelectionMsg); !ok {
		t.Fatal("expected SelectionMsg command")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if len(m.Selected()) != 0 {
		t.Fatal("second toggle must deselect")
	}
}

func TestKeySearchFlow(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Searchable: true, Paginated: true, PageSize: 5})
	m, _ = m.Update(keyRunes("/"))
	m, _ = m.Update(keyRunes("0"))
	m, _ = m.Update(keyRunes("3"))
	if m.Query() != "03" {
		t.Fatalf("expected query %q, got %q", "03", m.Query())
	}
	if len(m.VisibleRows()) != 1 {
		t.Fatalf("expected a single match, got %d", len(m.VisibleRows()))
	}
	// esc leaves search mode and clears the query.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Query() != "" || len(m.VisibleRows()) != 5 {
		t.Fatalf("expected cleared query and full page, got %q / %d rows", m.Query(), len(m.VisibleRows()))
	}
}

func TestKeySortOnColumnCursor(t *testing.T) {
	m := New(namedRows("Bob", "Ann"), Options{Columns: nameCols})
	m, _ = m.Update(keyRunes("s"))
	if col, dir := m.SortState(); col != "name" || dir != DirAsc {
		t.Fatalf("expected name asc, got %q %v", col, dir)
	}
}

func TestKeyPaging(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Paginated: true, PageSize: 5})
	m, _ = m.Update(keyRunes("]"))
	if m.Page() != 2 {
		t.Fatalf("expected page 2, got %d", m.Page())
	}
	m, _ = m.Update(keyRunes("G"))
	if m.Page() != 3 {
		t.Fatalf("expected last page, got %d", m.Page())
	}
	m, _ = m.Update(keyRunes("g"))
	if m.Page() != 1 {
		t.Fatalf("expected first page, got %d", m.Page())
	}
	m, _ = m.Update(keyRunes("["))
	if m.Page() != 1 {
		t.Fatalf("prev on first page must clamp, got %d", m.Page())
	}
}

func TestViewEmptyDataState(t *testing.T) {
	m := New(nil, Options{Columns: peopleCols})
	view := stripANSI(m.View())
	if !strings.Contains(view, "No data available") {
		t.Fatalf("expected no-data state, got:\n%s", view)
	}
}

func TestViewNoResultsState(t *testing.T) {
	m := New(peopleRows(3), Options{Columns: peopleCols, Searchable: true})
	m.SetQuery("zzz")
	view := stripANSI(m.View())
	if !strings.Contains(view, `No results found for "zzz"`) {
		t.Fatalf("expected no-results state, got:\n%s", view)
	}
	if !strings.Contains(view, "Try adjusting your search") {
		t.Fatal("expected search suggestion line")
	}
	if strings.Contains(view, "No data available") {
		t.Fatal("no-results must be distinct from no-data")
	}
}

func TestViewRowCountAndPagination(t *testing.T) {
	m := New(peopleRows(12), Options{Columns: peopleCols, Paginated: true, PageSize: 2, ShowRowCount: true})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Showing 1-2 of 12 rows") {
		t.Fatalf("expected row count footer, got:\n%s", view)
	}
	// 6 pages: buttons 1..5 plus a jump-to-last shortcut.
	if !strings.Contains(view, "…") || !strings.Contains(view, " 6 ") {
		t.Fatalf("expected truncated page bar with last page, got:\n%s", view)
	}
}

func TestViewSortIndicator(t *testing.T) {
	m := New(namedRows("Bob", "Ann"), Options{Columns: nameCols})
	m.ToggleSort("name")
	if !strings.Contains(stripANSI(m.View()), "↑") {
		t.Fatal("expected ascending indicator in header")
	}
	m.ToggleSort("name")
	if !strings.Contains(stripANSI(m.View()), "↓") {
		t.Fatal("expected descending indicator in header")
	}
}

func TestViewSelectionBoxes(t *testing.T) {
	rows := peopleRows(2)
	m := New(rows, Options{Columns: peopleCols, Selectable: true})
	m.ToggleRow(rows[0], true)
	view := stripANSI(m.View())
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "[-]") {
		t.Fatalf("expected checked row and indeterminate header, got:\n%s", view)
	}
}

func TestSetLoadingStartsSpinner(t *testing.T) {
	m := New(peopleRows(2), Options{Columns: peopleCols})
	cmd := m.SetLoading(true)
	if cmd == nil {
		t.Fatal("expected a spinner tick command when entering the loading state")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Fatal("expected loading view")
	}
	if m.SetLoading(false) != nil {
		t.Fatal("leaving the loading state must not tick the spinner")
	}
}

func TestViewLoadingState(t *testing.T) {
	m := New(peopleRows(2), Options{Columns: peopleCols, Loading: true})
	if !strings.Contains(m.View(), "Loading") {
		t.Fatal("expected loading state")
	}
}

func TestDetailDrilldown(t *testing.T) {
	m := New(peopleRows(2), Options{Columns: peopleCols})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Row Details") || !strings.Contains(view, "person-00") {
		t.Fatalf("expected detail view for cursor row, got:\n%s", view)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(stripANSI(m.View()), "Row Details") {
		t.Fatal("expected esc to close the detail view")
	}
}

func TestCustomRenderFunction(t *testing.T) {
	rows := []Row{{"name": "ann", "age": 30}}
	cols := []Column{
		{Key: "name", Header: "Name", Render: func(v any, _ Row, _ int) string {
			return strings.ToUpper(CellString(v))
		}},
		{Key: "age", Header: "Age"},
	}
	m := New(rows, Options{Columns: cols})
	if !strings.Contains(stripANSI(m.View()), "ANN") {
		t.Fatal("expected render function output in view")
	}
}
