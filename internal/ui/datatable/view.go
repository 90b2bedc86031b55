package datatable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui/uiconst"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeColStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("205"))
	cursorRowStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

// View renders the search bar, header, body, and footer. Empty
// datasets and empty search results render distinct placeholder
// states instead of a bare table.
func (m Model) View() string {
	if m.opts.Loading {
		return m.spinner.View() + " Loading..."
	}
	if m.showDetail && m.detailRow != nil {
		return m.detailView()
	}

	var b strings.Builder

	if m.opts.Searchable && (m.searchMode || m.query != "") {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	cols := m.visibleColumns()
	visible := m.VisibleRows()

	switch {
	case len(m.data) == 0:
		b.WriteString(faintStyle.Render("No data available"))
		b.WriteString("\n")
	case len(visible) == 0 && m.query != "":
		b.WriteString(fmt.Sprintf("No results found for %q", m.query))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("Try adjusting your search"))
		b.WriteString("\n")
	default:
		b.WriteString(m.headerLine(cols))
		b.WriteString("\n")
		base := (m.page - 1) * m.opts.PageSize
		if !m.opts.Paginated {
			base = 0
		}
		for i, row := range visible {
			b.WriteString(m.rowLine(cols, row, base+i, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if footer := m.footerLine(); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
		b.WriteString("\n")
	}
	return b.String()
}

// visibleColumns fits the configured columns into the current width:
// when they do not fit, non-sticky columns are dropped from the
// right first.
func (m Model) visibleColumns() []Column {
	cols := make([]Column, len(m.opts.Columns))
	copy(cols, m.opts.Columns)
	if m.width <= 0 {
		return cols
	}
	avail := m.width
	if m.opts.Selectable {
		avail -= uiconst.ColWidthCheck + 1
	}
	total := func() int {
		w := 0
		for _, c := range cols {
			w += c.width() + 1
		}
		return w
	}
	for total() > avail && len(cols) > 1 {
		dropped := false
		for i := len(cols) - 1; i >= 0; i-- {
			if !cols[i].Sticky {
				cols = append(cols[:i], cols[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			break
		}
	}
	return cols
}

func (m Model) headerLine(cols []Column) string {
	var parts []string
	if m.opts.Selectable {
		parts = append(parts, m.cellText(m.selectAllBox(), uiconst.ColWidthCheck, AlignLeft))
	}
	for i, c := range cols {
		title := c.Header
		if c.Key == m.sortColumn {
			switch m.sortDir {
			case DirAsc:
				title += " ↑"
			case DirDesc:
				title += " ↓"
			}
		}
		style := headerStyle
		if i == m.colCursor && c.Sortable {
			style = activeColStyle
		}
		parts = append(parts, style.Render(m.cellText(title, c.width(), c.Align)))
	}
	return strings.Join(parts, " ")
}

// selectAllBox renders the header checkbox: checked when every
// visible row is selected, a dash when the selection is partial.
func (m Model) selectAllBox() string {
	switch {
	case m.AllSelected():
		return "[x]"
	case m.Indeterminate():
		return "[-]"
	default:
		return "[ ]"
	}
}

func (m Model) rowLine(cols []Column, row Row, index int, isCursor bool) string {
	var parts []string
	if m.opts.Selectable {
		box := "[ ]"
		if m.IsSelected(row) {
			box = "[x]"
		}
		parts = append(parts, m.cellText(box, uiconst.ColWidthCheck, AlignLeft))
	}
	for _, c := range cols {
		text := CellString(row[c.Key])
		if c.Render != nil {
			text = c.Render(row[c.Key], row, index)
		}
		parts = append(parts, m.cellText(text, c.width(), c.Align))
	}
	line := strings.Join(parts, " ")
	if isCursor {
		return cursorRowStyle.Render(line)
	}
	return line
}

// cellText pads and truncates text to width with the given
// alignment.
func (m Model) cellText(text string, width int, align Align) string {
	style := lipgloss.NewStyle().Width(width).MaxWidth(width).MaxHeight(1)
	switch align {
	case AlignRight:
		style = style.Align(lipgloss.Right)
	case AlignCenter:
		style = style.Align(lipgloss.Center)
	}
	return style.Render(text)
}

// footerLine renders the row count and the pagination bar.
func (m Model) footerLine() string {
	var parts []string
	sorted := m.SortedRows()
	if m.opts.ShowRowCount {
		visible := m.VisibleRows()
		if len(visible) == 0 {
			parts = append(parts, faintStyle.Render(fmt.Sprintf("Showing 0 of %d rows", len(sorted))))
		} else {
			start := 1
			if m.opts.Paginated {
				start = (m.page-1)*m.opts.PageSize + 1
			}
			end := start + len(visible) - 1
			parts = append(parts, faintStyle.Render(fmt.Sprintf("Showing %d-%d of %d rows", start, end, len(sorted))))
		}
	}
	if m.opts.Paginated {
		if bar := m.paginationBar(); bar != "" {
			parts = append(parts, bar)
		}
	}
	return strings.Join(parts, "\n")
}

// paginationBar renders explicit buttons for the first pages plus a
// jump-to-last shortcut when there are more.
func (m Model) paginationBar() string {
	total := m.totalPages()
	if total <= 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString(faintStyle.Render("[<]"))
	b.WriteString(" ")
	shown := total
	if shown > uiconst.PageButtonCount {
		shown = uiconst.PageButtonCount
	}
	for p := 1; p <= shown; p++ {
		label := fmt.Sprintf(" %d ", p)
		if p == m.page {
			b.WriteString(cursorRowStyle.Bold(true).Render(label))
		} else {
			b.WriteString(label)
		}
	}
	if total > uiconst.PageButtonCount {
		b.WriteString(faintStyle.Render(" … "))
		label := fmt.Sprintf(" %d ", total)
		if m.page == total {
			b.WriteString(cursorRowStyle.Bold(true).Render(label))
		} else {
			b.WriteString(label)
		}
	}
	b.WriteString(" ")
	b.WriteString(faintStyle.Render("[>]"))
	return b.String()
}
