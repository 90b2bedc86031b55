package datatable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// detailView renders the drill-down view for the row under the
// cursor: one field per configured column, in column order.
func (m Model) detailView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Row Details"))
	b.WriteString("\n")
	for _, c := range m.opts.Columns {
		value := CellString(m.detailRow[c.Key])
		b.WriteString(fmt.Sprintf("%s: %s\n", c.label(), value))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("esc to go back"))
	return b.String()
}
