package datatable

import (
	"tuikit/internal/ui/uiconst"
)

// Row is one data record, an opaque mapping from column key to value.
// Rows have no identity beyond their content: selection tracking uses
// deep value equality unless the caller supplies a RowKey.
type Row map[string]any

// Align controls horizontal cell alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes how one row field is displayed, sorted, and
// searched.
type Column struct {
	// Key selects the row field.
	Key string
	// Header is the column title shown in the header row.
	Header string
	// Sortable enables the sort cycle on this column. Off by default.
	Sortable bool
	// NoSearch excludes the column from free-text search. Columns
	// are searchable by default.
	NoSearch bool
	// Render overrides the default string conversion for display.
	// Sorting and searching always use the raw value.
	Render func(value any, row Row, index int) string
	// Width is the display width in cells; zero uses a default.
	Width int
	// MinWidth is the floor the column may shrink to.
	MinWidth int
	// Sticky columns survive width truncation: when columns do not
	// fit, non-sticky columns are dropped from the right first.
	Sticky bool
	// Align controls cell alignment.
	Align Align
	// HeaderLabel overrides Header for announcements.
	HeaderLabel string
}

// searchable reports whether free-text search covers this column.
func (c Column) searchable() bool { return !c.NoSearch }

// width returns the effective display width.
func (c Column) width() int {
	w := c.Width
	if w <= 0 {
		w = uiconst.ColWidthDefault
	}
	if min := c.minWidth(); w < min {
		w = min
	}
	return w
}

func (c Column) minWidth() int {
	if c.MinWidth > 0 {
		return c.MinWidth
	}
	return uiconst.ColWidthMin
}

// label returns the announced name of the column.
func (c Column) label() string {
	if c.HeaderLabel != "" {
		return c.HeaderLabel
	}
	return c.Header
}
