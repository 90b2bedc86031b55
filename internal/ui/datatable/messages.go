package datatable

// SelectionMsg carries the full selection after any change, in
// selection order. This is the table's upward notification channel;
// the table never mutates caller data.
type SelectionMsg struct {
	Rows []Row
}
