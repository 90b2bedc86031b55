package field

// ChangedMsg is emitted whenever the field's value changes, whether
// by typing or by the clear affordance.
type ChangedMsg struct {
	ID    string
	Value string
}

// ClearedMsg is emitted when the clear affordance is activated. A
// ChangedMsg with an empty value always accompanies it, so callers
// listening only on the change channel still observe the clear.
type ClearedMsg struct {
	ID string
}
