package access

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Focusable is implemented by components that can hold keyboard
// focus. CanFocus reports whether the component is currently able to
// receive focus at all (disabled or loading components return false).
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	CanFocus() bool
}

// Focusables returns the subset of items that can currently receive
// focus, preserving order.
func Focusables(items []Focusable) []Focusable {
	var out []Focusable
	for _, it := range items {
		if it.CanFocus() {
			out = append(out, it)
		}
	}
	return out
}

// Ring tracks focus across an ordered set of Focusables and wraps at
// the boundaries, so tabbing never escapes the set.
type Ring struct {
	items []Focusable
	index int
}

// NewRing creates a ring over items and focuses the first focusable
// entry, if any.
func NewRing(items ...Focusable) (Ring, tea.Cmd) {
	r := Ring{items: items, index: -1}
	cmd := r.Next()
	return r, cmd
}

// Items returns the full ordered set, including entries that cannot
// currently take focus.
func (r *Ring) Items() []Focusable { return r.items }

// Current returns the focused entry, or nil when nothing holds focus.
func (r *Ring) Current() Focusable {
	if r.index < 0 || r.index >= len(r.items) {
		return nil
	}
	return r.items[r.index]
}

// Index returns the position of the focused entry, -1 if none.
func (r *Ring) Index() int { return r.index }

// Next moves focus forward to the next focusable entry, wrapping
// past the end.
func (r *Ring) Next() tea.Cmd { return r.move(1) }

// Prev moves focus backward, wrapping past the start.
func (r *Ring) Prev() tea.Cmd { return r.move(-1) }

func (r *Ring) move(step int) tea.Cmd {
	n := len(r.items)
	if n == 0 {
		return nil
	}
	if cur := r.Current(); cur != nil {
		cur.Blur()
	}
	start := r.index
	i := r.index
	for range r.items {
		i = ((i+step)%n + n) % n
		if r.items[i].CanFocus() {
			r.index = i
			return r.items[i].Focus()
		}
		if i == start {
			break
		}
	}
	// Nothing focusable.
	r.index = -1
	return nil
}

// HandleKey applies tab/shift+tab focus movement. The second return
// value reports whether the key was consumed.
func (r *Ring) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab":
		return r.Next(), true
	case "shift+tab":
		return r.Prev(), true
	}
	return nil, false
}
