package headless

import "strings"

// Item is a registered interactive child of a compound widget.
type Item[V any] struct {
	Value    V
	Disabled bool
	Text     string
}

// Registry is the ordered list of items a widget navigates with the keyboard.
// Items keep insertion order and duplicates are allowed; positions are the
// only identity. Indices held by callers are invalidated by Unregister.
type Registry[V any] struct {
	items []Item[V]
}

// Register appends item and returns its index.
func (r *Registry[V]) Register(item Item[V]) int {
	r.items = append(r.items, item)
	return len(r.items) - 1
}

// Unregister removes the item at index. It reports false for an index out of range.
func (r *Registry[V]) Unregister(index int) bool {
	if index < 0 || index >= len(r.items) {
		return false
	}
	r.items = append(r.items[:index], r.items[index+1:]...)
	return true
}

// Len returns the number of registered items.
func (r *Registry[V]) Len() int {
	return len(r.items)
}

// At returns the item at index.
func (r *Registry[V]) At(index int) (Item[V], bool) {
	if index < 0 || index >= len(r.items) {
		var zero Item[V]
		return zero, false
	}
	return r.items[index], true
}

// Items returns a copy of the registered items.
func (r *Registry[V]) Items() []Item[V] {
	out := make([]Item[V], len(r.items))
	copy(out, r.items)
	return out
}

// Enabled reports whether index refers to an item that is not disabled.
func (r *Registry[V]) Enabled(index int) bool {
	item, ok := r.At(index)
	return ok && !item.Disabled
}

// SetDisabled updates the disabled flag of the item at index.
// It reports whether anything changed.
func (r *Registry[V]) SetDisabled(index int, disabled bool) bool {
	if index < 0 || index >= len(r.items) || r.items[index].Disabled == disabled {
		return false
	}
	r.items[index].Disabled = disabled
	return true
}

// SetText updates the display text of the item at index.
// It reports whether anything changed.
func (r *Registry[V]) SetText(index int, text string) bool {
	if index < 0 || index >= len(r.items) || r.items[index].Text == text {
		return false
	}
	r.items[index].Text = text
	return true
}

// Next steps from index in direction dir (+1 or -1), wrapping at both ends and
// skipping disabled items. An index outside the list enters from the end the
// direction points away from. When no other enabled item exists the result is
// from itself, so an all-disabled list never moves.
func (r *Registry[V]) Next(from, dir int) int {
	n := len(r.items)
	if n == 0 || dir == 0 {
		return from
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	cur := from
	if from < 0 || from >= n {
		cur = -1
		if step < 0 {
			cur = n
		}
	}
	// At most n steps: the n-th lands back on from.
	for i := 0; i < n; i++ {
		cur = ((cur+step)%n + n) % n
		if !r.items[cur].Disabled {
			return cur
		}
	}
	return from
}

// First returns the index of the first enabled item, or -1.
func (r *Registry[V]) First() int {
	for i, item := range r.items {
		if !item.Disabled {
			return i
		}
	}
	return -1
}

// Last returns the index of the last enabled item, or -1.
func (r *Registry[V]) Last() int {
	for i := len(r.items) - 1; i >= 0; i-- {
		if !r.items[i].Disabled {
			return i
		}
	}
	return -1
}

// IndexFunc returns the index of the first item satisfying pred, or -1.
// With duplicate values the earliest registration wins.
func (r *Registry[V]) IndexFunc(pred func(Item[V]) bool) int {
	for i, item := range r.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Typeahead finds the next enabled item after from whose text starts with
// prefix, ignoring case and wrapping around. The item at from is checked
// last so repeating a keystroke cycles through matches. Returns -1 when
// nothing matches.
func (r *Registry[V]) Typeahead(from int, prefix string) int {
	n := len(r.items)
	if n == 0 || prefix == "" {
		return -1
	}
	prefix = strings.ToLower(prefix)
	start := from
	if start < 0 || start >= n {
		start = -1
	}
	for i := 1; i <= n; i++ {
		idx := (start + i) % n
		if idx < 0 {
			idx += n
		}
		item := r.items[idx]
		if item.Disabled {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item.Text), prefix) {
			return idx
		}
	}
	return -1
}

// unregisterFocused removes index from reg and returns the focused index
// adjusted for the removal: -1 when the focused item itself went away,
// shifted down when an earlier item was removed.
func unregisterFocused[V any](reg *Registry[V], index, focused int) (int, bool) {
	if !reg.Unregister(index) {
		return focused, false
	}
	switch {
	case focused == index:
		return -1, true
	case focused > index:
		return focused - 1, true
	}
	if focused >= reg.Len() {
		return -1, true
	}
	return focused, true
}
