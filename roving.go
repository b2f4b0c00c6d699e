package headless

import "strconv"

// roving tracks keyboard focus over a widget's item registry. The focused
// index lives in the widget state so it is observable and snapshotted; the
// registry lives here because it mirrors the child tree, not widget state.
type roving[S any, V any] struct {
	ctx     *Context[S]
	items   Registry[V]
	focused func(*S) *int
}

func newRoving[S any, V any](c *Context[S], focused func(*S) *int) roving[S, V] {
	return roving[S, V]{ctx: c, focused: focused}
}

// FocusedIndex returns the index of the focused item, or -1.
func (r *roving[S, V]) FocusedIndex() int {
	return *r.focused(r.ctx.state)
}

// Items returns a copy of the registered items in order.
func (r *roving[S, V]) Items() []Item[V] {
	return r.items.Items()
}

// ItemCount returns the number of registered items.
func (r *roving[S, V]) ItemCount() int {
	return r.items.Len()
}

// ItemID returns the element id for the item at index.
func (r *roving[S, V]) ItemID(index int) string {
	return r.ctx.ScopedID("item-" + strconv.Itoa(index))
}

// ActiveDescendantID returns the id for aria-activedescendant, or "" when
// nothing is focused.
func (r *roving[S, V]) ActiveDescendantID() string {
	idx := r.FocusedIndex()
	if idx < 0 {
		return ""
	}
	return r.ItemID(idx)
}

// MoveFocus moves focus one enabled item forward (dir > 0) or backward
// (dir < 0), wrapping at both ends.
func (r *roving[S, V]) MoveFocus(dir int) {
	r.focus("MoveFocus", r.items.Next(r.FocusedIndex(), dir))
}

// FocusFirst focuses the first enabled item.
func (r *roving[S, V]) FocusFirst() {
	r.focus("FocusFirst", r.items.First())
}

// FocusLast focuses the last enabled item.
func (r *roving[S, V]) FocusLast() {
	r.focus("FocusLast", r.items.Last())
}

// SetItemDisabled changes the disabled flag of a registered item.
func (r *roving[S, V]) SetItemDisabled(index int, disabled bool) {
	if !r.items.SetDisabled(index, disabled) {
		r.ctx.ignored("SetItemDisabled", "unchanged")
		return
	}
	r.ctx.NotifyStateChanged()
}

// SetItemText changes the text of a registered item, as when its label is
// re-rendered.
func (r *roving[S, V]) SetItemText(index int, text string) {
	if !r.items.SetText(index, text) {
		r.ctx.ignored("SetItemText", "unchanged")
		return
	}
	r.ctx.NotifyStateChanged()
}

// UnregisterItem removes the item at index. Focus on the removed item is
// dropped; focus on a later item follows it to its new index.
func (r *roving[S, V]) UnregisterItem(index int) {
	next, ok := unregisterFocused(&r.items, index, r.FocusedIndex())
	if !ok {
		r.ctx.ignored("UnregisterItem", "index out of range")
		return
	}
	r.ctx.UpdateIf(func(s *S) bool {
		p := r.focused(s)
		if *p == next {
			return false
		}
		*p = next
		return true
	})
}

// focus sets the focused index, notifying only when it changes.
func (r *roving[S, V]) focus(op string, idx int) bool {
	if idx < 0 {
		r.ctx.ignored(op, "no enabled item")
		return false
	}
	changed := r.ctx.UpdateIf(func(s *S) bool {
		p := r.focused(s)
		if *p == idx {
			return false
		}
		*p = idx
		return true
	})
	if !changed {
		r.ctx.ignored(op, "focus unchanged")
		return false
	}
	r.ctx.applied(op)
	return true
}

// validFocus returns idx if it refers to an enabled item, otherwise -1.
func (r *roving[S, V]) validFocus(idx int) int {
	if r.items.Enabled(idx) {
		return idx
	}
	return -1
}
