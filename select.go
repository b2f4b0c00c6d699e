package headless

// SelectState is the state of a Select.
type SelectState[V comparable] struct {
	Disclosure `mapstructure:",squash"`

	Value V `mapstructure:"value"`
	// HasValue distinguishes a selected zero value from no selection.
	HasValue    bool   `mapstructure:"hasValue"`
	DisplayText string `mapstructure:"displayText"`
	Placeholder string `mapstructure:"placeholder"`
	Disabled    bool   `mapstructure:"disabled"`
	Required    bool   `mapstructure:"required"`
	Name        string `mapstructure:"name"`
	// FocusedIndex is the registry index of the highlighted item, -1 for none.
	FocusedIndex int `mapstructure:"focusedIndex"`
}

// SelectContext coordinates a select's trigger, value display, content and items.
//
// Modes: closed, open with no item focused, open with an item focused, and
// disabled, which suppresses opening.
type SelectContext[V comparable] struct {
	disclosure[SelectState[V]]
	roving[SelectState[V], V]

	// OnValueChange runs after SelectValue has closed the select and
	// notified subscribers.
	OnValueChange func(value V)
}

// NewSelect creates a closed select with no value.
func NewSelect[V comparable](opts ...Option) (*SelectContext[V], error) {
	return NewSelectWithState(SelectState[V]{}, opts...)
}

// NewSelectWithState creates a select starting from initial. A value set
// before its item registers takes the item's text once it does.
func NewSelectWithState[V comparable](initial SelectState[V], opts ...Option) (*SelectContext[V], error) {
	state := initial
	state.Open = false
	state.FocusedIndex = -1
	c, err := NewContext("select", &state, opts...)
	if err != nil {
		return nil, err
	}
	sel := &SelectContext[V]{
		disclosure: newDisclosure(c, func(s *SelectState[V]) *Disclosure { return &s.Disclosure }),
		roving:     newRoving[SelectState[V], V](c, func(s *SelectState[V]) *int { return &s.FocusedIndex }),
	}
	sel.blocked = func(s *SelectState[V]) bool { return s.Disabled }
	sel.onFlip = func(s *SelectState[V], _ bool) { s.FocusedIndex = -1 }
	c.mode = sel.Mode
	c.normalize = sel.normalize
	return sel, nil
}

// Value returns the selected value and whether one is selected.
func (c *SelectContext[V]) Value() (V, bool) {
	return c.state.Value, c.state.HasValue
}

// DisplayText returns the text shown in the trigger, falling back to the placeholder.
func (c *SelectContext[V]) DisplayText() string {
	if c.state.HasValue {
		return c.state.DisplayText
	}
	return c.state.Placeholder
}

// IsDisabled reports whether the select is disabled.
func (c *SelectContext[V]) IsDisabled() bool {
	return c.state.Disabled
}

// SelectValue makes value the selection, closes the select and reports the
// new value through OnValueChange. It is valid in every mode.
func (c *SelectContext[V]) SelectValue(value V, displayText string) {
	wasOpen := c.state.Open
	c.Update(func(s *SelectState[V]) {
		s.Value = value
		s.HasValue = true
		s.DisplayText = displayText
		s.Open = false
		s.FocusedIndex = -1
	})
	c.applied("SelectValue")
	if wasOpen && c.OnOpenChange != nil {
		c.OnOpenChange(false)
	}
	if c.OnValueChange != nil {
		c.OnValueChange(value)
	}
}

// SetValue sets the selection from a controlling host without closing or
// calling OnValueChange. The display text is taken from a registered item
// with that value when there is one.
func (c *SelectContext[V]) SetValue(value V) {
	text, found := c.DisplayTextForValue(value)
	c.UpdateIf(func(s *SelectState[V]) bool {
		if s.HasValue && s.Value == value && (!found || s.DisplayText == text) {
			return false
		}
		s.Value = value
		s.HasValue = true
		if found {
			s.DisplayText = text
		}
		return true
	})
}

// ClearValue removes the selection.
func (c *SelectContext[V]) ClearValue() {
	c.UpdateIf(func(s *SelectState[V]) bool {
		if !s.HasValue {
			return false
		}
		var zero V
		s.Value = zero
		s.HasValue = false
		s.DisplayText = ""
		return true
	})
}

// SetDisplayText changes the trigger text, notifying only when it differs.
func (c *SelectContext[V]) SetDisplayText(text string) {
	c.UpdateIf(func(s *SelectState[V]) bool {
		if s.DisplayText == text {
			return false
		}
		s.DisplayText = text
		return true
	})
}

// SetPlaceholder changes the text shown while nothing is selected.
func (c *SelectContext[V]) SetPlaceholder(text string) {
	c.UpdateIf(func(s *SelectState[V]) bool {
		if s.Placeholder == text {
			return false
		}
		s.Placeholder = text
		return true
	})
}

// SetDisabled enables or disables the select. Disabling an open select closes it.
func (c *SelectContext[V]) SetDisabled(disabled bool) {
	closed := false
	changed := c.UpdateIf(func(s *SelectState[V]) bool {
		if s.Disabled == disabled {
			return false
		}
		s.Disabled = disabled
		if disabled && s.Open {
			s.Open = false
			s.FocusedIndex = -1
			closed = true
		}
		return true
	})
	if !changed {
		return
	}
	c.applied("SetDisabled")
	if closed && c.OnOpenChange != nil {
		c.OnOpenChange(false)
	}
}

// RegisterItem appends an item and returns its index. When value is the
// current selection and no earlier item shares it, the item's text becomes
// the display text.
func (c *SelectContext[V]) RegisterItem(value V, disabled bool, displayText string) int {
	idx := c.items.Register(Item[V]{Value: value, Disabled: disabled, Text: displayText})
	if c.state.HasValue && c.state.Value == value && c.indexOf(value) == idx {
		c.SetDisplayText(displayText)
	}
	return idx
}

// SetItemText changes an item's text. When the item carries the selected
// value the trigger text follows it.
func (c *SelectContext[V]) SetItemText(index int, text string) {
	if !c.items.SetText(index, text) {
		c.ignored("SetItemText", "unchanged")
		return
	}
	if c.state.HasValue && c.indexOf(c.state.Value) == index && c.state.DisplayText != text {
		c.SetDisplayText(text)
		return
	}
	c.NotifyStateChanged()
}

// DisplayTextForValue returns the text of the first registered item with value.
func (c *SelectContext[V]) DisplayTextForValue(value V) (string, bool) {
	item, ok := c.items.At(c.indexOf(value))
	if !ok {
		return "", false
	}
	return item.Text, true
}

// FocusSelectedOrFirst focuses the selected item when it is registered and
// enabled, otherwise the first enabled item.
func (c *SelectContext[V]) FocusSelectedOrFirst() {
	if c.state.HasValue {
		if idx := c.validFocus(c.indexOf(c.state.Value)); idx >= 0 {
			c.focus("FocusSelectedOrFirst", idx)
			return
		}
	}
	c.focus("FocusSelectedOrFirst", c.items.First())
}

// SelectFocusedItem selects the focused item if it is enabled.
func (c *SelectContext[V]) SelectFocusedItem() {
	item, ok := c.items.At(c.state.FocusedIndex)
	if !ok || item.Disabled {
		c.ignored("SelectFocusedItem", "no enabled item focused")
		return
	}
	c.SelectValue(item.Value, item.Text)
}

// Typeahead jumps to the next enabled item whose text starts with prefix.
// An open select focuses it; a closed one selects it directly.
func (c *SelectContext[V]) Typeahead(prefix string) {
	if c.state.Disabled {
		c.ignored("Typeahead", "disabled")
		return
	}
	from := c.state.FocusedIndex
	if !c.state.Open && c.state.HasValue {
		from = c.indexOf(c.state.Value)
	}
	idx := c.items.Typeahead(from, prefix)
	if idx < 0 {
		c.ignored("Typeahead", "no match")
		return
	}
	if c.state.Open {
		c.focus("Typeahead", idx)
		return
	}
	item, _ := c.items.At(idx)
	c.SelectValue(item.Value, item.Text)
}

// HandleKey applies the select keyboard model and reports whether the key
// was consumed.
//
// Closed: Down, Up, Enter and Space open and focus the selection (Up falls
// back to the last item). Open: Down and Up move, Home and End jump, Enter
// and Space select the focused item, Escape and Tab close.
func (c *SelectContext[V]) HandleKey(k Key) bool {
	if c.state.Disabled {
		return false
	}
	if !c.state.Open {
		switch k {
		case KeyDown, KeyEnter, KeySpace:
			c.Open()
			c.FocusSelectedOrFirst()
			return true
		case KeyUp:
			c.Open()
			if c.state.HasValue && c.validFocus(c.indexOf(c.state.Value)) >= 0 {
				c.FocusSelectedOrFirst()
			} else {
				c.FocusLast()
			}
			return true
		}
		return false
	}
	switch k {
	case KeyDown:
		c.MoveFocus(1)
	case KeyUp:
		c.MoveFocus(-1)
	case KeyHome:
		c.FocusFirst()
	case KeyEnd:
		c.FocusLast()
	case KeyEnter, KeySpace:
		c.SelectFocusedItem()
	case KeyEscape, KeyTab:
		c.Close()
	default:
		return false
	}
	return true
}

// Mode returns the current chart mode.
func (c *SelectContext[V]) Mode() string {
	switch {
	case c.state.Disabled:
		return ModeDisabled
	case !c.state.Open:
		return ModeClosed
	case c.state.FocusedIndex >= 0:
		return ModeItemFocused
	}
	return ModeOpen
}

// Chart returns the select chart.
func (c *SelectContext[V]) Chart() Chart {
	return SelectChart()
}

// TriggerID is the id of the trigger element.
func (c *SelectContext[V]) TriggerID() string { return c.ScopedID("trigger") }

// ContentID is the id of the listbox element.
func (c *SelectContext[V]) ContentID() string { return c.ScopedID("content") }

func (c *SelectContext[V]) indexOf(value V) int {
	return c.items.IndexFunc(func(item Item[V]) bool { return item.Value == value })
}

func (c *SelectContext[V]) normalize(s *SelectState[V]) {
	if !s.Open || s.Disabled {
		s.Open = false
		s.FocusedIndex = -1
		return
	}
	s.FocusedIndex = c.validFocus(s.FocusedIndex)
}
