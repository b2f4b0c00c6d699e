package headless

// MenuItem is the value a dropdown menu item registers: an action rather
// than a value to select.
type MenuItem struct {
	OnSelect func()
	// KeepOpen leaves the menu open after the item is activated.
	KeepOpen bool
}

// DropdownMenuState is the state of a DropdownMenu.
type DropdownMenuState struct {
	Disclosure   `mapstructure:",squash"`
	Modal        bool `mapstructure:"modal"`
	FocusedIndex int  `mapstructure:"focusedIndex"`
}

// DropdownMenuContext coordinates a menu trigger, its content and its items.
type DropdownMenuContext struct {
	disclosure[DropdownMenuState]
	roving[DropdownMenuState, MenuItem]
}

// NewDropdownMenu creates a closed modal menu.
func NewDropdownMenu(opts ...Option) (*DropdownMenuContext, error) {
	c, err := NewContext("dropdown-menu", &DropdownMenuState{Modal: true, FocusedIndex: -1}, opts...)
	if err != nil {
		return nil, err
	}
	m := &DropdownMenuContext{
		disclosure: newDisclosure(c, func(s *DropdownMenuState) *Disclosure { return &s.Disclosure }),
		roving:     newRoving[DropdownMenuState, MenuItem](c, func(s *DropdownMenuState) *int { return &s.FocusedIndex }),
	}
	m.onFlip = func(s *DropdownMenuState, _ bool) { s.FocusedIndex = -1 }
	c.mode = m.Mode
	c.normalize = m.normalize
	return m, nil
}

// RegisterItem appends a menu item and returns its index.
func (m *DropdownMenuContext) RegisterItem(text string, disabled bool, item MenuItem) int {
	return m.items.Register(Item[MenuItem]{Value: item, Disabled: disabled, Text: text})
}

// OpenWithFocus opens the menu from the keyboard, focusing the first item
// (or the last when first is false).
func (m *DropdownMenuContext) OpenWithFocus(first bool) {
	m.Open()
	if !m.IsOpen() {
		return
	}
	if first {
		m.FocusFirst()
	} else {
		m.FocusLast()
	}
}

// Typeahead focuses the next enabled item whose text starts with prefix.
func (m *DropdownMenuContext) Typeahead(prefix string) {
	if !m.IsOpen() {
		m.ignored("Typeahead", "closed")
		return
	}
	idx := m.items.Typeahead(m.state.FocusedIndex, prefix)
	if idx < 0 {
		m.ignored("Typeahead", "no match")
		return
	}
	m.focus("Typeahead", idx)
}

// ActivateFocused runs the focused item's action. The menu closes first
// unless the item asked to stay open.
func (m *DropdownMenuContext) ActivateFocused() {
	m.Activate(m.state.FocusedIndex)
}

// Activate runs the action of the item at index, as a pointer click would.
// A closed menu has no visible items to activate.
func (m *DropdownMenuContext) Activate(index int) {
	if !m.IsOpen() {
		m.ignored("Activate", "closed")
		return
	}
	item, ok := m.items.At(index)
	if !ok || item.Disabled {
		m.ignored("Activate", "no enabled item")
		return
	}
	if !item.Value.KeepOpen {
		m.Close()
	}
	m.applied("Activate")
	if item.Value.OnSelect != nil {
		item.Value.OnSelect()
	}
}

// HandleKey applies the menu keyboard model and reports whether the key was consumed.
//
// Closed: Down, Enter and Space open on the first item, Up opens on the last.
// Open: Down and Up move, Home and End jump, Enter and Space activate,
// Escape and Tab close.
func (m *DropdownMenuContext) HandleKey(k Key) bool {
	if !m.IsOpen() {
		switch k {
		case KeyDown, KeyEnter, KeySpace:
			m.OpenWithFocus(true)
			return true
		case KeyUp:
			m.OpenWithFocus(false)
			return true
		}
		return false
	}
	switch k {
	case KeyDown:
		m.MoveFocus(1)
	case KeyUp:
		m.MoveFocus(-1)
	case KeyHome:
		m.FocusFirst()
	case KeyEnd:
		m.FocusLast()
	case KeyEnter, KeySpace:
		m.ActivateFocused()
	case KeyEscape, KeyTab:
		m.Close()
	default:
		return false
	}
	return true
}

// Mode returns the current chart mode.
func (m *DropdownMenuContext) Mode() string {
	switch {
	case !m.state.Open:
		return ModeClosed
	case m.state.FocusedIndex >= 0:
		return ModeItemFocused
	}
	return ModeOpen
}

// Chart returns the menu chart.
func (m *DropdownMenuContext) Chart() Chart {
	return MenuChart()
}

// TriggerID is the id of the trigger button.
func (m *DropdownMenuContext) TriggerID() string { return m.ScopedID("trigger") }

// ContentID is the id of the menu element.
func (m *DropdownMenuContext) ContentID() string { return m.ScopedID("content") }

func (m *DropdownMenuContext) normalize(s *DropdownMenuState) {
	if !s.Open {
		s.FocusedIndex = -1
		return
	}
	s.FocusedIndex = m.validFocus(s.FocusedIndex)
}
