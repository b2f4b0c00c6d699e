package headless

// ActivationMode decides whether focusing a tab also activates it.
type ActivationMode string

const (
	ActivationAutomatic ActivationMode = "automatic"
	ActivationManual    ActivationMode = "manual"
)

// TabsState is the state of a Tabs widget.
type TabsState struct {
	Value          string         `mapstructure:"value"`
	Orientation    Orientation    `mapstructure:"orientation"`
	ActivationMode ActivationMode `mapstructure:"activationMode"`
	FocusedIndex   int            `mapstructure:"focusedIndex"`
}

// TabsContext coordinates a tab list, its triggers and their panels.
type TabsContext struct {
	*Context[TabsState]
	roving[TabsState, string]

	// OnValueChange runs after the active tab changes.
	OnValueChange func(value string)
}

// NewTabs creates a horizontal, automatically activating tab set with
// defaultValue active. An empty defaultValue leaves no tab active.
func NewTabs(defaultValue string, opts ...Option) (*TabsContext, error) {
	state := &TabsState{
		Value:          defaultValue,
		Orientation:    Horizontal,
		ActivationMode: ActivationAutomatic,
		FocusedIndex:   -1,
	}
	c, err := NewContext("tabs", state, opts...)
	if err != nil {
		return nil, err
	}
	t := &TabsContext{
		Context: c,
		roving:  newRoving[TabsState, string](c, func(s *TabsState) *int { return &s.FocusedIndex }),
	}
	c.mode = t.Mode
	c.normalize = func(s *TabsState) { s.FocusedIndex = t.validFocus(s.FocusedIndex) }
	return t, nil
}

// Value returns the active tab value.
func (t *TabsContext) Value() string {
	return t.state.Value
}

// IsActive reports whether value is the active tab.
func (t *TabsContext) IsActive(value string) bool {
	return t.state.Value == value
}

// SetOrientation sets the axis arrow keys move along.
func (t *TabsContext) SetOrientation(o Orientation) {
	t.UpdateIf(func(s *TabsState) bool {
		if s.Orientation == o {
			return false
		}
		s.Orientation = o
		return true
	})
}

// SetActivationMode sets whether moving focus activates tabs.
func (t *TabsContext) SetActivationMode(m ActivationMode) {
	t.UpdateIf(func(s *TabsState) bool {
		if s.ActivationMode == m {
			return false
		}
		s.ActivationMode = m
		return true
	})
}

// RegisterTrigger registers a tab trigger and returns its index.
func (t *TabsContext) RegisterTrigger(value string, disabled bool, label string) int {
	return t.items.Register(Item[string]{Value: value, Disabled: disabled, Text: label})
}

// Activate makes value the active tab. Disabled tabs cannot be activated.
func (t *TabsContext) Activate(value string) {
	idx := t.items.IndexFunc(func(item Item[string]) bool { return item.Value == value })
	if idx >= 0 && !t.items.Enabled(idx) {
		t.ignored("Activate", "tab disabled")
		return
	}
	changed := t.UpdateIf(func(s *TabsState) bool {
		if s.Value == value {
			return false
		}
		s.Value = value
		return true
	})
	if !changed {
		t.ignored("Activate", "already active")
		return
	}
	t.applied("Activate")
	if t.OnValueChange != nil {
		t.OnValueChange(value)
	}
}

// MoveFocus moves focus between tab triggers; in automatic mode the newly
// focused tab is activated.
func (t *TabsContext) MoveFocus(dir int) {
	t.roving.MoveFocus(dir)
	t.activateFocusedIfAutomatic()
}

// FocusFirst focuses the first enabled tab.
func (t *TabsContext) FocusFirst() {
	t.roving.FocusFirst()
	t.activateFocusedIfAutomatic()
}

// FocusLast focuses the last enabled tab.
func (t *TabsContext) FocusLast() {
	t.roving.FocusLast()
	t.activateFocusedIfAutomatic()
}

// ActivateFocused activates the focused tab.
func (t *TabsContext) ActivateFocused() {
	item, ok := t.items.At(t.state.FocusedIndex)
	if !ok {
		t.ignored("ActivateFocused", "nothing focused")
		return
	}
	t.Activate(item.Value)
}

// HandleKey moves along the tab list's orientation, jumps with Home and
// End, and activates with Enter or Space.
func (t *TabsContext) HandleKey(k Key) bool {
	if dir := t.state.Orientation.direction(k); dir != 0 {
		t.MoveFocus(dir)
		return true
	}
	switch k {
	case KeyHome:
		t.FocusFirst()
	case KeyEnd:
		t.FocusLast()
	case KeyEnter, KeySpace:
		t.ActivateFocused()
	default:
		return false
	}
	return true
}

// Mode returns ModeActive when a tab is active, ModeInactive otherwise.
func (t *TabsContext) Mode() string {
	if t.state.Value == "" {
		return ModeInactive
	}
	return ModeActive
}

// Chart returns the tabs chart.
func (t *TabsContext) Chart() Chart {
	return TabsChart()
}

// TriggerIDFor is the id of the tab trigger for value.
func (t *TabsContext) TriggerIDFor(value string) string {
	return t.ScopedID("trigger-" + value)
}

// ContentIDFor is the id of the panel for value.
func (t *TabsContext) ContentIDFor(value string) string {
	return t.ScopedID("content-" + value)
}

func (t *TabsContext) activateFocusedIfAutomatic() {
	if t.state.ActivationMode != ActivationAutomatic {
		return
	}
	item, ok := t.items.At(t.state.FocusedIndex)
	if !ok || item.Value == t.state.Value {
		return
	}
	t.Activate(item.Value)
}
