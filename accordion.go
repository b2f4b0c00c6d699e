package headless

import (
	"fmt"
	"slices"
)

// AccordionType selects whether one or many items may be open at once.
type AccordionType string

const (
	AccordionSingle   AccordionType = "single"
	AccordionMultiple AccordionType = "multiple"
)

// AccordionState is the state of an Accordion.
type AccordionState struct {
	Type AccordionType `mapstructure:"type"`
	// Collapsible lets a single accordion close its open item, leaving none open.
	Collapsible bool        `mapstructure:"collapsible"`
	Disabled    bool        `mapstructure:"disabled"`
	Orientation Orientation `mapstructure:"orientation"`
	// OpenValues lists open items in the order they were opened.
	OpenValues   []string `mapstructure:"openValues"`
	FocusedIndex int      `mapstructure:"focusedIndex"`
}

// AccordionContext coordinates accordion items and the arrow-key movement
// between their headers.
type AccordionContext struct {
	*Context[AccordionState]
	roving[AccordionState, string]

	// OnValueChange runs with the open values after every change to them.
	OnValueChange func(open []string)
}

// NewAccordion creates an accordion of the given type with every item closed.
func NewAccordion(typ AccordionType, opts ...Option) (*AccordionContext, error) {
	if typ != AccordionSingle && typ != AccordionMultiple {
		return nil, newArgumentError("type", fmt.Errorf("unknown accordion type %q", typ))
	}
	c, err := NewContext("accordion", &AccordionState{Type: typ, Orientation: Vertical, FocusedIndex: -1}, opts...)
	if err != nil {
		return nil, err
	}
	a := &AccordionContext{
		Context: c,
		roving:  newRoving[AccordionState, string](c, func(s *AccordionState) *int { return &s.FocusedIndex }),
	}
	c.mode = a.Mode
	c.normalize = a.normalize
	return a, nil
}

// SetCollapsible allows or forbids closing the last open item in single mode.
func (a *AccordionContext) SetCollapsible(collapsible bool) {
	a.UpdateIf(func(s *AccordionState) bool {
		if s.Collapsible == collapsible {
			return false
		}
		s.Collapsible = collapsible
		return true
	})
}

// SetDisabled enables or disables every item.
func (a *AccordionContext) SetDisabled(disabled bool) {
	a.UpdateIf(func(s *AccordionState) bool {
		if s.Disabled == disabled {
			return false
		}
		s.Disabled = disabled
		return true
	})
}

// SetOrientation sets the axis arrow keys move along.
func (a *AccordionContext) SetOrientation(o Orientation) {
	a.UpdateIf(func(s *AccordionState) bool {
		if s.Orientation == o {
			return false
		}
		s.Orientation = o
		return true
	})
}

// RegisterItem registers an item header for keyboard navigation and returns its index.
func (a *AccordionContext) RegisterItem(value string, disabled bool) int {
	return a.items.Register(Item[string]{Value: value, Disabled: disabled, Text: value})
}

// IsItemOpen reports whether the item with value is open.
func (a *AccordionContext) IsItemOpen(value string) bool {
	return slices.Contains(a.state.OpenValues, value)
}

// OpenValues returns the open item values in opening order.
func (a *AccordionContext) OpenValues() []string {
	return slices.Clone(a.state.OpenValues)
}

// ToggleItem opens a closed item or closes an open one.
func (a *AccordionContext) ToggleItem(value string) {
	if a.IsItemOpen(value) {
		a.CloseItem(value)
		return
	}
	a.OpenItem(value)
}

// OpenItem opens the item. In single mode every other item closes.
func (a *AccordionContext) OpenItem(value string) {
	if reason := a.blockedReason(value); reason != "" {
		a.ignored("OpenItem", reason)
		return
	}
	changed := a.UpdateIf(func(s *AccordionState) bool {
		if s.Type == AccordionSingle {
			if len(s.OpenValues) == 1 && s.OpenValues[0] == value {
				return false
			}
			s.OpenValues = []string{value}
			return true
		}
		if slices.Contains(s.OpenValues, value) {
			return false
		}
		s.OpenValues = append(slices.Clone(s.OpenValues), value)
		return true
	})
	a.changed("OpenItem", changed)
}

// CloseItem closes the item. A single accordion that is not collapsible
// keeps its open item open.
func (a *AccordionContext) CloseItem(value string) {
	if reason := a.blockedReason(value); reason != "" {
		a.ignored("CloseItem", reason)
		return
	}
	if a.state.Type == AccordionSingle && !a.state.Collapsible {
		a.ignored("CloseItem", "not collapsible")
		return
	}
	changed := a.UpdateIf(func(s *AccordionState) bool {
		i := slices.Index(s.OpenValues, value)
		if i < 0 {
			return false
		}
		s.OpenValues = slices.Delete(slices.Clone(s.OpenValues), i, i+1)
		return true
	})
	a.changed("CloseItem", changed)
}

// HandleKey moves between headers along the accordion's orientation, jumps
// with Home and End, and toggles the focused item with Enter or Space.
func (a *AccordionContext) HandleKey(k Key) bool {
	if dir := a.state.Orientation.direction(k); dir != 0 {
		a.MoveFocus(dir)
		return true
	}
	switch k {
	case KeyHome:
		a.FocusFirst()
	case KeyEnd:
		a.FocusLast()
	case KeyEnter, KeySpace:
		item, ok := a.items.At(a.state.FocusedIndex)
		if !ok {
			return false
		}
		a.ToggleItem(item.Value)
	default:
		return false
	}
	return true
}

// Mode returns the current chart mode.
func (a *AccordionContext) Mode() string {
	switch {
	case a.state.Disabled:
		return ModeDisabled
	case len(a.state.OpenValues) > 0:
		return ModeExpanded
	}
	return ModeCollapsed
}

// Chart returns the accordion chart.
func (a *AccordionContext) Chart() Chart {
	return AccordionChart()
}

// TriggerIDFor is the id of the header button for value.
func (a *AccordionContext) TriggerIDFor(value string) string {
	return a.ScopedID("trigger-" + value)
}

// ContentIDFor is the id of the region controlled by value's header.
func (a *AccordionContext) ContentIDFor(value string) string {
	return a.ScopedID("content-" + value)
}

func (a *AccordionContext) blockedReason(value string) string {
	if a.state.Disabled {
		return "disabled"
	}
	idx := a.items.IndexFunc(func(item Item[string]) bool { return item.Value == value })
	if idx >= 0 && !a.items.Enabled(idx) {
		return "item disabled"
	}
	return ""
}

func (a *AccordionContext) changed(op string, changed bool) {
	if !changed {
		a.ignored(op, "unchanged")
		return
	}
	a.applied(op)
	if a.OnValueChange != nil {
		a.OnValueChange(a.OpenValues())
	}
}

func (a *AccordionContext) normalize(s *AccordionState) {
	if s.Type != AccordionMultiple && len(s.OpenValues) > 1 {
		s.OpenValues = s.OpenValues[:1]
	}
	s.FocusedIndex = a.validFocus(s.FocusedIndex)
}
