package headless

// Mode names shared by the widget charts.
const (
	ModeClosed      = "closed"
	ModeOpen        = "open"
	ModeItemFocused = "open-item-focused"
	ModeDisabled    = "disabled"
	ModeOpening     = "opening"
	ModeClosing     = "closing"
	ModeCollapsed   = "collapsed"
	ModeExpanded    = "expanded"
	ModeInactive    = "inactive"
	ModeActive      = "active"
)

// Chart describes the logical modes of a widget and the operations that move
// between them, self-loops included when the operation changes state without
// changing mode. The contexts do not interpret it; package tests replay each
// widget against its chart.
type Chart struct {
	Widget      string            `json:"widget" yaml:"widget"`
	Initial     string            `json:"initial" yaml:"initial"`
	Modes       []string          `json:"modes" yaml:"modes"`
	Transitions []ChartTransition `json:"transitions" yaml:"transitions"`
}

// ChartTransition is one edge of a Chart.
type ChartTransition struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Op   string `json:"op" yaml:"op"`
}

// Charted is implemented by every widget context.
type Charted interface {
	ID() string
	Mode() string
	Chart() Chart
}

// edges expands one source and target into a transition per op.
func edges(from, to string, ops ...string) []ChartTransition {
	out := make([]ChartTransition, 0, len(ops))
	for _, op := range ops {
		out = append(out, ChartTransition{From: from, To: to, Op: op})
	}
	return out
}

func chart(widget, initial string, modes []string, groups ...[]ChartTransition) Chart {
	c := Chart{Widget: widget, Initial: initial, Modes: modes}
	for _, g := range groups {
		c.Transitions = append(c.Transitions, g...)
	}
	return c
}

// SelectChart is the chart for SelectContext.
func SelectChart() Chart {
	return chart("select", ModeClosed,
		[]string{ModeClosed, ModeOpen, ModeItemFocused, ModeDisabled},
		edges(ModeClosed, ModeOpen, "Open", "Toggle"),
		edges(ModeOpen, ModeClosed, "Close", "Toggle", "SelectValue"),
		edges(ModeOpen, ModeItemFocused, "MoveFocus", "FocusFirst", "FocusLast", "FocusSelectedOrFirst", "Typeahead"),
		edges(ModeItemFocused, ModeItemFocused, "MoveFocus", "FocusFirst", "FocusLast", "FocusSelectedOrFirst", "Typeahead"),
		edges(ModeItemFocused, ModeOpen, "UnregisterItem"),
		edges(ModeItemFocused, ModeClosed, "Close", "Toggle", "SelectValue", "SelectFocusedItem"),
		// A closed select still takes a value directly.
		edges(ModeClosed, ModeClosed, "SelectValue", "Typeahead"),
		edges(ModeClosed, ModeDisabled, "SetDisabled"),
		edges(ModeOpen, ModeDisabled, "SetDisabled"),
		edges(ModeItemFocused, ModeDisabled, "SetDisabled"),
		edges(ModeDisabled, ModeClosed, "SetDisabled"),
		edges(ModeDisabled, ModeDisabled, "SelectValue"),
	)
}

// DisclosureChart is the chart for overlays without item focus: Dialog, Sheet and Popover.
func DisclosureChart(widget string) Chart {
	return chart(widget, ModeClosed,
		[]string{ModeClosed, ModeOpen},
		edges(ModeClosed, ModeOpen, "Open", "OpenFrom", "Toggle", "ToggleFrom", "SetOpen"),
		edges(ModeOpen, ModeClosed, "Close", "Toggle", "ToggleFrom", "SetOpen"),
		// Reopening from another trigger only moves the trigger.
		edges(ModeOpen, ModeOpen, "OpenFrom"),
	)
}

// MenuChart is the chart for DropdownMenuContext.
func MenuChart() Chart {
	return chart("dropdown-menu", ModeClosed,
		[]string{ModeClosed, ModeOpen, ModeItemFocused},
		edges(ModeClosed, ModeOpen, "Open", "Toggle"),
		edges(ModeClosed, ModeItemFocused, "OpenWithFocus"),
		edges(ModeOpen, ModeItemFocused, "MoveFocus", "FocusFirst", "FocusLast", "Typeahead"),
		edges(ModeItemFocused, ModeItemFocused, "MoveFocus", "FocusFirst", "FocusLast", "Typeahead"),
		edges(ModeOpen, ModeClosed, "Close", "Toggle", "Activate"),
		edges(ModeItemFocused, ModeClosed, "Close", "Toggle", "Activate", "ActivateFocused"),
		// Items marked KeepOpen.
		edges(ModeOpen, ModeOpen, "Activate"),
		edges(ModeItemFocused, ModeItemFocused, "Activate", "ActivateFocused"),
	)
}

// HoverChart is the chart for Tooltip and HoverCard, whose transitions pass
// through a pending intent the host commits after a delay.
func HoverChart(widget string) Chart {
	return chart(widget, ModeClosed,
		[]string{ModeClosed, ModeOpening, ModeOpen, ModeClosing},
		edges(ModeClosed, ModeOpening, "ScheduleOpen"),
		// Zero delay, or inside the skip-delay window.
		edges(ModeClosed, ModeOpen, "ScheduleOpen", "Open"),
		edges(ModeOpening, ModeOpening, "ScheduleOpen"),
		edges(ModeOpening, ModeOpen, "Commit", "Open"),
		edges(ModeOpening, ModeClosed, "CancelIntent", "ScheduleClose", "Close"),
		edges(ModeOpen, ModeClosing, "ScheduleClose"),
		edges(ModeOpen, ModeClosed, "ScheduleClose", "Close"),
		edges(ModeClosing, ModeClosing, "ScheduleClose"),
		edges(ModeClosing, ModeClosed, "Commit", "Close"),
		edges(ModeClosing, ModeOpen, "CancelIntent", "ScheduleOpen", "Open"),
	)
}

// AccordionChart is the chart for AccordionContext.
func AccordionChart() Chart {
	return chart("accordion", ModeCollapsed,
		[]string{ModeCollapsed, ModeExpanded, ModeDisabled},
		edges(ModeCollapsed, ModeExpanded, "OpenItem", "ToggleItem"),
		// Opening another item, or closing one of several.
		edges(ModeExpanded, ModeExpanded, "OpenItem", "CloseItem", "ToggleItem"),
		edges(ModeExpanded, ModeCollapsed, "CloseItem", "ToggleItem"),
		edges(ModeCollapsed, ModeDisabled, "SetDisabled"),
		edges(ModeExpanded, ModeDisabled, "SetDisabled"),
		edges(ModeDisabled, ModeCollapsed, "SetDisabled"),
		edges(ModeDisabled, ModeExpanded, "SetDisabled"),
	)
}

// TabsChart is the chart for TabsContext. In automatic activation mode
// focus moves activate; in manual mode they only move focus.
func TabsChart() Chart {
	ops := []string{"Activate", "ActivateFocused", "MoveFocus", "FocusFirst", "FocusLast"}
	return chart("tabs", ModeInactive,
		[]string{ModeInactive, ModeActive},
		edges(ModeInactive, ModeActive, ops...),
		edges(ModeActive, ModeActive, ops...),
		edges(ModeInactive, ModeInactive, "MoveFocus"),
	)
}

// ChartFor returns the chart of the named widget kind.
func ChartFor(widget string) (Chart, bool) {
	switch widget {
	case "select":
		return SelectChart(), true
	case "dialog", "sheet", "popover":
		return DisclosureChart(widget), true
	case "dropdown-menu":
		return MenuChart(), true
	case "tooltip", "hover-card":
		return HoverChart(widget), true
	case "accordion":
		return AccordionChart(), true
	case "tabs":
		return TabsChart(), true
	}
	return Chart{}, false
}

// ChartKinds lists the widget kinds ChartFor knows.
func ChartKinds() []string {
	return []string{"select", "dialog", "sheet", "popover", "dropdown-menu", "tooltip", "hover-card", "accordion", "tabs"}
}
