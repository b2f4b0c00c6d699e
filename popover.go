package headless

// Align positions content along the trigger edge it is attached to.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// PopoverState is the state of a Popover.
type PopoverState struct {
	Disclosure `mapstructure:",squash"`
	Side       Side  `mapstructure:"side"`
	Align      Align `mapstructure:"align"`
}

// PopoverContext coordinates a popover anchored to its trigger.
type PopoverContext struct {
	disclosure[PopoverState]
}

// NewPopover creates a closed popover below its trigger, centered.
func NewPopover(opts ...Option) (*PopoverContext, error) {
	c, err := NewContext("popover", &PopoverState{Side: SideBottom, Align: AlignCenter}, opts...)
	if err != nil {
		return nil, err
	}
	p := &PopoverContext{disclosure: newDisclosure(c, func(s *PopoverState) *Disclosure { return &s.Disclosure })}
	c.mode = p.Mode
	return p, nil
}

// SetPlacement changes where the content is placed relative to the trigger.
func (p *PopoverContext) SetPlacement(side Side, align Align) bool {
	if !side.Valid() {
		p.ignored("SetPlacement", "unknown side")
		return false
	}
	return p.UpdateIf(func(s *PopoverState) bool {
		if s.Side == side && s.Align == align {
			return false
		}
		s.Side = side
		s.Align = align
		return true
	})
}

// ContentID is the id referenced by the trigger's aria-controls.
func (p *PopoverContext) ContentID() string { return p.ScopedID("content") }

// Chart returns the popover chart.
func (p *PopoverContext) Chart() Chart {
	return DisclosureChart("popover")
}
