package headless

import "time"

// Default tooltip timing.
const (
	DefaultTooltipDelay     = 700 * time.Millisecond
	DefaultTooltipSkipDelay = 300 * time.Millisecond
)

// TooltipState is the state of a Tooltip.
type TooltipState struct {
	Disclosure  `mapstructure:",squash"`
	HoverTiming `mapstructure:",squash"`
	// DisableHoverableContent tells the host to close as soon as the pointer
	// leaves the trigger instead of keeping the tooltip open over its content.
	DisableHoverableContent bool `mapstructure:"disableHoverableContent"`
	Side                    Side `mapstructure:"side"`
}

// TooltipContext coordinates a tooltip's trigger and content.
type TooltipContext struct {
	hoverable[TooltipState]
}

// NewTooltip creates a closed tooltip with the default delays.
func NewTooltip(opts ...Option) (*TooltipContext, error) {
	state := &TooltipState{
		HoverTiming: HoverTiming{OpenDelay: DefaultTooltipDelay, SkipDelay: DefaultTooltipSkipDelay},
		Side:        SideTop,
	}
	c, err := NewContext("tooltip", state, opts...)
	if err != nil {
		return nil, err
	}
	t := &TooltipContext{hoverable: newHoverable(c,
		func(s *TooltipState) *Disclosure { return &s.Disclosure },
		func(s *TooltipState) *HoverTiming { return &s.HoverTiming },
	)}
	t.onFlip = t.flip
	c.mode = t.Mode
	return t, nil
}

// SetSkipDelay sets the window after closing in which the tooltip reopens
// without delay. Zero disables it.
func (t *TooltipContext) SetSkipDelay(d time.Duration) {
	t.UpdateIf(func(s *TooltipState) bool {
		if s.SkipDelay == d {
			return false
		}
		s.SkipDelay = d
		return true
	})
}

// SetDisableHoverableContent sets whether the content keeps the tooltip open under the pointer.
func (t *TooltipContext) SetDisableHoverableContent(disable bool) {
	t.UpdateIf(func(s *TooltipState) bool {
		if s.DisableHoverableContent == disable {
			return false
		}
		s.DisableHoverableContent = disable
		return true
	})
}

// ContentID is the id referenced by the trigger's aria-describedby.
func (t *TooltipContext) ContentID() string { return t.ScopedID("content") }

// Chart returns the hover chart.
func (t *TooltipContext) Chart() Chart {
	return HoverChart("tooltip")
}
