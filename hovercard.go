package headless

import "time"

// Default hover card timing.
const (
	DefaultHoverCardOpenDelay  = 700 * time.Millisecond
	DefaultHoverCardCloseDelay = 300 * time.Millisecond
)

// HoverCardState is the state of a HoverCard.
type HoverCardState struct {
	Disclosure  `mapstructure:",squash"`
	HoverTiming `mapstructure:",squash"`
	Side        Side  `mapstructure:"side"`
	Align       Align `mapstructure:"align"`
}

// HoverCardContext coordinates a hover card: a preview shown while the
// pointer rests on a link.
type HoverCardContext struct {
	hoverable[HoverCardState]
}

// NewHoverCard creates a closed hover card with the default delays.
func NewHoverCard(opts ...Option) (*HoverCardContext, error) {
	state := &HoverCardState{
		HoverTiming: HoverTiming{OpenDelay: DefaultHoverCardOpenDelay, CloseDelay: DefaultHoverCardCloseDelay},
		Side:        SideBottom,
		Align:       AlignCenter,
	}
	c, err := NewContext("hover-card", state, opts...)
	if err != nil {
		return nil, err
	}
	h := &HoverCardContext{hoverable: newHoverable(c,
		func(s *HoverCardState) *Disclosure { return &s.Disclosure },
		func(s *HoverCardState) *HoverTiming { return &s.HoverTiming },
	)}
	h.onFlip = h.flip
	c.mode = h.Mode
	return h, nil
}

// ContentID is the id of the card content.
func (h *HoverCardContext) ContentID() string { return h.ScopedID("content") }

// Chart returns the hover chart.
func (h *HoverCardContext) Chart() Chart {
	return HoverChart("hover-card")
}
