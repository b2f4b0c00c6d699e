package headless

import "time"

// HoverTiming holds the delays of a hover-driven overlay and the intent
// waiting for its host to commit it.
type HoverTiming struct {
	OpenDelay  time.Duration `mapstructure:"openDelay"`
	CloseDelay time.Duration `mapstructure:"closeDelay"`
	// SkipDelay is the window after closing in which reopening needs no delay.
	SkipDelay time.Duration `mapstructure:"skipDelay"`

	PendingSeq  uint64 `mapstructure:"-"`
	PendingOpen bool   `mapstructure:"-"`
}

// Intent is a pending open or close. The host waits Delay and then passes
// the Intent to Commit; a later Schedule call or an explicit Open or Close
// supersedes it. The zero Intent means nothing is pending.
type Intent struct {
	Seq   uint64
	Open  bool
	Delay time.Duration
}

// IsZero reports whether the intent has nothing to commit.
func (i Intent) IsZero() bool {
	return i.Seq == 0
}

// hoverable adds delayed intents to a disclosure. It never starts timers;
// timing belongs to the host.
type hoverable[S any] struct {
	disclosure[S]

	timing     func(*S) *HoverTiming
	seq        uint64
	lastClosed time.Time
}

func newHoverable[S any](c *Context[S], get func(*S) *Disclosure, timing func(*S) *HoverTiming) hoverable[S] {
	return hoverable[S]{disclosure: newDisclosure(c, get), timing: timing}
}

// flip clears any pending intent when the open flag changes and remembers
// when the overlay last closed.
func (h *hoverable[S]) flip(s *S, open bool) {
	t := h.timing(s)
	t.PendingSeq = 0
	t.PendingOpen = false
	if !open {
		h.lastClosed = h.now()
	}
}

// Delays returns the configured open and close delays.
func (h *hoverable[S]) Delays() (openAfter, closeAfter time.Duration) {
	t := h.timing(h.state)
	return t.OpenDelay, t.CloseDelay
}

// SetDelays changes the open and close delays.
func (h *hoverable[S]) SetDelays(openAfter, closeAfter time.Duration) {
	h.UpdateIf(func(s *S) bool {
		t := h.timing(s)
		if t.OpenDelay == openAfter && t.CloseDelay == closeAfter {
			return false
		}
		t.OpenDelay = openAfter
		t.CloseDelay = closeAfter
		return true
	})
}

// ScheduleOpen records the intent to open, typically on pointer enter. A
// zero delay, or a reopen inside the skip-delay window, opens at once and
// returns the zero Intent.
func (h *hoverable[S]) ScheduleOpen() Intent {
	return h.schedule("ScheduleOpen", true, h.openDelay())
}

// ScheduleClose records the intent to close, typically on pointer leave.
func (h *hoverable[S]) ScheduleClose() Intent {
	return h.schedule("ScheduleClose", false, h.timing(h.state).CloseDelay)
}

// Commit applies intent if it is still the pending one.
func (h *hoverable[S]) Commit(intent Intent) bool {
	t := h.timing(h.state)
	if intent.IsZero() || t.PendingSeq != intent.Seq {
		h.ignored("Commit", "stale intent")
		return false
	}
	h.setOpen("Commit", intent.Open, TriggerRef{})
	h.clearPending()
	return true
}

// Open opens at once, voiding any pending intent.
func (h *hoverable[S]) Open() {
	h.settle("Open", true, TriggerRef{})
}

// OpenFrom is Open with the trigger recorded.
func (h *hoverable[S]) OpenFrom(trigger TriggerRef) {
	h.settle("Open", true, trigger)
}

// Close closes at once, voiding any pending intent.
func (h *hoverable[S]) Close() {
	h.settle("Close", false, TriggerRef{})
}

// SetOpen drives the open flag from a controlling host, voiding any pending intent.
func (h *hoverable[S]) SetOpen(open bool) {
	h.settle("SetOpen", open, TriggerRef{})
}

// settle moves straight to open or closed. When the overlay is already
// there, a pending intent toward the other side is dropped.
func (h *hoverable[S]) settle(op string, open bool, trigger TriggerRef) {
	if h.IsOpen() != open {
		// flip clears the pending intent.
		h.setOpen(op, open, trigger)
		return
	}
	changed := h.UpdateIf(func(s *S) bool {
		d, t := h.get(s), h.timing(s)
		dirty := false
		if !trigger.IsZero() && !d.Trigger.Equal(trigger) {
			d.Trigger = trigger
			dirty = true
		}
		if t.PendingSeq != 0 {
			t.PendingSeq = 0
			t.PendingOpen = false
			dirty = true
		}
		return dirty
	})
	if !changed {
		h.ignored(op, "already "+h.disclosure.Mode())
		return
	}
	h.applied(op)
}

// CancelIntent drops the pending intent, leaving the overlay as it is.
func (h *hoverable[S]) CancelIntent() {
	if !h.clearPending() {
		h.ignored("CancelIntent", "nothing pending")
	}
}

// Mode returns ModeOpening or ModeClosing while an intent is pending,
// otherwise ModeOpen or ModeClosed.
func (h *hoverable[S]) Mode() string {
	t := h.timing(h.state)
	if t.PendingSeq != 0 {
		if t.PendingOpen {
			return ModeOpening
		}
		return ModeClosing
	}
	return h.disclosure.Mode()
}

func (h *hoverable[S]) openDelay() time.Duration {
	t := h.timing(h.state)
	if t.SkipDelay > 0 && !h.lastClosed.IsZero() && h.now().Sub(h.lastClosed) < t.SkipDelay {
		return 0
	}
	return t.OpenDelay
}

func (h *hoverable[S]) schedule(op string, open bool, delay time.Duration) Intent {
	if h.IsOpen() == open {
		// Already where the intent leads; an opposite pending intent is void.
		h.clearPending()
		h.ignored(op, "already "+h.disclosure.Mode())
		return Intent{}
	}
	if delay <= 0 {
		h.setOpen(op, open, TriggerRef{})
		return Intent{}
	}
	h.seq++
	seq := h.seq
	h.Update(func(s *S) {
		t := h.timing(s)
		t.PendingSeq = seq
		t.PendingOpen = open
	})
	h.applied(op)
	return Intent{Seq: seq, Open: open, Delay: delay}
}

func (h *hoverable[S]) clearPending() bool {
	return h.UpdateIf(func(s *S) bool {
		t := h.timing(s)
		if t.PendingSeq == 0 {
			return false
		}
		t.PendingSeq = 0
		t.PendingOpen = false
		return true
	})
}
