package headless

// Disclosure is the open/closed part of an overlay widget's state.
type Disclosure struct {
	Open    bool       `mapstructure:"open"`
	Trigger TriggerRef `mapstructure:"-"`
}

// disclosure implements Open/Close/Toggle for any state embedding a Disclosure.
type disclosure[S any] struct {
	*Context[S]

	// OnOpenChange, when set, runs after the open flag flips and subscribers
	// have been notified.
	OnOpenChange func(open bool)

	get func(*S) *Disclosure
	// blocked reports whether opening is currently suppressed.
	blocked func(*S) bool
	// onFlip runs inside the mutation whenever the open flag flips.
	onFlip func(s *S, open bool)
}

func newDisclosure[S any](c *Context[S], get func(*S) *Disclosure) disclosure[S] {
	return disclosure[S]{Context: c, get: get}
}

// IsOpen reports whether the widget is open.
func (d *disclosure[S]) IsOpen() bool {
	return d.get(d.state).Open
}

// Trigger returns the handle of the element that last opened the widget.
func (d *disclosure[S]) Trigger() TriggerRef {
	return d.get(d.state).Trigger
}

// SetTrigger stores the trigger handle, notifying only if it differs from the stored one.
func (d *disclosure[S]) SetTrigger(trigger TriggerRef) bool {
	return d.UpdateIf(func(s *S) bool {
		st := d.get(s)
		if st.Trigger.Equal(trigger) {
			return false
		}
		st.Trigger = trigger
		return true
	})
}

// Open opens the widget.
func (d *disclosure[S]) Open() {
	d.setOpen("Open", true, TriggerRef{})
}

// OpenFrom opens the widget and records trigger as the element it belongs to.
func (d *disclosure[S]) OpenFrom(trigger TriggerRef) {
	d.setOpen("Open", true, trigger)
}

// Close closes the widget.
func (d *disclosure[S]) Close() {
	d.setOpen("Close", false, TriggerRef{})
}

// Toggle opens a closed widget and closes an open one.
func (d *disclosure[S]) Toggle() {
	d.ToggleFrom(TriggerRef{})
}

// ToggleFrom is Toggle with the trigger recorded when opening.
func (d *disclosure[S]) ToggleFrom(trigger TriggerRef) {
	if d.IsOpen() {
		d.setOpen("Toggle", false, TriggerRef{})
		return
	}
	d.setOpen("Toggle", true, trigger)
}

// SetOpen drives the open flag from a controlling host.
func (d *disclosure[S]) SetOpen(open bool) {
	d.setOpen("SetOpen", open, TriggerRef{})
}

// HandleKey closes an open widget on Escape.
func (d *disclosure[S]) HandleKey(k Key) bool {
	if k == KeyEscape && d.IsOpen() {
		d.Close()
		return true
	}
	return false
}

// Mode returns ModeOpen or ModeClosed.
func (d *disclosure[S]) Mode() string {
	if d.IsOpen() {
		return ModeOpen
	}
	return ModeClosed
}

func (d *disclosure[S]) setOpen(op string, open bool, trigger TriggerRef) {
	if open && d.blocked != nil && d.blocked(d.state) {
		d.ignored(op, "disabled")
		return
	}
	flipped := false
	changed := d.UpdateIf(func(s *S) bool {
		st := d.get(s)
		dirty := false
		if !trigger.IsZero() && !st.Trigger.Equal(trigger) {
			st.Trigger = trigger
			dirty = true
		}
		if st.Open != open {
			st.Open = open
			flipped = true
			dirty = true
			if d.onFlip != nil {
				d.onFlip(s, open)
			}
		}
		return dirty
	})
	if !changed {
		d.ignored(op, "already "+d.Mode())
		return
	}
	d.applied(op)
	if flipped && d.OnOpenChange != nil {
		d.OnOpenChange(open)
	}
}
