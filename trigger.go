package headless

// TriggerRef identifies the element that opened an overlay. Hosts use it to
// position content; the contexts only compare and store it.
type TriggerRef struct {
	id string
}

// NewTriggerRef returns a handle for the element with the given id.
func NewTriggerRef(id string) TriggerRef {
	return TriggerRef{id: id}
}

// ID returns the element id the handle was created with.
func (t TriggerRef) ID() string {
	return t.id
}

// IsZero reports whether the handle refers to no element.
func (t TriggerRef) IsZero() bool {
	return t.id == ""
}

// Equal reports whether both handles refer to the same element.
func (t TriggerRef) Equal(other TriggerRef) bool {
	return t.id == other.id
}
