// Package testutil provides helpers shared by the package tests.
package testutil

// Subscriber is the part of a context a Recorder needs.
type Subscriber interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Recorder counts change notifications and captures a value on each one.
type Recorder[T any] struct {
	Count int
	Seen  []T

	unsubscribe func()
}

// Record subscribes to c and calls capture on every notification.
// capture may be nil when only the count matters.
func Record[T any](c Subscriber, capture func() T) *Recorder[T] {
	r := &Recorder[T]{}
	r.unsubscribe = c.Subscribe(func() {
		r.Count++
		if capture != nil {
			r.Seen = append(r.Seen, capture())
		}
	})
	return r
}

// Count subscribes to c and only counts notifications.
func Count(c Subscriber) *Recorder[struct{}] {
	return Record[struct{}](c, nil)
}

// Last returns the most recently captured value.
func (r *Recorder[T]) Last() (T, bool) {
	if len(r.Seen) == 0 {
		var zero T
		return zero, false
	}
	return r.Seen[len(r.Seen)-1], true
}

// Reset clears the count and captured values.
func (r *Recorder[T]) Reset() {
	r.Count = 0
	r.Seen = nil
}

// Stop unsubscribes the recorder.
func (r *Recorder[T]) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
