package headless

import (
	"time"

	"github.com/rs/zerolog"
)

// Context owns one widget instance's state and tells subscribers when it changes.
// Widget contexts embed it and add their own operations; hosts should only
// mutate state through those operations or through UpdateState.
type Context[S any] struct {
	id    string
	kind  string
	state *S
	log   zerolog.Logger
	now   func() time.Time

	// Set by widget contexts: mode names the current chart mode for
	// snapshots, normalize repairs restored state before it is published.
	mode      func() string
	normalize func(*S)

	listeners []listener
	nextToken uint64
}

type listener struct {
	token uint64
	fn    func()
}

// NewContext creates a context owning state. kind names the widget ("select",
// "dialog", ...) and prefixes the generated id.
func NewContext[S any](kind string, state *S, opts ...Option) (*Context[S], error) {
	if state == nil {
		return nil, newArgumentError("state", ErrNilState)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := o.id
	if id == "" {
		id = newID(kind)
	}
	return &Context[S]{
		id:    id,
		kind:  kind,
		state: state,
		log:   o.logger.With().Str("ctx", id).Logger(),
		now:   o.now,
	}, nil
}

// ID returns the context id. It never changes.
func (c *Context[S]) ID() string {
	return c.id
}

// Kind returns the widget kind given at construction.
func (c *Context[S]) Kind() string {
	return c.kind
}

// ScopedID derives an element id for the given role, e.g. ScopedID("content")
// for the id referenced by a trigger's aria-controls.
func (c *Context[S]) ScopedID(suffix string) string {
	return c.id + "-" + suffix
}

// State returns a copy of the current state. Slices and maps inside it are
// shared with the context and must not be modified.
func (c *Context[S]) State() S {
	return *c.state
}

// Subscribe registers fn to run after every change and returns a function
// that removes it. Listeners run in subscription order.
func (c *Context[S]) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextToken++
	token := c.nextToken
	c.listeners = append(c.listeners, listener{token: token, fn: fn})
	return func() {
		c.removeListener(token)
	}
}

func (c *Context[S]) removeListener(token uint64) {
	// Copy instead of deleting in place so a notification already iterating
	// the old slice is unaffected.
	next := make([]listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		if l.token != token {
			next = append(next, l)
		}
	}
	c.listeners = next
}

// NotifyStateChanged runs every listener registered at the time of the call.
func (c *Context[S]) NotifyStateChanged() {
	for _, l := range c.listeners {
		l.fn()
	}
}

// UpdateState applies fn to the owned state and notifies when notify is true.
func (c *Context[S]) UpdateState(fn func(*S), notify bool) {
	fn(c.state)
	if notify {
		c.NotifyStateChanged()
	}
}

// Update applies fn and always notifies.
func (c *Context[S]) Update(fn func(*S)) {
	c.UpdateState(fn, true)
}

// UpdateIf applies fn and notifies only if fn reports that it changed something.
func (c *Context[S]) UpdateIf(fn func(*S) bool) bool {
	changed := fn(c.state)
	if changed {
		c.NotifyStateChanged()
	}
	return changed
}

func (c *Context[S]) ignored(op, reason string) {
	c.log.Debug().Str("op", op).Str("reason", reason).Msg("transition ignored")
}

func (c *Context[S]) applied(op string) {
	c.log.Trace().Str("op", op).Msg("transition applied")
}
