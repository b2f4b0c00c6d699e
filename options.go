package headless

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a context at construction.
type Option func(*options)

type options struct {
	id     string
	logger zerolog.Logger
	now    func() time.Time
}

func defaultOptions() options {
	return options{logger: zerolog.Nop(), now: time.Now}
}

// WithID sets the context id instead of generating one. Hosts that render on
// a server and hydrate on a client use it to keep ARIA ids stable.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithLogger sets the logger used to trace transitions.
// Ignored transitions are logged at debug level, applied ones at trace.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock replaces time.Now for contexts that compare timestamps, such as
// the tooltip skip-delay window.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
