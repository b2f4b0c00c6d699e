package production

import (
	"context"
	"time"
)

// ChangeRecord describes one change notification of a widget context.
type ChangeRecord struct {
	ContextID string
	Kind      string
	Mode      string
	Timestamp time.Time
}

// Watched is the part of a widget context the publisher reads.
type Watched interface {
	ID() string
	Kind() string
	Mode() string
	Subscribe(fn func()) (unsubscribe func())
}

// ChannelPublisher forwards change records to a Go channel so another
// goroutine can observe widgets without touching them.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch  chan<- ChangeRecord
	now func() time.Time
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- ChangeRecord) *ChannelPublisher {
	return &ChannelPublisher{ch: ch, now: time.Now}
}

// Publish sends rec unless the channel is full or ctx is done. A full
// channel drops the record and reports false.
func (p *ChannelPublisher) Publish(ctx context.Context, rec ChangeRecord) (bool, error) {
	select {
	case p.ch <- rec:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	default:
		return false, nil
	}
}

// Attach publishes a record for every change of w until the returned
// function is called or ctx is done. It must be called on the goroutine
// that owns w.
func (p *ChannelPublisher) Attach(ctx context.Context, w Watched) (detach func()) {
	return w.Subscribe(func() {
		if ctx.Err() != nil {
			return
		}
		_, _ = p.Publish(ctx, ChangeRecord{
			ContextID: w.ID(),
			Kind:      w.Kind(),
			Mode:      w.Mode(),
			Timestamp: p.now(),
		})
	})
}

// Close closes the output channel. Detach every watched context first.
func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
