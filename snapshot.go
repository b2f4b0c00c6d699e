package headless

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Snapshot is a serializable copy of a context's state. Item registries and
// trigger handles belong to the live widget tree and are not included.
type Snapshot struct {
	ContextID string         `json:"contextID" yaml:"contextID"`
	Kind      string         `json:"kind" yaml:"kind"`
	Mode      string         `json:"mode,omitempty" yaml:"mode,omitempty"`
	State     map[string]any `json:"state" yaml:"state"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
}

// Snapshot captures the current state.
func (c *Context[S]) Snapshot() (Snapshot, error) {
	fields := map[string]any{}
	if err := mapstructure.Decode(*c.state, &fields); err != nil {
		return Snapshot{}, fmt.Errorf("encode %s state: %w", c.kind, err)
	}
	snap := Snapshot{
		ContextID: c.id,
		Kind:      c.kind,
		State:     fields,
		Timestamp: c.now().UTC(),
	}
	if c.mode != nil {
		snap.Mode = c.mode()
	}
	return snap, nil
}

// Restore replaces the state with the one captured in snap and notifies.
// Fields missing from snap, and fields excluded from snapshots such as
// trigger handles, keep their current value.
func (c *Context[S]) Restore(snap Snapshot) error {
	if snap.Kind != c.kind {
		return fmt.Errorf("restore %q into %q: %w", snap.Kind, c.kind, ErrSnapshotKind)
	}
	next := *c.state
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &next,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		// YAML writes durations as strings such as "700ms".
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("snapshot decoder: %w", err)
	}
	if err := dec.Decode(snap.State); err != nil {
		return fmt.Errorf("decode %s state: %w", c.kind, err)
	}
	if c.normalize != nil {
		c.normalize(&next)
	}
	c.Update(func(s *S) {
		*s = next
	})
	c.applied("Restore")
	return nil
}
