package headless

import (
	"errors"
	"fmt"
)

var (
	// ErrNilState is returned when a context is constructed without a state.
	ErrNilState = errors.New("state must not be nil")

	// ErrSnapshotKind is returned when a snapshot is restored into a context of another kind.
	ErrSnapshotKind = errors.New("snapshot kind does not match context")
)

// ArgumentError reports an invalid constructor argument.
type ArgumentError struct {
	Param string
	Err   error
}

func newArgumentError(param string, err error) error {
	return &ArgumentError{Param: param, Err: err}
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid argument %s: %v", e.Param, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ArgumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
