package headless

import "fmt"

// Side is the edge an overlay attaches to.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Valid reports whether s names one of the four sides.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideRight, SideBottom, SideLeft:
		return true
	}
	return false
}

// SheetContext is a dialog that slides in from one side of the viewport.
type SheetContext struct {
	*DialogContext
}

// NewSheet creates a closed modal sheet attached to side.
func NewSheet(side Side, opts ...Option) (*SheetContext, error) {
	if !side.Valid() {
		return nil, newArgumentError("side", fmt.Errorf("unknown side %q", side))
	}
	d, err := newDialogKind("sheet", &DialogState{Modal: true, Side: side}, opts...)
	if err != nil {
		return nil, err
	}
	d.normalize = func(st *DialogState) {
		if !st.Side.Valid() {
			st.Side = d.state.Side
		}
	}
	return &SheetContext{DialogContext: d}, nil
}

// Side returns the edge the sheet is attached to.
func (s *SheetContext) Side() Side {
	return s.state.Side
}
