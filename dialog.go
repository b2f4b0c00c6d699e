package headless

// DialogState is the state of a Dialog.
type DialogState struct {
	Disclosure `mapstructure:",squash"`
	Modal      bool `mapstructure:"modal"`
	// Side is the edge a sheet slides in from; plain dialogs leave it empty.
	Side Side `mapstructure:"side,omitempty"`
}

// DialogContext coordinates a dialog's trigger, content, title and description.
type DialogContext struct {
	disclosure[DialogState]
}

// NewDialog creates a closed modal dialog.
func NewDialog(opts ...Option) (*DialogContext, error) {
	return newDialogKind("dialog", &DialogState{Modal: true}, opts...)
}

func newDialogKind(kind string, state *DialogState, opts ...Option) (*DialogContext, error) {
	c, err := NewContext(kind, state, opts...)
	if err != nil {
		return nil, err
	}
	d := &DialogContext{disclosure: newDisclosure(c, func(s *DialogState) *Disclosure { return &s.Disclosure })}
	c.mode = d.Mode
	return d, nil
}

// SetModal switches between modal and non-modal behaviour.
func (d *DialogContext) SetModal(modal bool) bool {
	return d.UpdateIf(func(s *DialogState) bool {
		if s.Modal == modal {
			return false
		}
		s.Modal = modal
		return true
	})
}

// ContentID is the id of the dialog content element.
func (d *DialogContext) ContentID() string { return d.ScopedID("content") }

// TitleID is the id referenced by the content's aria-labelledby.
func (d *DialogContext) TitleID() string { return d.ScopedID("title") }

// DescriptionID is the id referenced by the content's aria-describedby.
func (d *DialogContext) DescriptionID() string { return d.ScopedID("description") }

// Chart returns the dialog chart.
func (d *DialogContext) Chart() Chart {
	return DisclosureChart(d.Kind())
}
