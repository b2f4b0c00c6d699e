// Package headless provides unstyled state contexts for compound widgets.
//
// A widget root creates a context (SelectContext, DropdownMenuContext,
// AccordionContext, ...) and hands the same pointer to every descendant that
// needs it: triggers, items and content panels. Descendants read state to
// decide what to render and which ARIA attributes to emit, register
// themselves as items, and call context operations in response to input.
// Every mutation notifies subscribers synchronously, on the caller's
// goroutine, after the state has been fully updated.
//
// Transitions that cannot happen in the current state (closing a closed
// overlay, moving focus with no items, opening a disabled select) are
// ignored rather than reported. Only construction validates its arguments.
//
// Contexts are not safe for concurrent use. Confine each one to the goroutine
// that handles input for its widget.
//
// Example:
//
//	sel, _ := headless.NewSelect[string]()
//	sel.RegisterItem("apple", false, "Apple")
//	sel.RegisterItem("pear", true, "Pear")
//	sel.Subscribe(func() { redraw(sel.State()) })
//	sel.HandleKey(headless.KeyDown) // opens and focuses "apple"
//	sel.HandleKey(headless.KeyEnter)
package headless
