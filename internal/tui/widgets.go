package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/comalice/headless"
	"github.com/comalice/headless/internal/config"
	"github.com/comalice/headless/internal/production"
)

// Pane values of the top-level tab list.
const (
	PaneSelect    = "select"
	PaneMenu      = "menu"
	PaneAccordion = "faq"
)

// Snapshotter is a widget whose state can be saved and restored.
type Snapshotter interface {
	ID() string
	Snapshot() (headless.Snapshot, error)
	Restore(headless.Snapshot) error
}

// Widgets is the set of contexts the demo drives.
type Widgets struct {
	Panes *headless.TabsContext
	Fruit *headless.SelectContext[string]
	Menu  *headless.DropdownMenuContext
	FAQ   *headless.AccordionContext
	Hint  *headless.TooltipContext

	Answers map[string]string
	// Status is written by menu actions.
	Status string
}

// NewWidgets builds the demo widgets with stable ids so snapshots from one
// run restore into the next.
func NewWidgets(cfg config.Config, log zerolog.Logger) (*Widgets, error) {
	w := &Widgets{Answers: map[string]string{
		"what":  "Widgets keep state; the host draws it.",
		"where": "Anywhere that can forward keys.",
		"why":   "One state machine, many renderers.",
	}}
	var err error

	if w.Panes, err = headless.NewTabs(PaneSelect, headless.WithID("panes"), headless.WithLogger(log)); err != nil {
		return nil, err
	}
	w.Panes.RegisterTrigger(PaneSelect, false, "Select")
	w.Panes.RegisterTrigger(PaneMenu, false, "Menu")
	w.Panes.RegisterTrigger(PaneAccordion, false, "FAQ")
	w.Panes.FocusFirst()

	if w.Fruit, err = headless.NewSelect[string](headless.WithID("fruit"), headless.WithLogger(log)); err != nil {
		return nil, err
	}
	w.Fruit.SetPlaceholder("Pick a fruit")
	w.Fruit.RegisterItem("apple", false, "Apple")
	w.Fruit.RegisterItem("banana", true, "Banana")
	w.Fruit.RegisterItem("cherry", false, "Cherry")
	w.Fruit.RegisterItem("durian", false, "Durian")

	if w.Menu, err = headless.NewDropdownMenu(headless.WithID("menu"), headless.WithLogger(log)); err != nil {
		return nil, err
	}
	w.Menu.RegisterItem("New file", false, headless.MenuItem{OnSelect: func() { w.Status = "created untitled.txt" }})
	w.Menu.RegisterItem("Copy", true, headless.MenuItem{})
	w.Menu.RegisterItem("Rename", false, headless.MenuItem{OnSelect: func() { w.Status = "renamed" }})
	w.Menu.RegisterItem("Pin", false, headless.MenuItem{KeepOpen: true, OnSelect: func() { w.Status = "pinned" }})

	if w.FAQ, err = headless.NewAccordion(headless.AccordionSingle, headless.WithID("faq"), headless.WithLogger(log)); err != nil {
		return nil, err
	}
	w.FAQ.SetCollapsible(true)
	for _, v := range []string{"what", "where", "why"} {
		w.FAQ.RegisterItem(v, false)
	}

	if w.Hint, err = headless.NewTooltip(headless.WithID("hint"), headless.WithLogger(log)); err != nil {
		return nil, err
	}
	w.Hint.SetDelays(cfg.Tooltip.OpenDelay, cfg.Tooltip.CloseDelay)
	w.Hint.SetSkipDelay(cfg.Tooltip.SkipDelay)

	return w, nil
}

// Snapshotters returns every widget in a fixed order.
func (w *Widgets) Snapshotters() []Snapshotter {
	return []Snapshotter{w.Panes, w.Fruit, w.Menu, w.FAQ, w.Hint}
}

// Watched returns every widget for change publishing.
func (w *Widgets) Watched() []production.Watched {
	return []production.Watched{w.Panes, w.Fruit, w.Menu, w.FAQ, w.Hint}
}

// Save writes a snapshot of every widget.
func (w *Widgets) Save(ctx context.Context, p production.Persister) error {
	for _, s := range w.Snapshotters() {
		snap, err := s.Snapshot()
		if err != nil {
			return fmt.Errorf("snapshot %s: %w", s.ID(), err)
		}
		if err := p.Save(ctx, snap); err != nil {
			return err
		}
	}
	return nil
}

// Restore loads every widget that has a stored snapshot. Widgets without
// one keep their initial state.
func (w *Widgets) Restore(ctx context.Context, p production.Persister) (int, error) {
	restored := 0
	for _, s := range w.Snapshotters() {
		snap, err := p.Load(ctx, s.ID())
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return restored, err
		}
		if err := s.Restore(snap); err != nil {
			return restored, fmt.Errorf("restore %s: %w", s.ID(), err)
		}
		restored++
	}
	return restored, nil
}
