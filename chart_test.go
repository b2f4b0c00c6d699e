package headless_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	. "github.com/comalice/headless"
)

func TestChartsAreConsistent(t *testing.T) {
	for _, kind := range ChartKinds() {
		t.Run(kind, func(t *testing.T) {
			chart, ok := ChartFor(kind)
			require.True(t, ok)
			require.Equal(t, kind, chart.Widget)
			require.Contains(t, chart.Modes, chart.Initial)
			dup := map[ChartTransition]bool{}
			for _, tr := range chart.Transitions {
				require.False(t, dup[tr], "duplicate edge %+v", tr)
				dup[tr] = true
				require.Contains(t, chart.Modes, tr.From, tr.Op)
				require.Contains(t, chart.Modes, tr.To, tr.Op)
				require.NotEmpty(t, tr.Op)
			}
		})
	}
	_, ok := ChartFor("carousel")
	require.False(t, ok)
}

func TestWidgetsReportChartModes(t *testing.T) {
	sel, err := NewSelect[string]()
	require.NoError(t, err)
	menu, err := NewDropdownMenu()
	require.NoError(t, err)
	acc, err := NewAccordion(AccordionMultiple)
	require.NoError(t, err)
	tip, err := NewTooltip()
	require.NoError(t, err)
	tabs, err := NewTabs("")
	require.NoError(t, err)
	sheet, err := NewSheet(SideRight)
	require.NoError(t, err)

	for _, w := range []Charted{sel, menu, acc, tip, tabs, sheet} {
		require.Contains(t, w.Chart().Modes, w.Mode(), w.ID())
		require.Equal(t, w.Chart().Initial, w.Mode(), w.ID())
	}
}

type replayable interface {
	Charted
	Subscribe(fn func()) (unsubscribe func())
}

type step struct {
	op string
	do func()
}

func op(name string, do func()) step { return step{op: name, do: do} }

// setup runs without recording an edge.
func setup(do func()) step { return step{do: do} }

// traced returns a logger option whose output counts applied transitions.
func traced() (Option, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return WithLogger(zerolog.New(buf).Level(zerolog.TraceLevel)), buf
}

func appliedCount(log *bytes.Buffer) int {
	return strings.Count(log.String(), "transition applied")
}

// replay runs steps against w and requires every step that changed state or
// applied a transition to be an edge of w's chart. Observed edges are added to seen.
func replay(t *testing.T, seen map[ChartTransition]bool, w replayable, log *bytes.Buffer, steps ...step) {
	t.Helper()
	notified := 0
	unsubscribe := w.Subscribe(func() { notified++ })
	defer unsubscribe()

	transitions := w.Chart().Transitions
	for _, s := range steps {
		before, n, applied := w.Mode(), notified, appliedCount(log)
		s.do()
		if s.op == "" || (notified == n && appliedCount(log) == applied) {
			continue
		}
		edge := ChartTransition{From: before, To: w.Mode(), Op: s.op}
		require.Contains(t, transitions, edge, "%s: %s -%s-> %s is not charted", w.ID(), edge.From, edge.Op, edge.To)
		seen[edge] = true
	}
}

func requireEveryEdgeSeen(t *testing.T, chart Chart, seen map[ChartTransition]bool) {
	t.Helper()
	for _, tr := range chart.Transitions {
		require.True(t, seen[tr], "%s: %s -%s-> %s never happened", chart.Widget, tr.From, tr.Op, tr.To)
	}
}

func TestSelectFollowsChart(t *testing.T) {
	opt, log := traced()
	sel, err := NewSelect[string](WithID("fruit"), opt)
	require.NoError(t, err)
	sel.RegisterItem("a", false, "Apple")
	sel.RegisterItem("b", true, "Banana")
	sel.RegisterItem("c", false, "Cherry")

	seen := map[ChartTransition]bool{}
	replay(t, seen, sel, log,
		op("Open", sel.Open),
		op("MoveFocus", func() { sel.MoveFocus(1) }),
		op("MoveFocus", func() { sel.MoveFocus(1) }),
		op("Close", sel.Close),
		op("Toggle", sel.Toggle),
		op("FocusLast", sel.FocusLast),
		op("FocusFirst", sel.FocusFirst),
		op("FocusLast", sel.FocusLast),
		op("SelectFocusedItem", sel.SelectFocusedItem),
		op("Toggle", sel.Toggle),
		op("FocusSelectedOrFirst", sel.FocusSelectedOrFirst),
		op("Typeahead", func() { sel.Typeahead("a") }),
		op("FocusSelectedOrFirst", sel.FocusSelectedOrFirst),
		op("Toggle", sel.Toggle),
		op("Open", sel.Open),
		op("Typeahead", func() { sel.Typeahead("a") }),
		op("SelectValue", func() { sel.SelectValue("a", "Apple") }),
		op("Open", sel.Open),
		op("SelectValue", func() { sel.SelectValue("c", "Cherry") }),
		op("SelectValue", func() { sel.SelectValue("a", "Apple") }),
		op("Typeahead", func() { sel.Typeahead("c") }),
		op("Open", sel.Open),
		op("Close", sel.Close),
		op("Open", sel.Open),
		op("Toggle", sel.Toggle),
		op("Open", sel.Open),
		op("FocusFirst", sel.FocusFirst),
		op("SetDisabled", func() { sel.SetDisabled(true) }),
		op("Open", sel.Open),
		op("SelectValue", func() { sel.SelectValue("c", "Cherry") }),
		op("SetDisabled", func() { sel.SetDisabled(false) }),
		op("SetDisabled", func() { sel.SetDisabled(true) }),
		op("SetDisabled", func() { sel.SetDisabled(false) }),
		op("Open", sel.Open),
		op("SetDisabled", func() { sel.SetDisabled(true) }),
		op("SetDisabled", func() { sel.SetDisabled(false) }),
		op("Open", sel.Open),
		op("MoveFocus", func() { sel.MoveFocus(1) }),
		op("UnregisterItem", func() { sel.UnregisterItem(0) }),
	)
	requireEveryEdgeSeen(t, SelectChart(), seen)
}

func TestOverlaysFollowChart(t *testing.T) {
	type overlay interface {
		replayable
		Open()
		OpenFrom(TriggerRef)
		Close()
		Toggle()
		ToggleFrom(TriggerRef)
		SetOpen(bool)
	}
	first, second := NewTriggerRef("first"), NewTriggerRef("second")

	for _, kind := range []string{"dialog", "sheet", "popover"} {
		t.Run(kind, func(t *testing.T) {
			opt, log := traced()
			var w overlay
			var err error
			switch kind {
			case "dialog":
				w, err = NewDialog(opt)
			case "sheet":
				w, err = NewSheet(SideRight, opt)
			case "popover":
				w, err = NewPopover(opt)
			}
			require.NoError(t, err)

			seen := map[ChartTransition]bool{}
			replay(t, seen, w, log,
				op("Open", w.Open),
				op("Close", w.Close),
				op("OpenFrom", func() { w.OpenFrom(first) }),
				op("OpenFrom", func() { w.OpenFrom(second) }),
				op("Toggle", w.Toggle),
				op("Toggle", w.Toggle),
				op("ToggleFrom", func() { w.ToggleFrom(first) }),
				op("ToggleFrom", func() { w.ToggleFrom(first) }),
				op("SetOpen", func() { w.SetOpen(false) }),
				op("SetOpen", func() { w.SetOpen(true) }),
				op("Open", w.Open),
			)
			requireEveryEdgeSeen(t, DisclosureChart(kind), seen)
		})
	}
}

func TestDropdownMenuFollowsChart(t *testing.T) {
	opt, log := traced()
	m, err := NewDropdownMenu(WithID("file"), opt)
	require.NoError(t, err)
	m.RegisterItem("New", false, MenuItem{})
	m.RegisterItem("Copy", true, MenuItem{})
	m.RegisterItem("Pin", false, MenuItem{KeepOpen: true})
	m.RegisterItem("Rename", false, MenuItem{})

	seen := map[ChartTransition]bool{}
	replay(t, seen, m, log,
		op("Activate", func() { m.Activate(0) }),
		op("Open", m.Open),
		op("Activate", func() { m.Activate(2) }),
		op("MoveFocus", func() { m.MoveFocus(1) }),
		op("MoveFocus", func() { m.MoveFocus(1) }),
		op("Activate", func() { m.Activate(2) }),
		op("ActivateFocused", m.ActivateFocused),
		op("Close", m.Close),
		op("OpenWithFocus", func() { m.OpenWithFocus(true) }),
		op("ActivateFocused", m.ActivateFocused),
		op("Toggle", m.Toggle),
		op("FocusLast", m.FocusLast),
		op("FocusFirst", m.FocusFirst),
		op("FocusLast", m.FocusLast),
		op("Typeahead", func() { m.Typeahead("n") }),
		op("Activate", func() { m.Activate(3) }),
		op("Open", m.Open),
		op("FocusFirst", m.FocusFirst),
		op("Toggle", m.Toggle),
		op("Open", m.Open),
		op("Typeahead", func() { m.Typeahead("p") }),
		op("Close", m.Close),
		op("Open", m.Open),
		op("Activate", func() { m.Activate(0) }),
		op("Open", m.Open),
		op("Close", m.Close),
		op("Open", m.Open),
		op("Toggle", m.Toggle),
	)
	requireEveryEdgeSeen(t, MenuChart(), seen)
}

func TestHoverFollowsChart(t *testing.T) {
	clock := newClock()
	opt, log := traced()
	tip, err := NewTooltip(WithID("tip"), WithClock(clock.Now), opt)
	require.NoError(t, err)
	tip.SetDelays(700*time.Millisecond, 300*time.Millisecond)

	var intent Intent
	schedOpen := func() { intent = tip.ScheduleOpen() }
	schedClose := func() { intent = tip.ScheduleClose() }
	commit := func() { tip.Commit(intent) }
	later := setup(func() { clock.Advance(time.Second) })

	seen := map[ChartTransition]bool{}
	replay(t, seen, tip, log,
		op("ScheduleOpen", schedOpen),
		op("ScheduleOpen", schedOpen),
		op("Commit", commit),
		op("ScheduleClose", schedClose),
		op("ScheduleClose", schedClose),
		op("Commit", commit),
		later,
		op("ScheduleOpen", schedOpen),
		op("CancelIntent", tip.CancelIntent),
		op("ScheduleOpen", schedOpen),
		op("ScheduleClose", schedClose),
		op("ScheduleOpen", schedOpen),
		op("Open", tip.Open),
		op("ScheduleClose", schedClose),
		op("CancelIntent", tip.CancelIntent),
		op("ScheduleClose", schedClose),
		op("ScheduleOpen", schedOpen),
		op("ScheduleClose", schedClose),
		op("Open", tip.Open),
		op("ScheduleClose", schedClose),
		op("Close", tip.Close),
		// Inside the skip-delay window.
		op("ScheduleOpen", schedOpen),
		op("Close", tip.Close),
		later,
		op("ScheduleOpen", schedOpen),
		op("Close", tip.Close),
		op("Open", tip.Open),
		setup(func() { tip.SetDelays(700*time.Millisecond, 0) }),
		op("ScheduleClose", schedClose),
		op("Commit", commit),
	)
	requireEveryEdgeSeen(t, HoverChart("tooltip"), seen)
}

func TestAccordionFollowsChart(t *testing.T) {
	opt, log := traced()
	acc, err := NewAccordion(AccordionMultiple, WithID("faq"), opt)
	require.NoError(t, err)
	acc.RegisterItem("a", false)
	acc.RegisterItem("b", false)

	seen := map[ChartTransition]bool{}
	replay(t, seen, acc, log,
		op("OpenItem", func() { acc.OpenItem("a") }),
		op("OpenItem", func() { acc.OpenItem("b") }),
		op("CloseItem", func() { acc.CloseItem("b") }),
		op("ToggleItem", func() { acc.ToggleItem("b") }),
		op("ToggleItem", func() { acc.ToggleItem("b") }),
		op("CloseItem", func() { acc.CloseItem("a") }),
		op("ToggleItem", func() { acc.ToggleItem("a") }),
		op("ToggleItem", func() { acc.ToggleItem("a") }),
		op("SetDisabled", func() { acc.SetDisabled(true) }),
		op("OpenItem", func() { acc.OpenItem("a") }),
		op("SetDisabled", func() { acc.SetDisabled(false) }),
		op("OpenItem", func() { acc.OpenItem("a") }),
		op("SetDisabled", func() { acc.SetDisabled(true) }),
		op("SetDisabled", func() { acc.SetDisabled(false) }),
	)
	requireEveryEdgeSeen(t, AccordionChart(), seen)
}

func TestTabsFollowChart(t *testing.T) {
	seen := map[ChartTransition]bool{}
	tabs := func(t *testing.T, steps func(*TabsContext) []step) {
		t.Helper()
		opt, log := traced()
		tb, err := NewTabs("", opt)
		require.NoError(t, err)
		tb.RegisterTrigger("a", false, "A")
		tb.RegisterTrigger("b", true, "B")
		tb.RegisterTrigger("c", false, "C")
		replay(t, seen, tb, log, steps(tb)...)
	}

	tabs(t, func(tb *TabsContext) []step {
		return []step{
			op("MoveFocus", func() { tb.MoveFocus(1) }),
			op("MoveFocus", func() { tb.MoveFocus(1) }),
			op("FocusFirst", tb.FocusFirst),
			op("FocusLast", tb.FocusLast),
			op("Activate", func() { tb.Activate("a") }),
			op("ActivateFocused", tb.ActivateFocused),
		}
	})
	tabs(t, func(tb *TabsContext) []step { return []step{op("FocusFirst", tb.FocusFirst)} })
	tabs(t, func(tb *TabsContext) []step { return []step{op("FocusLast", tb.FocusLast)} })
	tabs(t, func(tb *TabsContext) []step { return []step{op("Activate", func() { tb.Activate("c") })} })
	tabs(t, func(tb *TabsContext) []step {
		return []step{
			setup(func() { tb.SetActivationMode(ActivationManual) }),
			op("MoveFocus", func() { tb.MoveFocus(1) }),
			op("ActivateFocused", tb.ActivateFocused),
		}
	})
	requireEveryEdgeSeen(t, TabsChart(), seen)
}
