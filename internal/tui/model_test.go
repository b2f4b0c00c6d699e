package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/headless"
	"github.com/comalice/headless/internal/config"
	"github.com/comalice/headless/internal/production"
)

func testConfig() config.Config {
	return config.Config{Tooltip: config.HoverConfig{OpenDelay: time.Millisecond}}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	w, err := NewWidgets(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	ch := make(chan production.ChangeRecord, 64)
	pub := production.NewChannelPublisher(ch)
	for _, watched := range w.Watched() {
		pub.Attach(context.Background(), watched)
	}
	return NewModel(w, ch)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func keyPress(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestSelectPane(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, keyPress(tea.KeyDown))
	require.True(t, m.w.Fruit.IsOpen())
	assert.Equal(t, 0, m.w.Fruit.FocusedIndex())
	assert.Contains(t, m.View(), "Apple")

	m, _ = send(t, m, keyPress(tea.KeyDown), keyPress(tea.KeyEnter))
	value, ok := m.w.Fruit.Value()
	require.True(t, ok)
	assert.Equal(t, "cherry", value)
	assert.False(t, m.w.Fruit.IsOpen())
	assert.Contains(t, m.View(), "Cherry ▾")
}

func TestSelectTypeahead(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runes("d"))

	value, _ := m.w.Fruit.Value()
	assert.Equal(t, "durian", value)
}

func TestSwitchPanes(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("]"))
	assert.Equal(t, PaneMenu, m.w.Panes.Value())
	m, _ = send(t, m, runes("]"))
	assert.Equal(t, PaneAccordion, m.w.Panes.Value())
	m, _ = send(t, m, runes("]"))
	assert.Equal(t, PaneSelect, m.w.Panes.Value())
	m, _ = send(t, m, runes("["))
	assert.Equal(t, PaneAccordion, m.w.Panes.Value())
}

func TestMenuPane(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runes("]"), keyPress(tea.KeyDown))
	require.True(t, m.w.Menu.IsOpen())
	assert.Contains(t, m.View(), "New file")

	m, _ = send(t, m, keyPress(tea.KeyEnter))
	assert.False(t, m.w.Menu.IsOpen())
	assert.Equal(t, "created untitled.txt", m.w.Status)
	assert.Contains(t, m.View(), "created untitled.txt")

	m, _ = send(t, m, keyPress(tea.KeyUp), keyPress(tea.KeySpace))
	assert.True(t, m.w.Menu.IsOpen(), "pin keeps the menu open")
	assert.Equal(t, "pinned", m.w.Status)

	m, _ = send(t, m, keyPress(tea.KeyEsc))
	assert.False(t, m.w.Menu.IsOpen())
}

func TestAccordionPane(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runes("]"), runes("]"), keyPress(tea.KeyDown), keyPress(tea.KeyEnter))

	assert.True(t, m.w.FAQ.IsItemOpen("what"))
	assert.Contains(t, m.View(), m.w.Answers["what"])

	m, _ = send(t, m, keyPress(tea.KeyEnter))
	assert.Empty(t, m.w.FAQ.OpenValues())
}

func TestHintOpensAfterDelay(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runes("?"))
	require.NotNil(t, cmd)
	assert.Equal(t, headless.ModeOpening, m.w.Hint.Mode())

	m, _ = send(t, m, cmd())
	require.True(t, m.w.Hint.IsOpen())
	assert.Contains(t, m.View(), "switch panes")

	m, cmd = send(t, m, keyPress(tea.KeyDown))
	assert.Nil(t, cmd, "tooltip closes without delay")
	assert.False(t, m.w.Hint.IsOpen())
}

func TestHintCancelledByOtherKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runes("?"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, runes("]"))
	assert.Equal(t, headless.ModeClosed, m.w.Hint.Mode())

	m, _ = send(t, m, cmd())
	assert.False(t, m.w.Hint.IsOpen(), "stale intent is ignored")
}

func TestRecentChangesAreBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m, _ = send(t, m, keyPress(tea.KeyDown))
	}
	assert.Len(t, m.recent, recentChanges)
	assert.Equal(t, "fruit", m.recent[len(m.recent)-1].ContextID)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(t, m, keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModes(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "panes=active fruit=closed menu=closed faq=collapsed hint=closed", m.Modes())
}

func TestWidgetsSaveRestore(t *testing.T) {
	p, err := production.NewPersister("yaml", t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	w, err := NewWidgets(testConfig(), zerolog.Nop())
	require.NoError(t, err)
	w.Fruit.SelectValue("cherry", "Cherry")
	w.FAQ.OpenItem("why")
	w.Panes.Activate(PaneAccordion)
	require.NoError(t, w.Save(ctx, p))

	fresh, err := NewWidgets(testConfig(), zerolog.Nop())
	require.NoError(t, err)
	restored, err := fresh.Restore(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 5, restored)

	value, _ := fresh.Fruit.Value()
	assert.Equal(t, "cherry", value)
	assert.Equal(t, "Cherry", fresh.Fruit.DisplayText())
	assert.True(t, fresh.FAQ.IsItemOpen("why"))
	assert.Equal(t, PaneAccordion, fresh.Panes.Value())
}

func TestWidgetsRestoreWithoutSnapshots(t *testing.T) {
	p, err := production.NewPersister("json", t.TempDir())
	require.NoError(t, err)
	w, err := NewWidgets(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	restored, err := w.Restore(context.Background(), p)
	require.NoError(t, err)
	assert.Zero(t, restored)
}
