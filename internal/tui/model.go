// Package tui is a terminal host for the headless widgets: it translates
// key presses into widget operations and renders widget state with lipgloss.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comalice/headless"
	"github.com/comalice/headless/internal/production"
)

const recentChanges = 5

// commitMsg arrives when a tooltip intent's delay has elapsed.
type commitMsg struct {
	intent headless.Intent
}

// Model is the bubbletea model of the demo.
type Model struct {
	w       *Widgets
	keys    KeyMap
	help    help.Model
	changes <-chan production.ChangeRecord
	recent  []production.ChangeRecord
	width   int
}

// NewModel creates the model. changes may be nil when no publisher is attached.
func NewModel(w *Widgets, changes <-chan production.ChangeRecord) Model {
	return Model{w: w, keys: DefaultKeyMap(), help: help.New(), changes: changes}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	case commitMsg:
		m.w.Hint.Commit(msg.intent)
	}
	m.drainChanges()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Hint) {
		return m.scheduleHint(true)
	}
	hintCmd := m.scheduleHint(false)

	switch {
	case key.Matches(msg, m.keys.PrevPane):
		m.w.Panes.HandleKey(headless.KeyLeft)
		return hintCmd
	case key.Matches(msg, m.keys.NextPane):
		m.w.Panes.HandleKey(headless.KeyRight)
		return hintCmd
	}

	if k := m.keys.widgetKey(msg); k != headless.KeyUnknown {
		m.activeHandleKey(k)
		return hintCmd
	}
	if msg.Type == tea.KeyRunes {
		m.typeahead(string(msg.Runes))
	}
	return hintCmd
}

// scheduleHint turns a hint intent into a delayed commit message.
func (m *Model) scheduleHint(open bool) tea.Cmd {
	var intent headless.Intent
	if open {
		intent = m.w.Hint.ScheduleOpen()
	} else {
		if !m.w.Hint.IsOpen() {
			m.w.Hint.CancelIntent()
			return nil
		}
		intent = m.w.Hint.ScheduleClose()
	}
	if intent.IsZero() {
		return nil
	}
	return tea.Tick(intent.Delay, func(time.Time) tea.Msg {
		return commitMsg{intent: intent}
	})
}

func (m *Model) activeHandleKey(k headless.Key) {
	switch m.w.Panes.Value() {
	case PaneSelect:
		m.w.Fruit.HandleKey(k)
	case PaneMenu:
		m.w.Menu.HandleKey(k)
	case PaneAccordion:
		m.w.FAQ.HandleKey(k)
	}
}

func (m *Model) typeahead(prefix string) {
	switch m.w.Panes.Value() {
	case PaneSelect:
		m.w.Fruit.Typeahead(prefix)
	case PaneMenu:
		m.w.Menu.Typeahead(prefix)
	}
}

func (m *Model) drainChanges() {
	if m.changes == nil {
		return
	}
	for {
		select {
		case rec, ok := <-m.changes:
			if !ok {
				m.changes = nil
				return
			}
			m.recent = append(m.recent, rec)
			if len(m.recent) > recentChanges {
				m.recent = m.recent[len(m.recent)-recentChanges:]
			}
		default:
			return
		}
	}
}
