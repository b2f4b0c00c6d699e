package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comalice/headless"
)

// KeyMap holds the demo key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Close    key.Binding
	Tab      key.Binding
	PrevPane key.Binding
	NextPane key.Binding
	Hint     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Tab:      key.NewBinding(key.WithKeys("tab")),
		PrevPane: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev pane")),
		NextPane: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next pane")),
		Hint:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPane, k.NextPane, k.Activate, k.Close, k.Hint, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Activate, k.Close, k.PrevPane, k.NextPane},
		{k.Hint, k.Quit},
	}
}

// widgetKey translates msg into the key a widget context understands.
func (k KeyMap) widgetKey(msg tea.KeyMsg) headless.Key {
	switch {
	case key.Matches(msg, k.Up):
		return headless.KeyUp
	case key.Matches(msg, k.Down):
		return headless.KeyDown
	case key.Matches(msg, k.Left):
		return headless.KeyLeft
	case key.Matches(msg, k.Right):
		return headless.KeyRight
	case key.Matches(msg, k.Home):
		return headless.KeyHome
	case key.Matches(msg, k.End):
		return headless.KeyEnd
	case msg.Type == tea.KeySpace:
		return headless.KeySpace
	case key.Matches(msg, k.Activate):
		return headless.KeyEnter
	case key.Matches(msg, k.Close):
		return headless.KeyEscape
	case key.Matches(msg, k.Tab):
		return headless.KeyTab
	}
	return headless.KeyUnknown
}
