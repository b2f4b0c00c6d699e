package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/headless"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	var body string
	switch m.w.Panes.Value() {
	case PaneSelect:
		body = m.renderSelect()
	case PaneMenu:
		body = m.renderMenu()
	case PaneAccordion:
		body = m.renderAccordion()
	}
	b.WriteString(paneStyle.Render(body))
	b.WriteString("\n")

	if m.w.Hint.IsOpen() {
		b.WriteString(hintStyle.Render("[ and ] switch panes, arrows move, enter selects, esc closes"))
		b.WriteString("\n")
	}
	if m.w.Status != "" {
		b.WriteString(statusStyle.Render(m.w.Status))
		b.WriteString("\n")
	}
	for _, rec := range m.recent {
		b.WriteString(logStyle.Render(fmt.Sprintf("%s %s → %s", rec.Timestamp.Format("15:04:05"), rec.ContextID, rec.Mode)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := m.w.Panes
	var cells []string
	for i, item := range tabs.Items() {
		style := tabStyle
		switch {
		case tabs.IsActive(item.Value):
			style = activeTabStyle
		case i == tabs.FocusedIndex():
			style = focusedTabStyle
		}
		cells = append(cells, style.Render(item.Text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderSelect() string {
	sel := m.w.Fruit
	value, hasValue := sel.Value()
	lines := []string{triggerStyle.Render(sel.DisplayText() + " ▾")}
	if sel.IsOpen() {
		for i, item := range sel.Items() {
			mark := "  "
			if hasValue && item.Value == value {
				mark = "✓ "
			}
			lines = append(lines, itemLine(mark+item.Text, item.Disabled, i == sel.FocusedIndex()))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMenu() string {
	menu := m.w.Menu
	lines := []string{triggerStyle.Render("Actions ▾")}
	if menu.IsOpen() {
		for i, item := range menu.Items() {
			lines = append(lines, itemLine(item.Text, item.Disabled, i == menu.FocusedIndex()))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAccordion() string {
	faq := m.w.FAQ
	var lines []string
	for i, item := range faq.Items() {
		arrow := "▸ "
		if faq.IsItemOpen(item.Value) {
			arrow = "▾ "
		}
		lines = append(lines, itemLine(arrow+item.Text+"?", item.Disabled, i == faq.FocusedIndex()))
		if faq.IsItemOpen(item.Value) {
			lines = append(lines, itemStyle.Render("  "+m.w.Answers[item.Value]))
		}
	}
	return strings.Join(lines, "\n")
}

func itemLine(text string, disabled, focused bool) string {
	switch {
	case disabled:
		return disabledItemStyle.Render(text)
	case focused:
		return focusedItemStyle.Render("› " + text)
	}
	return itemStyle.Render(text)
}

// Modes summarizes every widget's chart mode as id=mode pairs.
func (m Model) Modes() string {
	var parts []string
	for _, c := range []headless.Charted{m.w.Panes, m.w.Fruit, m.w.Menu, m.w.FAQ, m.w.Hint} {
		parts = append(parts, c.ID()+"="+c.Mode())
	}
	return strings.Join(parts, " ")
}
