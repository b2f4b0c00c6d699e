package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor)

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(primaryColor).
			Underline(true)

	focusedTabStyle = tabStyle.
			Foreground(accentColor)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2).
			Width(64)

	triggerStyle = lipgloss.NewStyle().
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	focusedItemStyle = itemStyle.
				Foreground(accentColor).
				Bold(true)

	disabledItemStyle = itemStyle.
				Foreground(mutedColor).
				Strikethrough(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor)

	hintStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	logStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
