package gallery

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Underline(true)

	footerStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	triggerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Reverse(true)
)
