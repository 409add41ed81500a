// Package ui defines the minimal contracts shared by every visual
// component in the library.
package ui

import tea "github.com/charmbracelet/bubbletea"

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}

// Interactive is a component that participates in the host event loop.
// Update receives host messages and returns any follow-up command.
type Interactive interface {
	Renderable
	Update(msg tea.Msg) tea.Cmd
}
