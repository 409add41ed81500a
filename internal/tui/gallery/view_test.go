package gallery

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t)

	assert.Contains(t, m.View(), "starting gallery")
}

func TestViewShowsTabBar(t *testing.T) {
	m := sized(t, newTestModel(t))

	view := m.View()

	for p := Page(0); p < pageCount; p++ {
		assert.Contains(t, view, p.String())
	}
}

func TestViewFrameDimensions(t *testing.T) {
	m := sized(t, newTestModel(t))

	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 24)
	for _, line := range lines {
		assert.Equal(t, 80, lipgloss.Width(line))
	}
}

func TestViewBadgesPage(t *testing.T) {
	m := sized(t, newTestModel(t))

	view := m.View()

	assert.Contains(t, view, "success")
	assert.Contains(t, view, "Unread")
}

func TestViewTooltipPageShowsTrigger(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageTooltip)
	m = updated.(Model)

	assert.Contains(t, m.View(), "hover or click me")
}

func TestViewFooterShowsOccasion(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.Update(CelebrationMsg{Name: "new-year", Colors: []string{"#ffd700"}})
	m = updated.(Model)

	assert.Contains(t, m.View(), "happy new-year!")
}

func TestViewUploadPageEmptyQueue(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	require.Equal(t, PageUpload, m.page)

	assert.Contains(t, m.View(), "no files selected")
}
