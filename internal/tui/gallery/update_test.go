package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSizeLaysOutTrigger(t *testing.T) {
	m := sized(t, newTestModel(t))

	assert.Equal(t, 12, m.triggerTop)
	assert.Equal(t, 32, m.triggerLeft)
}

func TestTabCyclesPages(t *testing.T) {
	m := sized(t, newTestModel(t))

	for i := 0; i < int(pageCount); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}

	assert.Equal(t, PageBadges, m.page)
}

func TestShiftTabGoesBackward(t *testing.T) {
	m := sized(t, newTestModel(t))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)

	assert.Equal(t, PageUpload, m.page)
}

func TestQuitKeys(t *testing.T) {
	m := sized(t, newTestModel(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestQTypesIntoFocusedInput(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageInputs)
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)

	assert.Equal(t, "q", m.input.Value())
}

func TestBadgeCounterBumps(t *testing.T) {
	m := sized(t, newTestModel(t))

	for i := 0; i < 3; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
		m = updated.(Model)
	}

	assert.Equal(t, 3, m.counterClicks)
}

func TestRatingPageRoutesArrowKeys(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageRating)
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)

	assert.Equal(t, 4.0, m.rating.Value())
}

func TestPageSwitchBlursPreviousComponent(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageInputs)
	m = updated.(Model)
	require.True(t, m.input.Focused())

	updated, _ = m.switchPage(PageRating)
	m = updated.(Model)

	assert.False(t, m.input.Focused())
}

func TestMouseHoverOpensTooltip(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageTooltip)
	m = updated.(Model)

	updated, _ = m.Update(tea.MouseMsg{
		X:      m.triggerLeft + 1,
		Y:      m.triggerTop,
		Action: tea.MouseActionMotion,
	})
	m = updated.(Model)

	assert.True(t, m.TooltipSnapshot().IsOpen)

	updated, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	m = updated.(Model)

	assert.False(t, m.TooltipSnapshot().IsOpen)
}

func TestMouseHoverIgnoredOffTooltipPage(t *testing.T) {
	m := sized(t, newTestModel(t))

	updated, _ := m.Update(tea.MouseMsg{
		X:      m.triggerLeft + 1,
		Y:      m.triggerTop,
		Action: tea.MouseActionMotion,
	})
	m = updated.(Model)

	assert.False(t, m.TooltipSnapshot().IsOpen)
}

func TestSpaceTogglesTooltipByClick(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.switchPage(PageTooltip)
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	assert.True(t, m.TooltipSnapshot().IsOpen)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	assert.False(t, m.TooltipSnapshot().IsOpen)
}

func TestCelebrationMsgStartsConfetti(t *testing.T) {
	m := sized(t, newTestModel(t))

	updated, _ := m.Update(CelebrationMsg{Name: "new-year", Colors: []string{"#ffd700"}})
	m = updated.(Model)

	assert.True(t, m.Celebrating())
	assert.Equal(t, "new-year", m.occasionName)
}

func TestFrameTickStepsAndClearsConfetti(t *testing.T) {
	m := sized(t, newTestModel(t))
	updated, _ := m.Update(CelebrationMsg{Name: "new-year", Colors: []string{"#ffd700"}})
	m = updated.(Model)

	for i := 0; i < 600 && m.Celebrating(); i++ {
		updated, cmd := m.Update(FrameTickMsg{})
		m = updated.(Model)
		require.NotNil(t, cmd)
	}

	assert.False(t, m.Celebrating())
	assert.Empty(t, m.occasionName)
}

func TestUploadProgressChainsUntilDone(t *testing.T) {
	m := sized(t, newTestModel(t))

	updated, cmd := m.Update(UploadProgressMsg{Path: "/tmp/a.txt", Ratio: 0.5})
	m = updated.(Model)
	assert.NotNil(t, cmd)

	updated, cmd = m.Update(UploadProgressMsg{Path: "/tmp/a.txt", Ratio: 1})
	_ = updated
	assert.Nil(t, cmd)
}
