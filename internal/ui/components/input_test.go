package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInput(t *testing.T) {
	input := NewInput("your name")

	require.NotNil(t, input)
	assert.Empty(t, input.Value())
	assert.False(t, input.Focused())
}

func TestInputTypingUpdatesValue(t *testing.T) {
	input := NewInput("")
	input.Focus()

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	assert.Equal(t, "hi", input.Value())
}

func TestInputDisabledSwallowsInput(t *testing.T) {
	input := NewInput("").WithDisabled(true)

	cmd := input.Focus()
	assert.Nil(t, cmd)
	assert.False(t, input.Focused())

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, input.Value())
}

func TestInputStatePrecedence(t *testing.T) {
	input := NewInput("")
	assert.Equal(t, InputStateDefault, input.state())

	input.Focus()
	assert.Equal(t, InputStateFocus, input.state())

	input.WithError("required")
	assert.Equal(t, InputStateError, input.state())

	input.WithDisabled(true)
	assert.Equal(t, InputStateDisabled, input.state())
}

func TestInputViewShowsLabelAndHelp(t *testing.T) {
	input := NewInput("").
		WithLabel("Email").
		WithHelp("we never share it")

	view := input.View()

	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "we never share it")
}

func TestInputErrorReplacesHelp(t *testing.T) {
	input := NewInput("").
		WithHelp("hint text").
		WithError("invalid address")

	view := input.View()

	assert.Contains(t, view, "invalid address")
	assert.NotContains(t, view, "hint text")
}

func TestInputSetValue(t *testing.T) {
	input := NewInput("").SetValue("preset")

	assert.Equal(t, "preset", input.Value())
}
