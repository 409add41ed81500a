package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	rating := NewRating(5)

	require.NotNil(t, rating)
	assert.Equal(t, 5, rating.Max())
	assert.Equal(t, 0.0, rating.Value())
}

func TestNewRatingDefaultsMax(t *testing.T) {
	rating := NewRating(0)

	assert.Equal(t, 5, rating.Max())
}

func TestRatingSetValueSnapsToHalfSteps(t *testing.T) {
	rating := NewRating(5)

	rating.SetValue(3.3)
	assert.Equal(t, 3.5, rating.Value())

	rating.SetValue(3.2)
	assert.Equal(t, 3.0, rating.Value())

	rating.SetValue(2.75)
	assert.Equal(t, 3.0, rating.Value())
}

func TestRatingSetValueClampsToRange(t *testing.T) {
	rating := NewRating(5)

	rating.SetValue(-1)
	assert.Equal(t, 0.0, rating.Value())

	rating.SetValue(9)
	assert.Equal(t, 5.0, rating.Value())
}

func TestRatingArrowKeysAdjustValue(t *testing.T) {
	rating := NewRating(5).WithValue(2)
	rating.Focus()

	rating.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2.5, rating.Value())

	rating.Update(tea.KeyMsg{Type: tea.KeyLeft})
	rating.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1.5, rating.Value())
}

func TestRatingIgnoresKeysWhenUnfocused(t *testing.T) {
	rating := NewRating(5).WithValue(2)

	rating.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 2.0, rating.Value())
}

func TestRatingIgnoresKeysWhenReadOnly(t *testing.T) {
	rating := NewRating(5).WithValue(2).WithReadOnly(true)
	rating.Focus()

	rating.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 2.0, rating.Value())
}

func TestRatingViewGlyphCounts(t *testing.T) {
	theme := DefaultTheme()
	rating := NewRating(5).WithValue(3.5)

	view := rating.ViewWithContext(DefaultContext().WithTheme(theme))

	assert.Equal(t, 3, strings.Count(view, theme.Rating.FilledRune))
	assert.Equal(t, 1, strings.Count(view, theme.Rating.HalfRune))
	assert.Equal(t, 1, strings.Count(view, theme.Rating.EmptyRune))
}

func TestRatingViewAllEmpty(t *testing.T) {
	theme := DefaultTheme()
	rating := NewRating(3)

	view := rating.ViewWithContext(DefaultContext().WithTheme(theme))

	assert.Equal(t, 3, strings.Count(view, theme.Rating.EmptyRune))
	assert.Equal(t, 0, strings.Count(view, theme.Rating.FilledRune))
}
