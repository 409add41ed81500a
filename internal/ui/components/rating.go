package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Rating displays a score as a row of star glyphs, with half-step
// support. Interactive ratings adjust with the left/right arrow keys.
type Rating struct {
	BaseComponent
	value    float64
	max      int
	readOnly bool
	focused  bool
}

// NewRating creates a rating out of max stars, initially zero.
func NewRating(max int) *Rating {
	if max <= 0 {
		max = 5
	}
	return &Rating{
		BaseComponent: NewBaseComponent(),
		max:           max,
	}
}

// Value returns the current rating value.
func (r *Rating) Value() float64 {
	return r.value
}

// SetValue sets the rating, snapped to half steps and clamped to
// [0, max].
func (r *Rating) SetValue(value float64) *Rating {
	snapped := float64(int(value*2+0.5)) / 2
	if snapped < 0 {
		snapped = 0
	}
	if snapped > float64(r.max) {
		snapped = float64(r.max)
	}
	r.value = snapped
	return r
}

// Update adjusts the rating from arrow-key messages when focused and
// not read-only.
func (r *Rating) Update(msg tea.Msg) tea.Cmd {
	if r.readOnly || !r.focused {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		r.SetValue(r.value - 0.5)
	case "right", "l":
		r.SetValue(r.value + 0.5)
	}
	return nil
}

// Focus gives the rating keyboard focus.
func (r *Rating) Focus() {
	r.focused = true
}

// Blur removes keyboard focus.
func (r *Rating) Blur() {
	r.focused = false
}

// View renders the rating.
func (r *Rating) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rating with the given theme context.
func (r *Rating) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	full := int(r.value)
	half := r.value-float64(full) >= 0.5

	var b strings.Builder
	filled := theme.Rating.Filled
	empty := theme.Rating.Empty
	for i := 0; i < r.max; i++ {
		switch {
		case i < full:
			b.WriteString(filled.Render(theme.Rating.FilledRune))
		case i == full && half:
			b.WriteString(filled.Render(theme.Rating.HalfRune))
		default:
			b.WriteString(empty.Render(theme.Rating.EmptyRune))
		}
	}

	return r.ComputeStyle(theme).Render(b.String())
}

// WithValue sets the initial rating value.
func (r *Rating) WithValue(value float64) *Rating {
	return r.SetValue(value)
}

// WithReadOnly makes the rating display-only.
func (r *Rating) WithReadOnly(readOnly bool) *Rating {
	r.readOnly = readOnly
	return r
}

// ReadOnly reports whether the rating is display-only.
func (r *Rating) ReadOnly() bool {
	return r.readOnly
}

// Max returns the number of stars.
func (r *Rating) Max() int {
	return r.max
}

// WithAppliers applies theme-based style modifiers.
func (r *Rating) WithAppliers(appliers ...StyleFunc) *Rating {
	r.AddAppliers(appliers...)
	return r
}
