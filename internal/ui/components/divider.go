package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerFallbackWidth = 40

// Divider renders a separator line between content regions.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider. Width 0 means size to the
// surrounding layout at render time.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// WithChar sets the rune the line is drawn with. Empty input keeps
// the current one.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the line length, overriding layout sizing.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.resolveLength(ctx)
	if d.direction == DirectionVertical {
		lines := make([]string, length)
		for i := range lines {
			lines[i] = d.char
		}
		return d.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, length))
}

// resolveLength picks an explicit width first, then whatever the
// layout offers, then a fixed fallback.
func (d *Divider) resolveLength(ctx RenderContext) int {
	if d.width > 0 {
		return d.width
	}
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		return ctx.Constraints.MaxWidth
	}
	if ctx.ParentWidth > 0 {
		return ctx.ParentWidth
	}
	return dividerFallbackWidth
}
