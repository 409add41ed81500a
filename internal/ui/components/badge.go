package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
	count   int
	max     int
	counter bool
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// NewCounterBadge creates a numeric badge. Counts above max render as
// "max+"; a max of 0 means unbounded.
func NewCounterBadge(count int) *Badge {
	b := NewBadge("")
	b.counter = true
	b.count = count
	b.max = 99
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label())
}

func (b *Badge) label() string {
	if !b.counter {
		return b.text
	}
	if b.max > 0 && b.count > b.max {
		return fmt.Sprintf("%d+", b.max)
	}
	return fmt.Sprintf("%d", b.count)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	baseStyle := b.ComputeStyle(theme)
	if theme.Variants == nil {
		return baseStyle
	}
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(baseStyle, theme)
	}
	return baseStyle
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithMax caps the displayed count for counter badges.
func (b *Badge) WithMax(max int) *Badge {
	b.max = max
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// SetCount updates the count for counter badges.
func (b *Badge) SetCount(count int) *Badge {
	b.count = count
	return b
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantInfo)
}
