package components

import "github.com/charmbracelet/lipgloss"

// Text renders a styled run of text. It is the leaf most other
// components and stacks bottom out in.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// StyledText creates text styled with a typography token from the
// active theme.
func StyledText(content string, variant TypographyVariant) *Text {
	return NewText(content).WithAppliers(Typography(variant))
}

// TitleText creates title-styled text.
func TitleText(content string) *Text {
	return StyledText(content, TypographyVariantTitle)
}

// FaintText creates de-emphasized text.
func FaintText(content string) *Text {
	return StyledText(content, TypographyVariantFaint)
}

// Content returns the current text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly, bypassing the theme.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}
