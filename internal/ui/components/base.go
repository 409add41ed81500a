package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides the common styling machinery shared by every
// component. Embed it to get theme-aware style composition.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a
// lipgloss.Style using data from a Theme. It is the core abstraction
// for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the
// provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing
// strategy, preserving any custom strategy logic already installed.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
	} else {
		current := b.strategy
		wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if current != nil {
				base = current.Apply(base, theme)
			}
			for _, applier := range appliers {
				base = applier(base, theme)
			}
			return base
		}
		b.strategy = NewCompositeStrategy(wrapper)
	}
}

// Constraints defines sizing constraints for layout calculations.
// A MaxWidth/MaxHeight of -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1, MinHeight: 0, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth, MinHeight: 0, MaxHeight: -1}
}

// HasWidth returns true if there is a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth != -1 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight != -1 && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return w, h
}

// RenderContext provides layout information and theme to components
// during rendering. Passing the theme explicitly keeps rendering free
// of global state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and
// no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// Alignment specifies how content should be aligned.
type Alignment int

const (
	AlignmentStart Alignment = iota
	AlignmentCenter
	AlignmentEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignmentCenter:
		return lipgloss.Center
	case AlignmentEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
