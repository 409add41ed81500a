package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Direction specifies the layout direction for a Stack or Splitter.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single
// direction with an optional gap.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  Alignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    AlignmentStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	if len(s.children) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	childViews := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(ctx)
		} else {
			view = child.View()
		}
		if view != "" {
			childViews = append(childViews, view)
		}
	}
	if len(childViews) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(childViews)
	} else {
		content = s.joinVertical(childViews)
	}

	return s.ComputeStyle(ctx.Theme).Render(content)
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		gap := strings.Repeat("\n", s.gap-1)
		for i, v := range views {
			if i > 0 {
				spaced = append(spaced, gap)
			}
			spaced = append(spaced, v)
		}
		views = spaced
	}
	return lipgloss.JoinVertical(s.crossAlign.ToLipglossPosition(), views...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		gap := strings.Repeat(" ", s.gap)
		for i, v := range views {
			if i > 0 {
				spaced = append(spaced, gap)
			}
			spaced = append(spaced, v)
		}
		views = spaced
	}

	pos := lipgloss.Top
	switch s.crossAlign {
	case AlignmentCenter:
		pos = lipgloss.Center
	case AlignmentEnd:
		pos = lipgloss.Bottom
	}
	return lipgloss.JoinHorizontal(pos, views...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap >= 0 {
		s.gap = gap
	}
	return s
}

// WithCrossAlign sets how children align across the layout axis.
func (s *Stack) WithCrossAlign(align Alignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// AddChildren appends children to the stack.
func (s *Stack) AddChildren(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}
