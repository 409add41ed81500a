package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Splitter lays two panes side by side (or stacked) separated by a
// draggable divider. The divider position is a ratio of the total
// size, constrained by per-pane minimums; resizing is plain linear
// arithmetic over the available cells.
type Splitter struct {
	BaseComponent
	first     ui.Renderable
	second    ui.Renderable
	direction Direction
	ratio     float64
	minFirst  int
	minSecond int
	width     int
	height    int
	step      float64
	focused   bool
}

// NewSplitter creates a horizontal splitter over the two panes with
// the divider at the midpoint.
func NewSplitter(first, second ui.Renderable) *Splitter {
	return &Splitter{
		BaseComponent: NewBaseComponent(),
		first:         first,
		second:        second,
		direction:     DirectionHorizontal,
		ratio:         0.5,
		minFirst:      4,
		minSecond:     4,
		width:         80,
		height:        10,
		step:          0.05,
	}
}

// Ratio returns the current divider position as a fraction of the
// total size allotted to the first pane.
func (s *Splitter) Ratio() float64 {
	return s.ratio
}

// SetRatio moves the divider, clamped so neither pane shrinks below
// its minimum.
func (s *Splitter) SetRatio(ratio float64) *Splitter {
	s.ratio = s.clampRatio(ratio)
	return s
}

func (s *Splitter) clampRatio(ratio float64) float64 {
	total := s.totalCells()
	if total <= s.minFirst+s.minSecond+1 {
		return 0.5
	}
	lo := float64(s.minFirst) / float64(total)
	hi := float64(total-s.minSecond-1) / float64(total)
	if ratio < lo {
		return lo
	}
	if ratio > hi {
		return hi
	}
	return ratio
}

func (s *Splitter) totalCells() int {
	if s.direction == DirectionHorizontal {
		return s.width
	}
	return s.height
}

// Update resizes the splitter from arrow-key messages while focused.
func (s *Splitter) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	grow, shrink := "right", "left"
	if s.direction == DirectionVertical {
		grow, shrink = "down", "up"
	}
	switch key.String() {
	case shrink:
		s.SetRatio(s.ratio - s.step)
	case grow:
		s.SetRatio(s.ratio + s.step)
	}
	return nil
}

// Focus gives the splitter keyboard focus.
func (s *Splitter) Focus() {
	s.focused = true
}

// Blur removes keyboard focus.
func (s *Splitter) Blur() {
	s.focused = false
}

// View renders the splitter.
func (s *Splitter) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders both panes and the divider with the given
// theme context.
func (s *Splitter) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	firstView := renderChild(s.first, ctx)
	secondView := renderChild(s.second, ctx)

	var content string
	if s.direction == DirectionHorizontal {
		firstCells, secondCells := s.paneSizes()
		left := lipgloss.NewStyle().Width(firstCells).MaxWidth(firstCells).Render(firstView)
		right := lipgloss.NewStyle().Width(secondCells).MaxWidth(secondCells).Render(secondView)
		divider := s.renderVerticalDivider(theme, maxLines(left, right))
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
	} else {
		firstCells, secondCells := s.paneSizes()
		topPane := lipgloss.NewStyle().Height(firstCells).MaxHeight(firstCells).Render(firstView)
		bottomPane := lipgloss.NewStyle().Height(secondCells).MaxHeight(secondCells).Render(secondView)
		divider := s.renderHorizontalDivider(theme)
		content = lipgloss.JoinVertical(lipgloss.Left, topPane, divider, bottomPane)
	}

	return s.ComputeStyle(theme).Render(content)
}

// paneSizes splits the total cells between the panes, reserving one
// cell for the divider.
func (s *Splitter) paneSizes() (first, second int) {
	total := s.totalCells() - 1
	if total < 2 {
		return 1, 1
	}
	first = int(float64(s.totalCells()) * s.ratio)
	if first < s.minFirst {
		first = s.minFirst
	}
	if first > total-s.minSecond {
		first = total - s.minSecond
	}
	if first < 1 {
		first = 1
	}
	second = total - first
	if second < 1 {
		second = 1
	}
	return first, second
}

func (s *Splitter) renderVerticalDivider(theme Theme, lines int) string {
	style := theme.Splitter.Divider
	glyph := "│"
	if s.focused {
		style = theme.Splitter.Handle
		glyph = theme.Splitter.HandleRune
	}
	if lines < 1 {
		lines = 1
	}
	column := strings.TrimSuffix(strings.Repeat(glyph+"\n", lines), "\n")
	return style.Render(column)
}

func (s *Splitter) renderHorizontalDivider(theme Theme) string {
	style := theme.Splitter.Divider
	glyph := "─"
	if s.focused {
		style = theme.Splitter.Handle
		glyph = "━"
	}
	return style.Render(strings.Repeat(glyph, s.width))
}

func maxLines(views ...string) int {
	max := 0
	for _, v := range views {
		if n := lipgloss.Height(v); n > max {
			max = n
		}
	}
	return max
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// WithDirection sets the split direction.
func (s *Splitter) WithDirection(dir Direction) *Splitter {
	s.direction = dir
	return s
}

// WithSize sets the total width and height in cells.
func (s *Splitter) WithSize(width, height int) *Splitter {
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
	s.ratio = s.clampRatio(s.ratio)
	return s
}

// WithMinSizes sets the minimum cell size of each pane.
func (s *Splitter) WithMinSizes(first, second int) *Splitter {
	if first > 0 {
		s.minFirst = first
	}
	if second > 0 {
		s.minSecond = second
	}
	s.ratio = s.clampRatio(s.ratio)
	return s
}

// WithRatio sets the initial divider position.
func (s *Splitter) WithRatio(ratio float64) *Splitter {
	return s.SetRatio(ratio)
}

// WithStep sets the ratio change per resize keypress.
func (s *Splitter) WithStep(step float64) *Splitter {
	if step > 0 && step < 1 {
		s.step = step
	}
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Splitter) WithAppliers(appliers ...StyleFunc) *Splitter {
	s.AddAppliers(appliers...)
	return s
}
