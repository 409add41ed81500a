package gallery

import (
	"fmt"
	"strings"

	"github.com/glintui/glint/internal/ui/components"
)

// View renders the gallery frame: confetti backdrop, tab bar, the
// active page, and the tooltip overlay on top.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting gallery..."
	}

	ctx := components.DefaultContext().WithTheme(m.theme)

	frame := m.backdrop()
	frame = components.PlaceOverlay(frame, m.renderTabs(), 0, 0)
	frame = components.PlaceOverlay(frame, m.renderPage(ctx), 2, 2)

	if m.page == PageTooltip {
		frame = components.PlaceOverlay(frame, triggerStyle.Render("hover or click me"), m.triggerTop, m.triggerLeft)
		frame = m.tooltip.RenderOverlay(frame, ctx)
	}

	frame = components.PlaceOverlay(frame, m.renderFooter(), m.height-1, 0)
	return frame
}

// backdrop is the confetti field while celebrating, otherwise blank.
func (m Model) backdrop() string {
	if m.Celebrating() {
		return m.confetti.Render()
	}
	row := strings.Repeat(" ", m.width)
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTabs() string {
	var b strings.Builder
	for p := Page(0); p < pageCount; p++ {
		if p == m.page {
			b.WriteString(activeTabStyle.Render(p.String()))
		} else {
			b.WriteString(tabStyle.Render(p.String()))
		}
	}
	return b.String()
}

func (m Model) renderPage(ctx components.RenderContext) string {
	switch m.page {
	case PageBadges:
		return m.renderBadges(ctx)
	case PageInputs:
		return m.input.ViewWithContext(ctx)
	case PageRating:
		return components.VStack(
			components.NewText("Use left/right to adjust:"),
			m.rating,
		).WithGap(1).ViewWithContext(ctx)
	case PageSplitter:
		return m.splitter.ViewWithContext(ctx)
	case PageTooltip:
		return components.VStack(
			components.NewText("Move the mouse over the trigger below,"),
			components.NewText("or press space to toggle by click."),
		).ViewWithContext(ctx)
	case PageUpload:
		return components.VStack(
			components.NewText("Press o to pick a file:"),
			m.upload,
		).WithGap(1).ViewWithContext(ctx)
	default:
		return ""
	}
}

func (m Model) renderBadges(ctx components.RenderContext) string {
	return components.VStack(
		components.HStack(
			components.PrimaryBadge("primary"),
			components.SuccessBadge("success"),
			components.WarningBadge("warning"),
			components.ErrorBadge("error"),
			components.InfoBadge("info"),
		).WithGap(1),
		components.HorizontalDivider().WithWidth(40),
		components.HStack(
			components.NewText("Unread (press + to bump):"),
			m.counter,
		).WithGap(1),
	).WithGap(1).ViewWithContext(ctx)
}

func (m Model) renderFooter() string {
	hints := "tab: next page, shift+tab: previous, q: quit"
	if m.occasionName != "" {
		hints = fmt.Sprintf("happy %s!  %s", m.occasionName, hints)
	}
	return footerStyle.Render(hints)
}
