package components

import (
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/geometry"
	"github.com/glintui/glint/internal/popover"
)

// Tooltip attaches a floating panel of text to a trigger region of the
// screen. Placement, overflow handling and the open/close lifecycle
// are delegated to the popover engine; the tooltip contributes the
// terminal-cell measurer, the themed panel rendering and the overlay
// compositing.
//
// Configure the tooltip with the With* methods before its first event
// or render; the underlying controller is created on first use and its
// mode is fixed from then on.
type Tooltip struct {
	BaseComponent
	content string

	opts  popover.Options
	clock popover.Clock

	mu         sync.Mutex
	controller *popover.Controller
	measurer   *cellMeasurer
	signals    *viewportSignals
	lastTheme  Theme
	themed     bool
}

// cellMeasurer implements popover.Measurer over terminal cells. The
// trigger rectangle and viewport are pushed in by the host layout; the
// panel size is measured from the rendered panel string.
type cellMeasurer struct {
	mu        sync.Mutex
	trigger   geometry.Rect
	hasRect   bool
	viewport  geometry.Size
	scroll    geometry.Offset
	panelSize func() (geometry.Size, bool)
}

func (m *cellMeasurer) TriggerRect() (geometry.Rect, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trigger, m.hasRect
}

func (m *cellMeasurer) PanelSize() (geometry.Size, bool) {
	return m.panelSize()
}

func (m *cellMeasurer) Viewport() geometry.Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewport
}

func (m *cellMeasurer) ScrollOffset() geometry.Offset {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scroll
}

// viewportSignals implements popover.ViewportEvents for a single
// in-process host: the tooltip's owner calls emit on scroll/resize.
type viewportSignals struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (v *viewportSignals) Subscribe(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.subs == nil {
		v.subs = make(map[int]func())
	}
	id := v.next
	v.next++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

func (v *viewportSignals) emit() {
	v.mu.Lock()
	fns := make([]func(), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// NewTooltip creates a tooltip with the given panel text.
func NewTooltip(content string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		content:       content,
		opts: popover.Options{
			Placement: popover.PlacementTop,
			Offset:    1,
		},
	}
}

// WithPlacement sets the requested placement.
func (t *Tooltip) WithPlacement(p popover.Placement) *Tooltip {
	t.opts.Placement = p
	return t
}

// WithTrigger sets the trigger mode.
func (t *Tooltip) WithTrigger(mode popover.TriggerMode) *Tooltip {
	t.opts.Trigger = mode
	return t
}

// WithDelays sets the open and close delays.
func (t *Tooltip) WithDelays(open, close time.Duration) *Tooltip {
	t.opts.DelayOpen = open
	t.opts.DelayClose = close
	return t
}

// WithOffset sets the gap between trigger and panel.
func (t *Tooltip) WithOffset(offset float64) *Tooltip {
	t.opts.Offset = offset
	return t
}

// WithFineOffset sets the post-resolution x/y shifts.
func (t *Tooltip) WithFineOffset(x, y float64) *Tooltip {
	t.opts.OffsetX = x
	t.opts.OffsetY = y
	return t
}

// WithNudges sets the directional nudge corrections.
func (t *Tooltip) WithNudges(left, right, top, bottom float64) *Tooltip {
	t.opts.NudgeLeft = left
	t.opts.NudgeRight = right
	t.opts.NudgeTop = top
	t.opts.NudgeBottom = bottom
	return t
}

// WithAutoPlacement toggles overflow-driven placement flipping.
func (t *Tooltip) WithAutoPlacement(enabled bool) *Tooltip {
	t.opts.AutoPlacement = popover.Bool(enabled)
	return t
}

// WithDisabled toggles the disabled state.
func (t *Tooltip) WithDisabled(disabled bool) *Tooltip {
	t.opts.Disabled = disabled
	t.mu.Lock()
	c := t.controller
	t.mu.Unlock()
	if c != nil {
		c.SetDisabled(disabled)
	}
	return t
}

// WithOpenChange sets the open/close change callback.
func (t *Tooltip) WithOpenChange(fn func(bool)) *Tooltip {
	t.opts.OnOpenChange = fn
	return t
}

// Controlled puts the tooltip in controlled mode with the given
// initial flag; thereafter the caller owns the rendered state via
// SetOpen.
func (t *Tooltip) Controlled(isOpen bool) *Tooltip {
	t.opts.IsOpen = popover.Bool(isOpen)
	return t
}

// WithDefaultOpen sets the initial open flag in uncontrolled mode.
func (t *Tooltip) WithDefaultOpen(open bool) *Tooltip {
	t.opts.DefaultIsOpen = open
	return t
}

// WithClock overrides the timer source, for tests.
func (t *Tooltip) WithClock(clock popover.Clock) *Tooltip {
	t.clock = clock
	return t
}

// WithAppliers applies theme-based style modifiers to the panel.
func (t *Tooltip) WithAppliers(appliers ...StyleFunc) *Tooltip {
	t.AddAppliers(appliers...)
	return t
}

// SetContent replaces the panel text.
func (t *Tooltip) SetContent(content string) *Tooltip {
	t.content = content
	return t
}

func (t *Tooltip) ensureController() *popover.Controller {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.controller == nil {
		t.measurer = &cellMeasurer{panelSize: t.measurePanel}
		t.signals = &viewportSignals{}
		t.controller = popover.NewController(t.opts, popover.Host{
			Measurer: t.measurer,
			Clock:    t.clock,
			Events:   t.signals,
		})
	}
	return t.controller
}

func (t *Tooltip) measurePanel() (geometry.Size, bool) {
	panel := t.renderPanel(t.currentTheme())
	if panel == "" {
		return geometry.Size{}, false
	}
	return geometry.Size{
		Width:  float64(lipgloss.Width(panel)),
		Height: float64(lipgloss.Height(panel)),
	}, true
}

func (t *Tooltip) currentTheme() Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.themed {
		return t.lastTheme
	}
	return DefaultTheme()
}

// SetTriggerRect tells the tooltip where its trigger sits on screen,
// in cells.
func (t *Tooltip) SetTriggerRect(top, left, width, height int) {
	t.ensureController()
	t.measurer.mu.Lock()
	t.measurer.trigger = geometry.RectFromLTWH(
		float64(left), float64(top), float64(width), float64(height))
	t.measurer.hasRect = width > 0 && height > 0
	t.measurer.mu.Unlock()
}

// SetViewportSize updates the viewport dimensions and triggers a
// reposition while open.
func (t *Tooltip) SetViewportSize(width, height int) {
	t.ensureController()
	t.measurer.mu.Lock()
	t.measurer.viewport = geometry.Size{Width: float64(width), Height: float64(height)}
	t.measurer.mu.Unlock()
	t.signals.emit()
}

// NotifyScroll updates the scroll offset and triggers a reposition
// while open.
func (t *Tooltip) NotifyScroll(x, y float64) {
	t.ensureController()
	t.measurer.mu.Lock()
	t.measurer.scroll = geometry.Offset{X: x, Y: y}
	t.measurer.mu.Unlock()
	t.signals.emit()
}

// PointerEnter forwards a pointer-enter event on the trigger.
func (t *Tooltip) PointerEnter() { t.ensureController().PointerEnter() }

// PointerLeave forwards a pointer-leave event on the trigger.
func (t *Tooltip) PointerLeave() { t.ensureController().PointerLeave() }

// Click forwards a click on the trigger.
func (t *Tooltip) Click() { t.ensureController().Click() }

// Focus forwards the trigger receiving focus.
func (t *Tooltip) Focus() { t.ensureController().Focus() }

// Blur forwards the trigger losing focus.
func (t *Tooltip) Blur() { t.ensureController().Blur() }

// SetOpen drives the open flag directly (manual and controlled modes).
func (t *Tooltip) SetOpen(open bool) { t.ensureController().SetOpen(open) }

// Snapshot returns the controller's render-time view.
func (t *Tooltip) Snapshot() popover.Snapshot {
	return t.ensureController().Snapshot()
}

// Unmount releases timers and subscriptions. The tooltip must not be
// used afterwards.
func (t *Tooltip) Unmount() {
	t.mu.Lock()
	ctrl := t.controller
	t.mu.Unlock()
	if ctrl != nil {
		ctrl.Close()
	}
}

// View renders only the panel, for previewing in isolation.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders only the panel with the given theme context.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	t.rememberTheme(ctx.Theme)
	return t.renderPanel(ctx.Theme)
}

// RenderOverlay composites the open tooltip panel onto the given base
// frame. When closed, or before the first positioning pass, the frame
// is returned unchanged.
func (t *Tooltip) RenderOverlay(base string, ctx RenderContext) string {
	t.rememberTheme(ctx.Theme)
	snap := t.ensureController().Snapshot()
	if !snap.IsOpen || !snap.Positioned {
		return base
	}
	panel := t.renderPanel(ctx.Theme)
	return PlaceOverlay(base, panel, int(snap.Top), int(snap.Left))
}

func (t *Tooltip) rememberTheme(theme Theme) {
	t.mu.Lock()
	t.lastTheme = theme
	t.themed = true
	t.mu.Unlock()
}

func (t *Tooltip) renderPanel(theme Theme) string {
	if t.content == "" {
		return ""
	}
	style := theme.Tooltip.Panel
	if theme.Tooltip.MaxWidth > 0 {
		style = style.MaxWidth(theme.Tooltip.MaxWidth)
	}
	base := t.ComputeStyle(theme)
	return base.Inherit(style).Render(t.content)
}
