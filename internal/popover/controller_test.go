package popover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/geometry"
)

// fakeClock is a manual clock: timers fire only when Advance crosses
// their deadline, in deadline order, on the calling goroutine.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() {
	t.stopped = true
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{clock: c, deadline: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.deadline > c.now {
				continue
			}
			if next == nil || t.deadline < next.deadline {
				next = t
			}
		}
		if next == nil {
			return
		}
		next.fired = true
		next.fn()
	}
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

type fakeMeasurer struct {
	trigger   geometry.Rect
	triggerOK bool
	panel     geometry.Size
	panelOK   bool
	viewport  geometry.Size
	scroll    geometry.Offset
}

func (m *fakeMeasurer) TriggerRect() (geometry.Rect, bool) {
	return m.trigger, m.triggerOK
}

func (m *fakeMeasurer) PanelSize() (geometry.Size, bool) {
	return m.panel, m.panelOK
}

func (m *fakeMeasurer) Viewport() geometry.Size {
	return m.viewport
}

func (m *fakeMeasurer) ScrollOffset() geometry.Offset {
	return m.scroll
}

type fakeEvents struct {
	fn         func()
	subscribed int
	cancelled  int
}

func (e *fakeEvents) Subscribe(fn func()) func() {
	e.fn = fn
	e.subscribed++
	return func() {
		e.cancelled++
		e.fn = nil
	}
}

func (e *fakeEvents) emit() {
	if e.fn != nil {
		e.fn()
	}
}

func goodMeasurer() *fakeMeasurer {
	return &fakeMeasurer{
		trigger:   geometry.RectFromLTWH(400, 300, 40, 20),
		triggerOK: true,
		panel:     geometry.Size{Width: 60, Height: 10},
		panelOK:   true,
		viewport:  geometry.Size{Width: 1024, Height: 768},
	}
}

func newTestController(opts Options) (*Controller, *fakeClock, *fakeMeasurer, *fakeEvents) {
	clock := &fakeClock{}
	measurer := goodMeasurer()
	events := &fakeEvents{}
	c := NewController(opts, Host{Measurer: measurer, Clock: clock, Events: events})
	return c, clock, measurer, events
}

func TestHoverOpensImmediatelyWithZeroDelay(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()

	assert.Equal(t, StateOpen, c.State())
	assert.True(t, c.Snapshot().IsOpen)
	assert.Equal(t, []bool{true}, changes)

	// The first positioning pass is deferred one tick.
	assert.False(t, c.Snapshot().Positioned)
	clock.Advance(0)
	assert.True(t, c.Snapshot().Positioned)
}

func TestDelayedOpenFiresAfterDelay(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		DelayOpen:    200 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	assert.Equal(t, StateOpening, c.State())
	assert.False(t, c.Snapshot().IsOpen)
	assert.Empty(t, changes)

	clock.Advance(199 * time.Millisecond)
	assert.Equal(t, StateOpening, c.State())

	clock.Advance(time.Millisecond)
	assert.Equal(t, StateOpen, c.State())
	assert.True(t, c.Snapshot().IsOpen)
	assert.Equal(t, []bool{true}, changes)
}

func TestCloseBeforeOpenDelayCancelsOpen(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		DelayOpen:    200 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	c.PointerLeave()

	assert.Equal(t, StateClosed, c.State())
	clock.Advance(time.Second)

	// The open timer was cancelled: no transition, no callback.
	assert.Equal(t, StateClosed, c.State())
	assert.False(t, c.Snapshot().IsOpen)
	assert.Empty(t, changes)
}

func TestClickToggleWithCloseDelay(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerClick,
		DelayClose:   300 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.Click()
	assert.Equal(t, StateOpen, c.State())
	assert.Equal(t, []bool{true}, changes)

	c.Click()
	assert.Equal(t, StateClosing, c.State())
	assert.True(t, c.Snapshot().IsOpen, "still rendered open while closing")

	// Third click within the close window cancels the pending close;
	// the panel stays open and no close callback fires.
	clock.Advance(100 * time.Millisecond)
	c.Click()
	assert.Equal(t, StateOpen, c.State())

	clock.Advance(time.Second)
	assert.Equal(t, StateOpen, c.State())
	assert.Equal(t, []bool{true}, changes)
}

func TestSetOpenDuringCloseWindowCancelsCloseWithoutCallback(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		DelayClose:   300 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	c.PointerLeave()
	assert.Equal(t, StateClosing, c.State())

	// The panel never logically closed, so reopening through the manual
	// path must not fire the open callback a second time.
	clock.Advance(100 * time.Millisecond)
	c.SetOpen(true)
	assert.Equal(t, StateOpen, c.State())
	assert.Equal(t, []bool{true}, changes)

	clock.Advance(time.Second)
	assert.Equal(t, StateOpen, c.State())
	assert.Equal(t, []bool{true}, changes)
}

func TestCloseTimerFires(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		DelayClose:   300 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	c.PointerLeave()
	assert.Equal(t, StateClosing, c.State())

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, StateClosed, c.State())
	assert.False(t, c.Snapshot().IsOpen)
	assert.Equal(t, []bool{true, false}, changes)
}

func TestTimersMutuallyExclusive(t *testing.T) {
	c, clock, _, _ := newTestController(Options{
		Trigger:    TriggerHover,
		DelayOpen:  100 * time.Millisecond,
		DelayClose: 100 * time.Millisecond,
	})
	defer c.Close()

	// Rapid alternation must never leave two timers pending.
	for i := 0; i < 5; i++ {
		c.PointerEnter()
		assert.LessOrEqual(t, clock.pending(), 1, "iteration %d", i)
		c.PointerLeave()
		assert.LessOrEqual(t, clock.pending(), 1, "iteration %d", i)
	}
}

func TestControlledModeNeverSelfToggles(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		IsOpen:       Bool(false),
		Trigger:      TriggerHover,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	clock.Advance(time.Second)

	// Intent is reported, but the rendered flag stays external.
	assert.Equal(t, []bool{true}, changes)
	assert.False(t, c.Snapshot().IsOpen)

	// Only the caller flips what is rendered.
	c.SetOpen(true)
	assert.True(t, c.Snapshot().IsOpen)
}

func TestControlledSetOpenDoesNotFireCallback(t *testing.T) {
	var changes []bool
	c, _, _, _ := newTestController(Options{
		IsOpen:       Bool(false),
		Trigger:      TriggerManual,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.SetOpen(true)
	c.SetOpen(false)

	assert.Empty(t, changes)
}

func TestDefaultIsOpenStartsOpen(t *testing.T) {
	c, clock, _, events := newTestController(Options{
		DefaultIsOpen: true,
		Trigger:       TriggerManual,
	})
	defer c.Close()

	assert.True(t, c.Snapshot().IsOpen)
	assert.Equal(t, 1, events.subscribed)

	clock.Advance(0)
	assert.True(t, c.Snapshot().Positioned)
}

func TestDisabledSuppressesOpenEvents(t *testing.T) {
	var changes []bool
	c, clock, _, _ := newTestController(Options{
		Trigger:      TriggerHover,
		Disabled:     true,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})
	defer c.Close()

	c.PointerEnter()
	clock.Advance(time.Second)

	assert.Equal(t, StateClosed, c.State())
	assert.Empty(t, changes)
}

func TestDisableDoesNotSuppressPendingClose(t *testing.T) {
	c, clock, _, _ := newTestController(Options{
		Trigger:    TriggerHover,
		DelayClose: 100 * time.Millisecond,
	})
	defer c.Close()

	c.PointerEnter()
	c.PointerLeave()
	require.Equal(t, StateClosing, c.State())

	// Disabling mid-close: the open event is swallowed without
	// cancelling the pending close, which then completes.
	c.SetDisabled(true)
	c.PointerEnter()
	assert.Equal(t, StateClosing, c.State())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, StateClosed, c.State())
}

func TestScrollRepositionsOnlyWhileOpen(t *testing.T) {
	c, clock, measurer, events := newTestController(Options{Trigger: TriggerHover})
	defer c.Close()

	c.PointerEnter()
	clock.Advance(0)
	require.True(t, c.Snapshot().Positioned)

	// Default placement is top: the panel sits its own height above
	// the moved trigger.
	measurer.trigger = geometry.RectFromLTWH(100, 100, 40, 20)
	events.emit()
	snap := c.Snapshot()
	assert.Equal(t, measurer.trigger.Top-measurer.panel.Height, snap.Top)

	c.PointerLeave()
	assert.Equal(t, 1, events.cancelled, "listener detached on close")
}

func TestMeasurementFailureRetainsCoordinates(t *testing.T) {
	c, clock, measurer, events := newTestController(Options{Trigger: TriggerHover})
	defer c.Close()

	c.PointerEnter()
	clock.Advance(0)
	before := c.Snapshot()
	require.True(t, before.Positioned)

	measurer.panelOK = false
	measurer.trigger = geometry.RectFromLTWH(10, 10, 40, 20)
	events.emit()

	after := c.Snapshot()
	assert.Equal(t, before.Top, after.Top)
	assert.Equal(t, before.Left, after.Left)
}

func TestZeroSizeTriggerSkipsPass(t *testing.T) {
	c, clock, measurer, _ := newTestController(Options{Trigger: TriggerHover})
	defer c.Close()

	measurer.trigger = geometry.RectFromLTWH(10, 10, 0, 0)
	c.PointerEnter()
	clock.Advance(0)

	assert.False(t, c.Snapshot().Positioned)
}

func TestCloseCancelsTimersAndDetaches(t *testing.T) {
	var changes []bool
	c, clock, _, events := newTestController(Options{
		Trigger:      TriggerHover,
		DelayOpen:    100 * time.Millisecond,
		OnOpenChange: func(open bool) { changes = append(changes, open) },
	})

	c.PointerEnter()
	c.Close()
	clock.Advance(time.Second)

	// Nothing fires after teardown.
	assert.Empty(t, changes)
	assert.Equal(t, 0, clock.pending())
	assert.Equal(t, events.subscribed, events.cancelled)
}

func TestResolvedPlacementReportedInSnapshot(t *testing.T) {
	c, clock, measurer, _ := newTestController(Options{
		Trigger:   TriggerHover,
		Placement: PlacementTop,
		Offset:    8,
	})
	defer c.Close()

	// Trigger sits at the very top: no room above the panel.
	measurer.trigger = geometry.RectFromLTWH(400, 2, 40, 20)
	c.PointerEnter()
	clock.Advance(0)

	snap := c.Snapshot()
	require.True(t, snap.Positioned)
	assert.Equal(t, PlacementBottom, snap.Placement)
}

func TestManualModeIgnoresPointerEvents(t *testing.T) {
	c, _, _, _ := newTestController(Options{Trigger: TriggerManual})
	defer c.Close()

	c.PointerEnter()
	c.Click()
	c.Focus()
	assert.Equal(t, StateClosed, c.State())

	c.SetOpen(true)
	assert.True(t, c.Snapshot().IsOpen)
	c.SetOpen(false)
	assert.False(t, c.Snapshot().IsOpen)
}

func TestFocusMode(t *testing.T) {
	c, _, _, _ := newTestController(Options{Trigger: TriggerFocus})
	defer c.Close()

	c.PointerEnter()
	assert.Equal(t, StateClosed, c.State())

	c.Focus()
	assert.Equal(t, StateOpen, c.State())
	c.Blur()
	assert.Equal(t, StateClosed, c.State())
}
