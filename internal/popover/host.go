package popover

import (
	"time"

	"github.com/glintui/glint/internal/geometry"
)

// Measurer reads geometry from the host rendering environment. Every
// positioning pass takes fresh snapshots; nothing is cached between
// passes.
type Measurer interface {
	// TriggerRect returns the trigger's bounding rectangle in viewport
	// coordinates. ok is false when the trigger is not yet mounted.
	TriggerRect() (rect geometry.Rect, ok bool)
	// PanelSize returns the panel's natural, unconstrained size. ok is
	// false when the panel is not yet mounted.
	PanelSize() (size geometry.Size, ok bool)
	// Viewport returns the current viewport size.
	Viewport() geometry.Size
	// ScrollOffset returns the current document scroll offset.
	ScrollOffset() geometry.Offset
}

// Timer is a pending single-shot callback that can be stopped before
// it fires.
type Timer interface {
	Stop()
}

// Clock schedules single-shot cancellable timers. The production
// implementation wraps time.AfterFunc; tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ViewportEvents delivers scroll and resize signals from the host.
// Subscribe returns a cancel function; after cancel returns, fn is
// never invoked again.
type ViewportEvents interface {
	Subscribe(fn func()) (cancel func())
}

// Host bundles the environment primitives a Controller consumes. Only
// Measurer is required for positioning; a nil Clock falls back to the
// system clock and a nil Events source disables scroll/resize
// tracking.
type Host struct {
	Measurer Measurer
	Clock    Clock
	Events   ViewportEvents
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() {
	s.t.Stop()
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

// SystemClock returns a Clock backed by time.AfterFunc.
func SystemClock() Clock {
	return systemClock{}
}
