package popover

import "sync"

// State describes where the disclosure lifecycle currently is. Opening
// and Closing mean the corresponding delay timer is pending.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Snapshot is the render-time view of a controller: the open flag, the
// placement actually resolved by the last positioning pass, and the
// computed document-relative coordinates. Positioned is false until a
// pass has succeeded.
type Snapshot struct {
	IsOpen     bool
	Placement  Placement
	Top        float64
	Left       float64
	Positioned bool
}

// Controller owns the open/close lifecycle of a single floating panel:
// trigger-mode event wiring, open/close delay timers, and re-running
// the placement calculation while the panel is open. Each instance
// owns exactly one open-timer slot and one close-timer slot plus its
// own viewport subscription, all released by Close.
type Controller struct {
	mu   sync.Mutex
	opts Options
	host Host

	state State
	// openFlag is the rendered open state in uncontrolled mode.
	openFlag bool
	// extOpen mirrors the caller-supplied flag in controlled mode.
	extOpen bool

	openTimer    Timer
	closeTimer   Timer
	measureTimer Timer
	unsubscribe  func()

	resolved   Placement
	top, left  float64
	positioned bool

	torn bool
}

// NewController creates a controller for a single trigger/panel pair.
// Whether the controller is controlled or uncontrolled is fixed here,
// by whether opts.IsOpen is non-nil, and never re-evaluated.
func NewController(opts Options, host Host) *Controller {
	if host.Clock == nil {
		host.Clock = SystemClock()
	}

	c := &Controller{
		opts:     opts,
		host:     host,
		resolved: opts.Placement,
	}

	if opts.controlled() {
		c.extOpen = *opts.IsOpen
		if c.extOpen {
			c.state = StateOpen
		}
	} else {
		c.openFlag = opts.DefaultIsOpen
		if c.openFlag {
			c.state = StateOpen
		}
	}

	if c.renderedOpen() {
		c.attachLocked()
		c.scheduleMeasureLocked()
	}

	return c
}

// Close tears the controller down: any pending timer is cancelled
// synchronously and the viewport subscription is released. No callback
// fires after Close returns.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.torn = true
	c.stopTimersLocked()
	c.detachLocked()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the current render-time view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		IsOpen:     c.renderedOpen(),
		Placement:  c.resolved,
		Top:        c.top,
		Left:       c.left,
		Positioned: c.positioned,
	}
}

// PointerEnter handles a pointer entering the trigger. Only hover mode
// reacts.
func (c *Controller) PointerEnter() {
	if c.opts.Trigger != TriggerHover {
		return
	}
	c.run((*Controller).requestOpenLocked)
}

// PointerLeave handles a pointer leaving the trigger. Only hover mode
// reacts.
func (c *Controller) PointerLeave() {
	if c.opts.Trigger != TriggerHover {
		return
	}
	c.run((*Controller).requestCloseLocked)
}

// Click handles a click on the trigger. Only click mode reacts; the
// open state toggles.
func (c *Controller) Click() {
	if c.opts.Trigger != TriggerClick {
		return
	}
	c.run(func(c *Controller) func() {
		if c.state == StateOpen || c.state == StateOpening {
			return c.requestCloseLocked()
		}
		return c.requestOpenLocked()
	})
}

// Focus handles the trigger receiving focus. Only focus mode reacts.
func (c *Controller) Focus() {
	if c.opts.Trigger != TriggerFocus {
		return
	}
	c.run((*Controller).requestOpenLocked)
}

// Blur handles the trigger losing focus. Only focus mode reacts.
func (c *Controller) Blur() {
	if c.opts.Trigger != TriggerFocus {
		return
	}
	c.run((*Controller).requestCloseLocked)
}

// SetOpen drives the open state directly. In controlled mode it is how
// the caller communicates the externally owned flag; the internal
// state machine is bypassed and no change callback fires. In
// uncontrolled mode it opens or closes immediately, cancelling any
// pending delay.
func (c *Controller) SetOpen(open bool) {
	c.run(func(c *Controller) func() {
		if c.opts.controlled() {
			was := c.extOpen
			c.extOpen = open
			if open && !was {
				c.state = StateOpen
				c.attachLocked()
				c.scheduleMeasureLocked()
			} else if !open && was {
				c.state = StateClosed
				c.stopTimersLocked()
				c.detachLocked()
			}
			return nil
		}

		if open && c.state == StateClosing {
			// The panel never logically closed; cancel the pending close.
			c.stopCloseTimerLocked()
			c.state = StateOpen
			return nil
		}
		c.stopTimersLocked()
		if open && c.state != StateOpen {
			return c.toOpenLocked()
		}
		if !open && (c.state == StateOpen || c.state == StateClosing) {
			return c.toClosedLocked()
		}
		c.state = stateForFlag(open)
		return nil
	})
}

// SetDisabled updates the disabled flag. Disabling suppresses future
// trigger-open events; a close already pending still completes.
func (c *Controller) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Disabled = disabled
}

// Reposition runs a positioning pass if the panel is rendered open.
// Measurement failure is a silent no-op: previous coordinates are
// retained rather than producing unusable ones.
func (c *Controller) Reposition() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.repositionLocked()
}

func (c *Controller) repositionLocked() {
	if c.torn || !c.renderedOpen() || c.host.Measurer == nil {
		return
	}

	trigger, ok := c.host.Measurer.TriggerRect()
	if !ok || trigger.IsEmpty() {
		return
	}
	panel, ok := c.host.Measurer.PanelSize()
	if !ok || panel.IsEmpty() {
		return
	}

	pos := Compute(Input{
		Trigger:       trigger,
		Panel:         panel,
		Viewport:      c.host.Measurer.Viewport(),
		Scroll:        c.host.Measurer.ScrollOffset(),
		Placement:     c.opts.Placement,
		AutoPlacement: c.opts.autoPlacement(),
		Offset:        c.opts.Offset,
		OffsetX:       c.opts.OffsetX,
		OffsetY:       c.opts.OffsetY,
		NudgeLeft:     c.opts.NudgeLeft,
		NudgeRight:    c.opts.NudgeRight,
		NudgeTop:      c.opts.NudgeTop,
		NudgeBottom:   c.opts.NudgeBottom,
	})

	c.top = pos.Top
	c.left = pos.Left
	c.resolved = pos.Resolved
	c.positioned = true
}

// run executes fn under the lock and fires the change callback it
// returns, if any, after the lock is released.
func (c *Controller) run(fn func(*Controller) func()) {
	c.mu.Lock()
	if c.torn {
		c.mu.Unlock()
		return
	}
	notify := fn(c)
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// requestOpenLocked handles a trigger-open event. Disabled suppresses
// it entirely, including the cancellation of a pending close.
func (c *Controller) requestOpenLocked() func() {
	if c.opts.Disabled {
		return nil
	}

	switch c.state {
	case StateClosing:
		// The panel never logically closed; cancel the pending close.
		c.stopCloseTimerLocked()
		c.state = StateOpen
		return nil
	case StateOpen, StateOpening:
		return nil
	default: // StateClosed
		c.stopCloseTimerLocked()
		if c.opts.DelayOpen == 0 {
			return c.toOpenLocked()
		}
		c.state = StateOpening
		c.openTimer = c.host.Clock.AfterFunc(c.opts.DelayOpen, c.handleOpenTimer)
		return nil
	}
}

func (c *Controller) requestCloseLocked() func() {
	switch c.state {
	case StateOpening:
		// Close arrived before the open timer fired: the panel never
		// opened and no open callback fires.
		c.stopOpenTimerLocked()
		c.state = StateClosed
		return nil
	case StateClosed, StateClosing:
		return nil
	default: // StateOpen
		c.stopOpenTimerLocked()
		if c.opts.DelayClose == 0 {
			return c.toClosedLocked()
		}
		c.state = StateClosing
		c.closeTimer = c.host.Clock.AfterFunc(c.opts.DelayClose, c.handleCloseTimer)
		return nil
	}
}

func (c *Controller) handleOpenTimer() {
	c.run(func(c *Controller) func() {
		c.openTimer = nil
		if c.state != StateOpening {
			return nil
		}
		return c.toOpenLocked()
	})
}

func (c *Controller) handleCloseTimer() {
	c.run(func(c *Controller) func() {
		c.closeTimer = nil
		if c.state != StateClosing {
			return nil
		}
		return c.toClosedLocked()
	})
}

// toOpenLocked performs the logical transition to open and returns the
// change notification. In controlled mode only the callback fires; the
// rendered flag stays under the caller's control.
func (c *Controller) toOpenLocked() func() {
	c.state = StateOpen
	if !c.opts.controlled() {
		c.openFlag = true
		c.attachLocked()
		c.scheduleMeasureLocked()
	}
	return c.notify(true)
}

func (c *Controller) toClosedLocked() func() {
	c.state = StateClosed
	if !c.opts.controlled() {
		c.openFlag = false
		c.stopMeasureTimerLocked()
		c.detachLocked()
	}
	return c.notify(false)
}

func (c *Controller) notify(open bool) func() {
	cb := c.opts.OnOpenChange
	if cb == nil {
		return nil
	}
	return func() { cb(open) }
}

func (c *Controller) renderedOpen() bool {
	if c.opts.controlled() {
		return c.extOpen
	}
	return c.openFlag
}

// attachLocked subscribes to scroll/resize signals. Listeners exist
// only while the panel is rendered open.
func (c *Controller) attachLocked() {
	if c.unsubscribe != nil || c.host.Events == nil {
		return
	}
	c.unsubscribe = c.host.Events.Subscribe(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.repositionLocked()
	})
}

func (c *Controller) detachLocked() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// scheduleMeasureLocked defers the first positioning pass one tick so
// the panel's natural size can be measured after it mounts.
func (c *Controller) scheduleMeasureLocked() {
	c.stopMeasureTimerLocked()
	c.measureTimer = c.host.Clock.AfterFunc(0, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.measureTimer = nil
		c.repositionLocked()
	})
}

func (c *Controller) stopTimersLocked() {
	c.stopOpenTimerLocked()
	c.stopCloseTimerLocked()
	c.stopMeasureTimerLocked()
}

func (c *Controller) stopOpenTimerLocked() {
	if c.openTimer != nil {
		c.openTimer.Stop()
		c.openTimer = nil
	}
}

func (c *Controller) stopCloseTimerLocked() {
	if c.closeTimer != nil {
		c.closeTimer.Stop()
		c.closeTimer = nil
	}
}

func (c *Controller) stopMeasureTimerLocked() {
	if c.measureTimer != nil {
		c.measureTimer.Stop()
		c.measureTimer = nil
	}
}

func stateForFlag(open bool) State {
	if open {
		return StateOpen
	}
	return StateClosed
}
