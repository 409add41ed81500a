// Package popover implements the floating-panel engine behind the
// tooltip component: a pure placement calculator and a disclosure
// controller.
//
// The calculator maps a trigger rectangle, a panel size and a
// requested placement to final coordinates, flipping the placement
// away from viewport overflow when auto-placement is enabled and
// clamping the result inside an 8-unit safety margin.
//
// The controller owns the open/closed lifecycle: controlled or
// uncontrolled open state, hover/click/focus/manual trigger wiring,
// open/close delay timers, and re-running the calculator on open and
// on scroll/resize while open. Host primitives (geometry measurement,
// timers, viewport events) are consumed through small interfaces so
// the engine is independent of any particular rendering environment.
package popover
