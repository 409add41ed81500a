package popover

import "time"

// TriggerMode selects which host events drive the open/close lifecycle.
// Modes are mutually exclusive for the lifetime of a Controller.
type TriggerMode int

const (
	// TriggerHover opens on pointer enter and closes on pointer leave.
	TriggerHover TriggerMode = iota
	// TriggerClick toggles on click.
	TriggerClick
	// TriggerFocus opens on focus and closes on blur.
	TriggerFocus
	// TriggerManual wires no events; the caller drives the open state
	// entirely through SetOpen.
	TriggerManual
)

var triggerNames = map[TriggerMode]string{
	TriggerHover:  "hover",
	TriggerClick:  "click",
	TriggerFocus:  "focus",
	TriggerManual: "manual",
}

// String returns the trigger mode keyword.
func (t TriggerMode) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return "hover"
}

// ParseTriggerMode converts a trigger keyword into its TriggerMode.
func ParseTriggerMode(name string) (TriggerMode, bool) {
	for mode, n := range triggerNames {
		if n == name {
			return mode, true
		}
	}
	return TriggerHover, false
}

// Options configures a Controller at creation time.
type Options struct {
	// IsOpen, when non-nil, puts the controller in controlled mode:
	// the caller owns the rendered open flag and the controller only
	// reports intent through OnOpenChange. The mode is fixed for the
	// lifetime of the controller.
	IsOpen *bool
	// OnOpenChange is invoked exactly once per logical open/close
	// transition.
	OnOpenChange func(open bool)
	// DefaultIsOpen is the initial open flag in uncontrolled mode.
	DefaultIsOpen bool

	// Disabled suppresses trigger-open events. A pending close still
	// completes.
	Disabled bool

	// Placement is the requested anchor position.
	Placement Placement
	// AutoPlacement, when nil, defaults to enabled.
	AutoPlacement *bool

	Offset  float64
	OffsetX float64
	OffsetY float64

	NudgeLeft   float64
	NudgeRight  float64
	NudgeTop    float64
	NudgeBottom float64

	// Trigger selects the event wiring mode.
	Trigger TriggerMode
	// DelayOpen delays the closed-to-open transition after a
	// trigger-open event. Zero opens immediately.
	DelayOpen time.Duration
	// DelayClose delays the open-to-closed transition after a
	// trigger-close event. Zero closes immediately.
	DelayClose time.Duration
}

func (o Options) autoPlacement() bool {
	return o.AutoPlacement == nil || *o.AutoPlacement
}

func (o Options) controlled() bool {
	return o.IsOpen != nil
}

// Bool returns a pointer to b, for the pointer-typed option fields.
func Bool(b bool) *bool {
	return &b
}
