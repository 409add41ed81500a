package popover

import (
	"github.com/glintui/glint/internal/geometry"
)

// viewportMargin is the safety gap kept between the panel and the
// viewport edge by the final clamp.
const viewportMargin = 8

// Input collects everything a positioning pass needs. Rectangles are
// viewport-relative snapshots taken at calculation time.
type Input struct {
	// Trigger is the bounding rectangle of the anchor element.
	Trigger geometry.Rect
	// Panel is the natural, unconstrained size of the floating panel.
	Panel geometry.Size
	// Viewport is the current viewport size.
	Viewport geometry.Size
	// Scroll converts the result from viewport-relative to
	// document-relative coordinates.
	Scroll geometry.Offset

	// Placement is the requested anchor position.
	Placement Placement
	// AutoPlacement substitutes the mirrored placement when the
	// requested one would overflow the viewport.
	AutoPlacement bool

	// Offset is the gap between trigger and panel along the primary axis.
	Offset float64
	// OffsetX and OffsetY are fine-tuning shifts applied after
	// placement resolution.
	OffsetX float64
	OffsetY float64

	// Nudges are unconditional pixel adjustments applied after
	// placement resolution. They never participate in overflow
	// detection.
	NudgeLeft   float64
	NudgeRight  float64
	NudgeTop    float64
	NudgeBottom float64
}

// Position is the outcome of a positioning pass. Top and Left are
// document-relative. Requested and Resolved are tracked separately so
// callers can tell whether auto-placement substituted an alternate.
type Position struct {
	Top       float64
	Left      float64
	Requested Placement
	Resolved  Placement
}

// Compute maps an Input to final panel coordinates and the placement
// actually used. It is a pure function: no state is carried between
// calls and identical inputs produce identical outputs.
func Compute(in Input) Position {
	resolved := in.Placement
	top, left := candidate(in, resolved)

	// Overflow is tested against the raw candidate, before offsets and
	// nudges are applied. Each axis keyword flips at most once per
	// pass; the recomputed coordinates are used without re-testing.
	if in.AutoPlacement {
		flipped := resolved
		if resolved.IsHorizontal() && (left < 0 || left+in.Panel.Width > in.Viewport.Width) {
			flipped = flipped.flipHorizontal()
		}
		if resolved.IsVertical() && (top < 0 || top+in.Panel.Height > in.Viewport.Height) {
			flipped = flipped.flipVertical()
		}
		if flipped != resolved {
			resolved = flipped
			top, left = candidate(in, resolved)
		}
	}

	left += in.OffsetX
	top += in.OffsetY
	left += in.NudgeRight - in.NudgeLeft
	top += in.NudgeBottom - in.NudgeTop

	// The clamp is unconditional: it runs even with auto-placement off
	// and even when nudges pushed the panel out of bounds. When the
	// panel exceeds the viewport the lower bound wins.
	left = geometry.Clamp(left, viewportMargin, in.Viewport.Width-in.Panel.Width-viewportMargin)
	top = geometry.Clamp(top, viewportMargin, in.Viewport.Height-in.Panel.Height-viewportMargin)

	return Position{
		Top:       top + in.Scroll.Y,
		Left:      left + in.Scroll.X,
		Requested: in.Placement,
		Resolved:  resolved,
	}
}

// candidate computes the raw viewport-relative coordinates for a
// placement, before auto-placement, offsets, nudges and clamping.
func candidate(in Input, p Placement) (top, left float64) {
	trig := in.Trigger

	switch p.Side() {
	case SideTop:
		top = trig.Top - in.Panel.Height - in.Offset
		left = alignCross(p.Align(), trig.Left, trig.Width, in.Panel.Width)
	case SideBottom:
		top = trig.Bottom() + in.Offset
		left = alignCross(p.Align(), trig.Left, trig.Width, in.Panel.Width)
	case SideLeft:
		left = trig.Left - in.Panel.Width - in.Offset
		top = alignCross(p.Align(), trig.Top, trig.Height, in.Panel.Height)
	case SideRight:
		left = trig.Right() + in.Offset
		top = alignCross(p.Align(), trig.Top, trig.Height, in.Panel.Height)
	}
	return top, left
}

// alignCross positions the panel along the trigger edge it is attached
// to: centered, or flush with the trigger's leading/trailing edge.
func alignCross(a Align, triggerStart, triggerExtent, panelExtent float64) float64 {
	switch a {
	case AlignStart:
		return triggerStart
	case AlignEnd:
		return triggerStart + triggerExtent - panelExtent
	default:
		return triggerStart + triggerExtent/2 - panelExtent/2
	}
}
