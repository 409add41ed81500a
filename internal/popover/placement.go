package popover

import "fmt"

// Side identifies which edge of the trigger the panel attaches to.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Align identifies how the panel lines up along the trigger's edge.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Placement is the requested or resolved position of the panel relative
// to the trigger: one of four sides, each centered or aligned to the
// trigger's leading/trailing edge.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementTopStart
	PlacementTopEnd
	PlacementBottom
	PlacementBottomStart
	PlacementBottomEnd
	PlacementLeft
	PlacementLeftStart
	PlacementLeftEnd
	PlacementRight
	PlacementRightStart
	PlacementRightEnd
)

var placementNames = map[Placement]string{
	PlacementTop:         "top",
	PlacementTopStart:    "top-start",
	PlacementTopEnd:      "top-end",
	PlacementBottom:      "bottom",
	PlacementBottomStart: "bottom-start",
	PlacementBottomEnd:   "bottom-end",
	PlacementLeft:        "left",
	PlacementLeftStart:   "left-start",
	PlacementLeftEnd:     "left-end",
	PlacementRight:       "right",
	PlacementRightStart:  "right-start",
	PlacementRightEnd:    "right-end",
}

var placementValues = func() map[string]Placement {
	m := make(map[string]Placement, len(placementNames))
	for p, name := range placementNames {
		m[name] = p
	}
	return m
}()

// String returns the canonical keyword for the placement.
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// ParsePlacement converts a placement keyword (e.g. "bottom-end") into
// its Placement value.
func ParsePlacement(name string) (Placement, error) {
	if p, ok := placementValues[name]; ok {
		return p, nil
	}
	return PlacementTop, fmt.Errorf("unknown placement %q", name)
}

// Side returns the trigger edge the placement attaches to.
func (p Placement) Side() Side {
	switch p {
	case PlacementTop, PlacementTopStart, PlacementTopEnd:
		return SideTop
	case PlacementBottom, PlacementBottomStart, PlacementBottomEnd:
		return SideBottom
	case PlacementLeft, PlacementLeftStart, PlacementLeftEnd:
		return SideLeft
	default:
		return SideRight
	}
}

// Align returns the alignment along the attached edge.
func (p Placement) Align() Align {
	switch p {
	case PlacementTopStart, PlacementBottomStart, PlacementLeftStart, PlacementRightStart:
		return AlignStart
	case PlacementTopEnd, PlacementBottomEnd, PlacementLeftEnd, PlacementRightEnd:
		return AlignEnd
	default:
		return AlignCenter
	}
}

// IsHorizontal reports whether the placement attaches to the trigger's
// left or right edge.
func (p Placement) IsHorizontal() bool {
	s := p.Side()
	return s == SideLeft || s == SideRight
}

// IsVertical reports whether the placement attaches to the trigger's
// top or bottom edge.
func (p Placement) IsVertical() bool {
	s := p.Side()
	return s == SideTop || s == SideBottom
}

func withSide(side Side, align Align) Placement {
	base := map[Side]Placement{
		SideTop:    PlacementTop,
		SideBottom: PlacementBottom,
		SideLeft:   PlacementLeft,
		SideRight:  PlacementRight,
	}[side]

	switch align {
	case AlignStart:
		return base + 1
	case AlignEnd:
		return base + 2
	default:
		return base
	}
}

// flipHorizontal swaps the left/right side keyword, preserving alignment.
// Placements attached to the top or bottom edge are returned unchanged.
func (p Placement) flipHorizontal() Placement {
	switch p.Side() {
	case SideLeft:
		return withSide(SideRight, p.Align())
	case SideRight:
		return withSide(SideLeft, p.Align())
	default:
		return p
	}
}

// flipVertical swaps the top/bottom side keyword, preserving alignment.
// Placements attached to the left or right edge are returned unchanged.
func (p Placement) flipVertical() Placement {
	switch p.Side() {
	case SideTop:
		return withSide(SideBottom, p.Align())
	case SideBottom:
		return withSide(SideTop, p.Align())
	default:
		return p
	}
}

// Placements lists all twelve placement variants in declaration order.
func Placements() []Placement {
	return []Placement{
		PlacementTop, PlacementTopStart, PlacementTopEnd,
		PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
		PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
		PlacementRight, PlacementRightStart, PlacementRightEnd,
	}
}
