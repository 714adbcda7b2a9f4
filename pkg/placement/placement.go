// Package placement computes where a floating element goes relative to its
// anchor.
//
// The engine is a pure function: given the anchor rect, the floating element's
// rect, the boundary rect of the owning scroll container, and a set of
// options, Compute returns the final coordinates and resolved placement. A
// middleware pipeline (flip, shift) adjusts the base position so the floating
// element stays inside the boundary.
//
// Nothing in this package holds state. Sessions, subscriptions, and the
// measurement protocol live in pkg/floating.
package placement

import (
	"strings"

	"github.com/matzehuels/floatkit/pkg/errors"
)

// =============================================================================
// Side
// =============================================================================

// Side is the primary side of a placement: which edge of the anchor the
// floating element attaches to.
type Side int

// The four placement sides.
const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the side across the anchor (top↔bottom, left↔right).
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// IsVertical reports whether the side is top or bottom. Vertical sides place
// along the Y axis and align along X; horizontal sides are the mirror.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// =============================================================================
// Alignment
// =============================================================================

// Alignment positions the floating element along the cross-axis of its side.
type Alignment int

// Cross-axis alignments.
const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "unknown"
}

// =============================================================================
// Placement
// =============================================================================

// Placement is a side plus a cross-axis alignment. There are twelve valid
// values; only equality is meaningful, there is no ordering.
type Placement struct {
	Side  Side
	Align Alignment
}

// The twelve placements.
var (
	TopStart     = Placement{SideTop, AlignStart}
	TopCenter    = Placement{SideTop, AlignCenter}
	TopEnd       = Placement{SideTop, AlignEnd}
	BottomStart  = Placement{SideBottom, AlignStart}
	BottomCenter = Placement{SideBottom, AlignCenter}
	BottomEnd    = Placement{SideBottom, AlignEnd}
	LeftStart    = Placement{SideLeft, AlignStart}
	LeftCenter   = Placement{SideLeft, AlignCenter}
	LeftEnd      = Placement{SideLeft, AlignEnd}
	RightStart   = Placement{SideRight, AlignStart}
	RightCenter  = Placement{SideRight, AlignCenter}
	RightEnd     = Placement{SideRight, AlignEnd}
)

// String renders the placement in "side-alignment" form, e.g. "bottom-start".
func (p Placement) String() string {
	return p.Side.String() + "-" + p.Align.String()
}

// Opposite returns the placement with the side flipped and the alignment kept.
func (p Placement) Opposite() Placement {
	return Placement{Side: p.Side.Opposite(), Align: p.Align}
}

// Parse parses a placement in "side-alignment" form. A bare side name (e.g.
// "bottom") is accepted as shorthand for center alignment.
func Parse(s string) (Placement, error) {
	side, align, hasAlign := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")

	p := Placement{Align: AlignCenter}
	switch side {
	case "top":
		p.Side = SideTop
	case "bottom":
		p.Side = SideBottom
	case "left":
		p.Side = SideLeft
	case "right":
		p.Side = SideRight
	default:
		return Placement{}, errors.New(errors.ErrCodeInvalidPlacement, "unknown placement %q", s)
	}

	if hasAlign {
		switch align {
		case "start":
			p.Align = AlignStart
		case "center":
			p.Align = AlignCenter
		case "end":
			p.Align = AlignEnd
		default:
			return Placement{}, errors.New(errors.ErrCodeInvalidPlacement, "unknown alignment in placement %q", s)
		}
	}

	return p, nil
}

// =============================================================================
// Strategy
// =============================================================================

// Strategy names the CSS-equivalent coordinate space the emitted position is
// expressed in. It is a pass-through hint for the rendering collaborator; the
// engine never interprets it.
type Strategy string

// Positioning strategies.
const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAbsolute:
		return StrategyAbsolute, nil
	case StrategyFixed:
		return StrategyFixed, nil
	}
	return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", s)
}
