package placement

import "github.com/matzehuels/floatkit/pkg/geom"

// State is the working position handed through the middleware pipeline. Each
// pass receives the current coordinates and placement together with the
// measured rects and may replace the triple; the rects and options are fixed
// for the whole computation.
type State struct {
	X, Y      float64
	Placement Placement

	Anchor   geom.Rect
	Floating geom.Rect
	Boundary geom.Rect
	Options  Options
}

// Middleware is a single adjustment pass in the placement pipeline. Passes
// are named variants rather than opaque closures so pipelines can be built
// from configuration and inspected in logs.
type Middleware interface {
	// Name returns the stable lowercase name of the pass ("flip", "shift").
	Name() string

	// Adjust returns the state with this pass's adjustment applied.
	Adjust(s State) State
}

// =============================================================================
// Flip
// =============================================================================

// Flip swaps the placement to the opposite side when the floating element
// does not fit on the requested side and the opposite side has strictly more
// room. The strict comparison is the anti-oscillation tie-break: when both
// sides are equally cramped the current side wins.
type Flip struct{}

// Name implements Middleware.
func (Flip) Name() string { return "flip" }

// Adjust implements Middleware. With a zero-area boundary there is nothing to
// collide with and the pass is a no-op.
func (Flip) Adjust(s State) State {
	if s.Boundary.IsEmpty() {
		return s
	}

	need := s.Floating.Height
	if !s.Placement.Side.IsVertical() {
		need = s.Floating.Width
	}

	current := availableSpace(s.Placement.Side, s.Anchor, s.Boundary, s.Options.Offset)
	opposite := availableSpace(s.Placement.Side.Opposite(), s.Anchor, s.Boundary, s.Options.Offset)

	if need > current && opposite > current {
		s.Placement = s.Placement.Opposite()
		s.X, s.Y = basePosition(s.Anchor, s.Floating, s.Placement, s.Options.Offset)
	}
	return s
}

// availableSpace returns the room between the anchor's edge and the boundary
// on the given side, after the configured offset. Negative values mean the
// anchor edge itself sits outside the boundary.
func availableSpace(side Side, anchor, boundary geom.Rect, offset float64) float64 {
	switch side {
	case SideTop:
		return anchor.MinY() - boundary.MinY() - offset
	case SideBottom:
		return boundary.MaxY() - anchor.MaxY() - offset
	case SideLeft:
		return anchor.MinX() - boundary.MinX() - offset
	default:
		return boundary.MaxX() - anchor.MaxX() - offset
	}
}

// =============================================================================
// Shift
// =============================================================================

// Shift translates the floating element along the cross-axis only, by the
// minimum amount that removes boundary overflow. The side never changes. If
// the floating element is larger than the boundary extent on that axis it is
// clamped to the boundary start and the residual overflow is accepted; the
// engine never shrinks content.
type Shift struct{}

// Name implements Middleware.
func (Shift) Name() string { return "shift" }

// Adjust implements Middleware. With a zero-area boundary the pass is a no-op.
func (Shift) Adjust(s State) State {
	if s.Boundary.IsEmpty() {
		return s
	}

	pad := s.Options.Padding
	if s.Placement.Side.IsVertical() {
		lo := s.Boundary.MinX() + pad
		hi := s.Boundary.MaxX() - pad - s.Floating.Width
		s.X = clamp(s.X, lo, hi)
	} else {
		lo := s.Boundary.MinY() + pad
		hi := s.Boundary.MaxY() - pad - s.Floating.Height
		s.Y = clamp(s.Y, lo, hi)
	}
	return s
}

// clamp restricts v to [lo, hi], with lo winning when the interval is
// inverted (floating element larger than the boundary).
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
