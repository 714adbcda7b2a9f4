package placement

import (
	"time"

	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/observability"
)

// Result is a resolved position for a floating element.
type Result struct {
	// X, Y are the final viewport-relative coordinates of the floating
	// element's top-left corner.
	X, Y float64

	// Placement is the final placement after middleware adjustment. It
	// differs from the requested one when flip engaged.
	Placement Placement

	// Strategy is copied unmodified from the options.
	Strategy Strategy

	// Ready is false until the owning session has measured both the anchor
	// and the floating element. Consumers must not show the element at a
	// not-ready position; the conventional treatment is opacity 0.
	Ready bool
}

// Compute resolves the position of a floating element.
//
// The three rects must be in the same viewport-relative coordinate space.
// Rects with negative dimensions are clamped to zero area. The computation is
// deterministic: identical inputs produce identical results on every call.
//
// A zero-area boundary disables collision adjustment; the base placement is
// returned verbatim.
func Compute(anchor, floating, boundary geom.Rect, opts Options) Result {
	start := time.Now()
	observability.Engine().OnComputeStart(opts.Placement.String())

	anchor = anchor.Canon()
	floating = floating.Canon()
	boundary = boundary.Canon()

	if opts.Strategy == "" {
		opts.Strategy = StrategyFixed
	}

	x, y := basePosition(anchor, floating, opts.Placement, opts.Offset)
	s := State{
		X:         x,
		Y:         y,
		Placement: opts.Placement,
		Anchor:    anchor,
		Floating:  floating,
		Boundary:  boundary,
		Options:   opts,
	}

	for _, m := range opts.Middleware {
		s = m.Adjust(s)
	}

	observability.Engine().OnComputeComplete(opts.Placement.String(), s.Placement.String(), time.Since(start))

	return Result{
		X:         s.X,
		Y:         s.Y,
		Placement: s.Placement,
		Strategy:  opts.Strategy,
		Ready:     true,
	}
}

// basePosition aligns the floating rect's edge to the anchor's opposite edge
// on the placement side, offset along the placement axis, and aligns along
// the cross-axis per the placement's alignment.
func basePosition(anchor, floating geom.Rect, p Placement, offset float64) (x, y float64) {
	if p.Side.IsVertical() {
		switch p.Align {
		case AlignStart:
			x = anchor.MinX()
		case AlignCenter:
			x = anchor.CenterX() - floating.Width/2
		case AlignEnd:
			x = anchor.MaxX() - floating.Width
		}
		if p.Side == SideTop {
			y = anchor.MinY() - floating.Height - offset
		} else {
			y = anchor.MaxY() + offset
		}
		return x, y
	}

	switch p.Align {
	case AlignStart:
		y = anchor.MinY()
	case AlignCenter:
		y = anchor.CenterY() - floating.Height/2
	case AlignEnd:
		y = anchor.MaxY() - floating.Height
	}
	if p.Side == SideLeft {
		x = anchor.MinX() - floating.Width - offset
	} else {
		x = anchor.MaxX() + offset
	}
	return x, y
}
