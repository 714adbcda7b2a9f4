package placement

// Options configures a placement computation.
//
// The boundary rect is not part of Options: it is measured state owned by the
// session and passed to Compute alongside the anchor and floating rects.
type Options struct {
	// Placement is the requested side and alignment before adjustment.
	Placement Placement

	// Strategy is the coordinate-space hint copied into the result.
	Strategy Strategy

	// Middleware is the ordered list of adjustment passes. An empty list
	// disables all adjustment and the base placement is used verbatim.
	Middleware []Middleware

	// Offset is the gap in pixels between the anchor and the floating
	// element along the placement axis.
	Offset float64

	// Padding is the minimum distance kept between the floating element
	// and the boundary edges when shift adjusts the position.
	Padding float64
}

// DefaultOptions returns the default configuration: bottom-start placement,
// fixed strategy, flip and shift middleware, no offset or padding.
func DefaultOptions() Options {
	return Options{
		Placement:  BottomStart,
		Strategy:   StrategyFixed,
		Middleware: DefaultMiddleware(),
	}
}

// DefaultMiddleware returns the standard adjustment pipeline: flip, then shift.
func DefaultMiddleware() []Middleware {
	return []Middleware{Flip{}, Shift{}}
}

// CanFlip reports whether the flip pass is present in the pipeline.
func (o Options) CanFlip() bool { return o.hasMiddleware("flip") }

// CanShift reports whether the shift pass is present in the pipeline.
func (o Options) CanShift() bool { return o.hasMiddleware("shift") }

func (o Options) hasMiddleware(name string) bool {
	for _, m := range o.Middleware {
		if m.Name() == name {
			return true
		}
	}
	return false
}
