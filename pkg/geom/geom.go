// Package geom provides the rectangle primitives used by the placement engine.
//
// All values are in a single viewport-relative coordinate space with the
// origin at the top-left corner and Y growing downward, matching what layout
// measurement collaborators report. Everything here is a pure value
// computation: no state, no side effects, no error conditions. Rects with
// negative width or height are clamped to zero area before use rather than
// rejected.
package geom

// Rect is an axis-aligned rectangle. It is an immutable value: measurement
// updates replace a Rect wholesale, they never patch individual fields.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Point is a position in the same coordinate space as Rect.
type Point struct {
	X, Y float64
}

// RectAt returns the zero-size rect located at p. A zero-area rect is a
// valid measurement (a point anchor), not an unmeasured one.
func RectAt(p Point) Rect {
	return Rect{X: p.X, Y: p.Y}
}

// Canon returns r with negative width and height clamped to zero.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// MinX returns the left edge of the rect.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge of the rect.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// IsEmpty reports whether the rect has zero area.
func (r Rect) IsEmpty() bool {
	r = r.Canon()
	return r.Width == 0 || r.Height == 0
}

// Overlap reports whether a and b share any interior area. Rects that only
// touch along an edge do not overlap.
func Overlap(a, b Rect) bool {
	a, b = a.Canon(), b.Canon()
	return a.MinX() < b.MaxX() && b.MinX() < a.MaxX() &&
		a.MinY() < b.MaxY() && b.MinY() < a.MaxY()
}

// Contains reports whether r lies entirely within boundary, edges included.
func Contains(boundary, r Rect) bool {
	boundary, r = boundary.Canon(), r.Canon()
	return r.MinX() >= boundary.MinX() && r.MaxX() <= boundary.MaxX() &&
		r.MinY() >= boundary.MinY() && r.MaxY() <= boundary.MaxY()
}

// OverflowEdges holds the signed distance a rect protrudes past each edge of
// a boundary. Positive values mean the rect overflows on that side; negative
// values are the remaining slack.
type OverflowEdges struct {
	Top, Right, Bottom, Left float64
}

// Overflow returns how far r protrudes past each edge of boundary.
func Overflow(r, boundary Rect) OverflowEdges {
	r, boundary = r.Canon(), boundary.Canon()
	return OverflowEdges{
		Top:    boundary.MinY() - r.MinY(),
		Right:  r.MaxX() - boundary.MaxX(),
		Bottom: r.MaxY() - boundary.MaxY(),
		Left:   boundary.MinX() - r.MinX(),
	}
}

// Any reports whether the rect overflows on at least one side.
func (o OverflowEdges) Any() bool {
	return o.Top > 0 || o.Right > 0 || o.Bottom > 0 || o.Left > 0
}
