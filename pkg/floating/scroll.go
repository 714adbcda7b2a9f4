package floating

import "github.com/matzehuels/floatkit/pkg/geom"

// ScrollState is the geometric state a scroll container reports: the total
// size of its scrollable content, the size of its visible viewport, and the
// current scroll offset. It is what the container's scroll and resize events
// carry; the bridge turns it into the boundary rect for the session.
type ScrollState struct {
	// ContentWidth, ContentHeight are the full scrollable content size.
	ContentWidth, ContentHeight float64

	// ViewportWidth, ViewportHeight are the visible dimensions.
	ViewportWidth, ViewportHeight float64

	// OffsetX, OffsetY are the current scroll position.
	OffsetX, OffsetY float64
}

// VisibleRect returns the container's visible rect in viewport coordinates,
// given the position of the container itself. This is the boundary the
// floating element must stay inside.
func (s ScrollState) VisibleRect(origin geom.Point) geom.Rect {
	return geom.Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  s.ViewportWidth,
		Height: s.ViewportHeight,
	}
}

// MaxOffsetX returns the largest valid horizontal scroll offset.
func (s ScrollState) MaxOffsetX() float64 {
	if m := s.ContentWidth - s.ViewportWidth; m > 0 {
		return m
	}
	return 0
}

// MaxOffsetY returns the largest valid vertical scroll offset.
func (s ScrollState) MaxOffsetY() float64 {
	if m := s.ContentHeight - s.ViewportHeight; m > 0 {
		return m
	}
	return 0
}
