package floating

import (
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// PointSession is a Session whose anchor is a literal coordinate rather than
// a measured element: the context-menu case, where the anchor is the cursor
// position at click time. SetAnchorPoint replaces SetAnchorRect; readiness,
// boundary handling, flip and shift all behave exactly as for an element
// anchor with a zero-size rect at the point.
type PointSession struct {
	*Session
}

// NewPointSession creates a point-anchored session.
func NewPointSession(opts placement.Options, sessionOpts ...SessionOption) *PointSession {
	return &PointSession{Session: NewSession(opts, sessionOpts...)}
}

// SetAnchorPoint stores the anchor as the zero-size rect at (x, y).
func (p *PointSession) SetAnchorPoint(x, y float64) {
	p.SetAnchorRect(geom.RectAt(geom.Point{X: x, Y: y}))
}
