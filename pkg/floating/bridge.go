package floating

import "github.com/matzehuels/floatkit/pkg/geom"

// Scope selects which measurements a bridge notification refreshes. Scopes
// combine as a bitmask.
type Scope uint

// Notification scopes.
const (
	ScopeAnchor Scope = 1 << iota
	ScopeFloating
	ScopeBoundary

	ScopeAll = ScopeAnchor | ScopeFloating | ScopeBoundary
)

// Target is the subset of the session contract a bridge drives. Both
// *Session and *PointSession satisfy it.
type Target interface {
	SetAnchorRect(geom.Rect)
	SetFloatingRect(geom.Rect)
	SetBoundaryRect(geom.Rect)
	ClearAnchorRect()
	ClearFloatingRect()
	ClearBoundaryRect()
}

// Sources bundles the measurement sources a bridge re-reads on
// notification. Nil entries are simply never refreshed by the bridge.
type Sources struct {
	Anchor   RectSource
	Floating RectSource
	Boundary RectSource
}

// Bridge translates external "something moved or resized" notifications
// into session updates. It is deliberately dumb: every notification re-reads
// the named sources and pushes the rects unconditionally. Re-pushing
// unchanged geometry is harmless because the engine is pure, so callers can
// notify on every scroll tick without diffing. Any rate limiting (e.g.
// aligning to a display refresh) is caller policy; the bridge imposes none.
//
// A source reporting not-ok clears that measurement in the target. Before
// the element ever mounted this is a no-op; when a previously measured
// element unmounts, the session regresses out of Ready and publishes a
// not-ready result, so consumers hide the floating element rather than
// leave it pinned at a stale position.
type Bridge struct {
	target  Target
	sources Sources
}

// NewBridge creates a bridge feeding target from the given sources.
func NewBridge(target Target, sources Sources) *Bridge {
	return &Bridge{target: target, sources: sources}
}

// Notify re-reads the sources selected by scope and pushes their rects into
// the target. Nil sources are skipped; a source reporting not-ok clears the
// corresponding measurement.
func (b *Bridge) Notify(scope Scope) {
	if b.target == nil {
		return
	}
	if scope&ScopeAnchor != 0 && b.sources.Anchor != nil {
		if r, ok := b.sources.Anchor.Rect(); ok {
			b.target.SetAnchorRect(r)
		} else {
			b.target.ClearAnchorRect()
		}
	}
	if scope&ScopeFloating != 0 && b.sources.Floating != nil {
		if r, ok := b.sources.Floating.Rect(); ok {
			b.target.SetFloatingRect(r)
		} else {
			b.target.ClearFloatingRect()
		}
	}
	if scope&ScopeBoundary != 0 && b.sources.Boundary != nil {
		if r, ok := b.sources.Boundary.Rect(); ok {
			b.target.SetBoundaryRect(r)
		} else {
			b.target.ClearBoundaryRect()
		}
	}
}

// Reload refreshes every measurement. It is the bridge-level equivalent of
// Session.Reload for callers that wired sources into the bridge instead of
// the session.
func (b *Bridge) Reload() {
	b.Notify(ScopeAll)
}

// OnScroll pushes the boundary derived from a scroll container's state. The
// origin is the container's own position in viewport coordinates.
func (b *Bridge) OnScroll(state ScrollState, origin geom.Point) {
	if b.target == nil {
		return
	}
	b.target.SetBoundaryRect(state.VisibleRect(origin))
}

// Close detaches the bridge from its target. Notifications arriving after
// Close are dropped; call it before discarding the session the bridge
// feeds.
func (b *Bridge) Close() {
	b.target = nil
}
