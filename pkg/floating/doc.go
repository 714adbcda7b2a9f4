// Package floating implements the reactive measurement protocol that feeds
// the placement engine.
//
// A Session is bound to one anchor/floating pair. It owns the latest measured
// rects, recomputes the placement whenever a measurement changes, and
// publishes the result to subscribers. A Bridge translates external resize,
// scroll, and mutation notifications from the rendering and scroll-container
// collaborators into session updates. A PointSession anchors to a literal
// coordinate instead of a measured element, for cursor-positioned menus.
//
// Everything is single-threaded and synchronous: a measurement update runs
// the full placement computation to completion before returning, and
// subscribers always observe the latest fully-computed result. Sessions are
// exclusively owned by the UI element pair they serve and are not safe for
// concurrent use; serialize access on the event loop that owns them.
//
// # Usage
//
//	session := floating.NewSession(placement.DefaultOptions())
//	cancel := session.Subscribe(func(r placement.Result) {
//	    // apply transform, toggle visibility on r.Ready
//	})
//	defer cancel()
//
//	session.SetBoundaryRect(viewport)
//	session.SetAnchorRect(button)
//	session.SetFloatingRect(menu) // session becomes ready, result published
//
// When a measured element unmounts, clear its measurement
// (ClearFloatingRect, or a source reporting not-ok during Reload): the
// session regresses and publishes a not-ready result so the consumer hides
// the element instead of leaving it at a stale position.
package floating
