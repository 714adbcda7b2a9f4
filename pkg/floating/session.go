package floating

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/floatkit/pkg/errors"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/observability"
	"github.com/matzehuels/floatkit/pkg/placement"
)

// Measurement kinds reported to session hooks.
const (
	measureAnchor   = "anchor"
	measureFloating = "floating"
	measureBoundary = "boundary"
)

// Session tracks one anchor/floating pair. It is the single owner of the
// three measured rects and of the derived result: no other component retains
// its own copy. Every measurement update that leaves the session Ready runs
// the placement engine synchronously and publishes the new result to all
// subscribers before returning.
type Session struct {
	id     string
	logger *log.Logger
	opts   placement.Options

	anchor      geom.Rect
	floating    geom.Rect
	boundary    geom.Rect
	hasAnchor   bool
	hasFloating bool
	hasBoundary bool

	anchorSrc   RectSource
	floatingSrc RectSource
	boundarySrc RectSource

	state  State
	result placement.Result

	subs    map[int]func(placement.Result)
	nextSub int
	closed  bool
}

// SessionOption configures a Session at creation time.
type SessionOption func(*Session)

// WithLogger attaches a logger; the session logs placement updates at debug
// level.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithAnchorSource sets the source Reload re-reads the anchor rect from.
func WithAnchorSource(src RectSource) SessionOption {
	return func(s *Session) { s.anchorSrc = src }
}

// WithFloatingSource sets the source Reload re-reads the floating rect from.
func WithFloatingSource(src RectSource) SessionOption {
	return func(s *Session) { s.floatingSrc = src }
}

// WithBoundarySource sets the source Reload re-reads the boundary rect from.
func WithBoundarySource(src RectSource) SessionOption {
	return func(s *Session) { s.boundarySrc = src }
}

// NewSession creates a session with the given placement options.
func NewSession(opts placement.Options, sessionOpts ...SessionOption) *Session {
	s := &Session{
		id:   uuid.NewString(),
		opts: opts,
		subs: make(map[int]func(placement.Result)),
	}
	for _, opt := range sessionOpts {
		opt(s)
	}
	return s
}

// ID returns the session's unique identifier, used to correlate hook events
// and log lines.
func (s *Session) ID() string { return s.id }

// State returns the current measurement lifecycle state.
func (s *Session) State() State { return s.state }

// Result returns the most recently published result. Before the session is
// Ready the zero result is returned with Ready=false; consumers must treat
// it as "measuring" and keep the element hidden.
func (s *Session) Result() placement.Result { return s.result }

// ResultIfReady returns the current result, or ErrCodeNotReady while the
// session is still measuring. It is the strict accessor for call sites that
// must not act on a hidden position; Result is the lenient one.
func (s *Session) ResultIfReady() (placement.Result, error) {
	if s.state != StateReady {
		return placement.Result{}, errors.New(errors.ErrCodeNotReady,
			"session %s is %s", s.id, s.state)
	}
	return s.result, nil
}

// Options returns the current placement options.
func (s *Session) Options() placement.Options { return s.opts }

// SetOptions replaces the configuration. If the session is Ready the result
// is recomputed immediately with the stored rects.
func (s *Session) SetOptions(opts placement.Options) {
	s.opts = opts
	if s.state == StateReady {
		s.recompute()
	}
}

// SetAnchorRect stores a new anchor measurement. Zero-area rects are valid
// (point anchors); negative dimensions are clamped to zero.
func (s *Session) SetAnchorRect(r geom.Rect) {
	s.anchor = r.Canon()
	s.hasAnchor = true
	observability.Session().OnMeasure(s.id, measureAnchor)
	s.advance()
}

// SetFloatingRect stores a new measurement of the floating element.
func (s *Session) SetFloatingRect(r geom.Rect) {
	s.floating = r.Canon()
	s.hasFloating = true
	observability.Session().OnMeasure(s.id, measureFloating)
	s.advance()
}

// SetBoundaryRect stores a new boundary measurement, typically the scroll
// container's visible rect. A session without a boundary measurement
// computes with a zero-area boundary, which disables collision adjustment
// until the container reports in.
func (s *Session) SetBoundaryRect(r geom.Rect) {
	s.boundary = r.Canon()
	s.hasBoundary = true
	observability.Session().OnMeasure(s.id, measureBoundary)
	s.advance()
}

// ClearAnchorRect discards the anchor measurement, typically because the
// anchor element unmounted. A Ready session regresses and publishes a
// not-ready result so subscribers hide the floating element instead of
// showing it at a stale position.
func (s *Session) ClearAnchorRect() {
	s.hasAnchor = false
	s.advance()
}

// ClearFloatingRect discards the floating element's measurement. A Ready
// session regresses the same way as for a cleared anchor.
func (s *Session) ClearFloatingRect() {
	s.hasFloating = false
	s.advance()
}

// ClearBoundaryRect discards the boundary measurement. Readiness is
// unaffected; subsequent results are computed without collision adjustment.
func (s *Session) ClearBoundaryRect() {
	s.hasBoundary = false
	s.advance()
}

// Reload re-reads all configured measurement sources and recomputes, even if
// no change notification fired. It covers layout changes the observation
// bridge cannot detect, such as content loading after mount. The result is
// published once, after all sources have been read.
//
// A configured source that reports not-ok clears its measurement: when the
// anchor or floating element has unmounted, the session regresses out of
// Ready and publishes a not-ready result.
//
// Reload returns ErrCodeNoSource if the session was created without any
// measurement sources.
func (s *Session) Reload() error {
	if s.anchorSrc == nil && s.floatingSrc == nil && s.boundarySrc == nil {
		return errors.New(errors.ErrCodeNoSource, "session %s has no measurement sources", s.id)
	}

	if s.anchorSrc != nil {
		if r, ok := s.anchorSrc.Rect(); ok {
			s.anchor = r.Canon()
			s.hasAnchor = true
			observability.Session().OnMeasure(s.id, measureAnchor)
		} else {
			s.hasAnchor = false
		}
	}
	if s.floatingSrc != nil {
		if r, ok := s.floatingSrc.Rect(); ok {
			s.floating = r.Canon()
			s.hasFloating = true
			observability.Session().OnMeasure(s.id, measureFloating)
		} else {
			s.hasFloating = false
		}
	}
	if s.boundarySrc != nil {
		if r, ok := s.boundarySrc.Rect(); ok {
			s.boundary = r.Canon()
			s.hasBoundary = true
			observability.Session().OnMeasure(s.id, measureBoundary)
		} else {
			s.hasBoundary = false
		}
	}

	s.advance()
	return nil
}

// Subscribe registers fn to receive every published result. Subscribers are
// invoked synchronously within the update that produced the result. The
// returned cancel function removes the subscription; it is idempotent.
func (s *Session) Subscribe(fn func(placement.Result)) (cancel func()) {
	if s.closed {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Close drops all subscribers. The session may still be updated afterwards
// but publishes to no one; call Close before discarding the session so late
// notifications have no dangling target.
func (s *Session) Close() {
	s.subs = map[int]func(placement.Result){}
	s.closed = true
}

// advance recomputes the lifecycle state after a measurement update. A
// session that is (still) Ready recomputes and publishes; one that just
// regressed out of Ready publishes the zero result so subscribers stop
// showing the element.
func (s *Session) advance() {
	wasReady := s.state == StateReady

	next := StateUnmeasured
	switch {
	case s.hasAnchor && s.hasFloating:
		next = StateReady
	case s.hasAnchor || s.hasFloating:
		next = StatePartiallyMeasured
	}

	if next != s.state {
		observability.Session().OnStateChange(s.id, s.state.String(), next.String())
		if s.logger != nil {
			s.logger.Debug("session state changed", "session", s.id, "from", s.state, "to", next)
		}
		s.state = next
	}

	switch {
	case s.state == StateReady:
		s.recompute()
	case wasReady:
		s.result = placement.Result{}
		s.publish()
	}
}

// recompute runs the placement engine on the stored rects and publishes.
// Only called while Ready; the unset boundary defaults to the zero rect.
func (s *Session) recompute() {
	boundary := geom.Rect{}
	if s.hasBoundary {
		boundary = s.boundary
	}

	s.result = placement.Compute(s.anchor, s.floating, boundary, s.opts)
	s.publish()
}

// publish delivers the current result to all subscribers.
func (s *Session) publish() {
	observability.Session().OnPublish(s.id, len(s.subs))
	if s.logger != nil {
		s.logger.Debug("placement updated",
			"session", s.id,
			"x", s.result.X,
			"y", s.result.Y,
			"placement", s.result.Placement,
			"ready", s.result.Ready,
		)
	}
	for _, fn := range s.subs {
		fn(s.result)
	}
}
