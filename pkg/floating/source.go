package floating

import "github.com/matzehuels/floatkit/pkg/geom"

// RectSource resolves the current measured rect of an element on demand. It
// is the session's view of the rendering collaborator: implementations
// typically wrap a mounted element handle and re-measure when called.
//
// The second return value is false while the element is not mounted or
// cannot be measured. Reload and the bridge treat a not-ok read as a cleared
// measurement: harmless before the element ever mounted, a regression to
// not-ready once it had been measured.
type RectSource interface {
	Rect() (geom.Rect, bool)
}

// RectSourceFunc adapts a function to the RectSource interface.
type RectSourceFunc func() (geom.Rect, bool)

// Rect implements RectSource.
func (f RectSourceFunc) Rect() (geom.Rect, bool) { return f() }

// StaticRect returns a source that always reports r. Useful for fixed
// boundaries and in tests.
func StaticRect(r geom.Rect) RectSource {
	return RectSourceFunc(func() (geom.Rect, bool) { return r, true })
}
