package floating

import (
	"testing"

	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

func newReadyBridge(t *testing.T) (*Session, *Bridge) {
	t.Helper()
	s := NewSession(placement.DefaultOptions())
	b := NewBridge(s, Sources{
		Anchor:   StaticRect(testAnchor),
		Floating: StaticRect(testFloating),
		Boundary: StaticRect(testBoundary),
	})
	return s, b
}

func TestBridgeNotifyAll(t *testing.T) {
	s, b := newReadyBridge(t)

	b.Notify(ScopeAll)

	if s.State() != StateReady {
		t.Fatalf("State() = %v, want %v", s.State(), StateReady)
	}
	if !s.Result().Ready {
		t.Error("Result().Ready = false after full notify")
	}
}

func TestBridgeNotifyScoped(t *testing.T) {
	s, b := newReadyBridge(t)

	b.Notify(ScopeAnchor)
	if s.State() != StatePartiallyMeasured {
		t.Fatalf("State() = %v after anchor-only notify, want %v", s.State(), StatePartiallyMeasured)
	}

	b.Notify(ScopeFloating)
	if s.State() != StateReady {
		t.Fatalf("State() = %v after floating notify, want %v", s.State(), StateReady)
	}
}

func TestBridgeNotifyIdempotent(t *testing.T) {
	// Repeated notifications with unchanged geometry are not an error and
	// produce identical results: safe to call on every scroll tick.
	s, b := newReadyBridge(t)

	b.Notify(ScopeAll)
	first := s.Result()

	b.Notify(ScopeAll)
	b.Notify(ScopeBoundary)
	if got := s.Result(); got != first {
		t.Errorf("result after repeated notify = %+v, want %+v", got, first)
	}
}

func TestBridgeSkipsUnmountedSources(t *testing.T) {
	s := NewSession(placement.DefaultOptions())
	mounted := false
	b := NewBridge(s, Sources{
		Anchor: RectSourceFunc(func() (geom.Rect, bool) { return testAnchor, mounted }),
	})

	// Notification before mount: tolerated, session unchanged.
	b.Notify(ScopeAll)
	if s.State() != StateUnmeasured {
		t.Fatalf("State() = %v before mount, want %v", s.State(), StateUnmeasured)
	}

	mounted = true
	b.Notify(ScopeAnchor)
	if s.State() != StatePartiallyMeasured {
		t.Errorf("State() = %v after mount, want %v", s.State(), StatePartiallyMeasured)
	}
}

func TestBridgeNilSourcesSkipped(t *testing.T) {
	s := NewSession(placement.DefaultOptions())
	b := NewBridge(s, Sources{})

	// No sources wired at all: notify is a no-op, not a panic.
	b.Notify(ScopeAll)
	if s.State() != StateUnmeasured {
		t.Errorf("State() = %v, want %v", s.State(), StateUnmeasured)
	}
}

func TestBridgeOnScroll(t *testing.T) {
	s := NewSession(placement.DefaultOptions())
	b := NewBridge(s, Sources{})

	state := ScrollState{
		ContentWidth: 800, ContentHeight: 2000,
		ViewportWidth: 800, ViewportHeight: 600,
		OffsetY: 150,
	}
	b.OnScroll(state, geom.Point{X: 0, Y: 40})

	s.SetAnchorRect(testAnchor)
	s.SetFloatingRect(testFloating)

	// The boundary applied is the container's visible rect.
	want := geom.Rect{X: 0, Y: 40, Width: 800, Height: 600}
	if got := state.VisibleRect(geom.Point{X: 0, Y: 40}); got != want {
		t.Fatalf("VisibleRect() = %+v, want %+v", got, want)
	}
	if !s.Result().Ready {
		t.Error("session should be ready after scroll + measurements")
	}
}

func TestBridgeClose(t *testing.T) {
	s, b := newReadyBridge(t)

	b.Close()
	b.Notify(ScopeAll)
	b.OnScroll(ScrollState{ViewportWidth: 100, ViewportHeight: 100}, geom.Point{})

	if s.State() != StateUnmeasured {
		t.Errorf("State() = %v after closed-bridge notify, want %v", s.State(), StateUnmeasured)
	}
}

func TestBridgeReload(t *testing.T) {
	s, b := newReadyBridge(t)

	b.Reload()
	if !s.Result().Ready {
		t.Error("Result().Ready = false after bridge reload")
	}
}

func TestScrollStateMaxOffsets(t *testing.T) {
	tests := []struct {
		name  string
		state ScrollState
		wantX float64
		wantY float64
	}{
		{
			name:  "scrollable content",
			state: ScrollState{ContentWidth: 1000, ContentHeight: 2000, ViewportWidth: 800, ViewportHeight: 600},
			wantX: 200,
			wantY: 1400,
		},
		{
			name:  "content fits",
			state: ScrollState{ContentWidth: 500, ContentHeight: 400, ViewportWidth: 800, ViewportHeight: 600},
			wantX: 0,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.MaxOffsetX(); got != tt.wantX {
				t.Errorf("MaxOffsetX() = %v, want %v", got, tt.wantX)
			}
			if got := tt.state.MaxOffsetY(); got != tt.wantY {
				t.Errorf("MaxOffsetY() = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestBridgeUnmountResetsReadiness(t *testing.T) {
	s := NewSession(placement.DefaultOptions())
	mounted := true
	b := NewBridge(s, Sources{
		Anchor:   StaticRect(testAnchor),
		Floating: RectSourceFunc(func() (geom.Rect, bool) { return testFloating, mounted }),
		Boundary: StaticRect(testBoundary),
	})

	b.Reload()
	if !s.Result().Ready {
		t.Fatal("Result().Ready = false after initial reload")
	}

	mounted = false
	b.Reload()
	if s.Result().Ready {
		t.Error("Result().Ready = true after the floating element unmounted")
	}
	if s.State() != StatePartiallyMeasured {
		t.Errorf("State() = %v after unmount, want %v", s.State(), StatePartiallyMeasured)
	}

	mounted = true
	b.Notify(ScopeFloating)
	if !s.Result().Ready {
		t.Error("Result().Ready = false after the element remounted")
	}
}
