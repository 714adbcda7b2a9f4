package floating

import (
	"testing"

	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

func TestPointSessionEquivalence(t *testing.T) {
	// A point anchor must behave exactly like a zero-area anchor rect at
	// the same coordinates.
	opts := placement.DefaultOptions()

	ps := NewPointSession(opts)
	ps.SetBoundaryRect(testBoundary)
	ps.SetFloatingRect(testFloating)
	ps.SetAnchorPoint(50, 50)

	rs := NewSession(opts)
	rs.SetBoundaryRect(testBoundary)
	rs.SetFloatingRect(testFloating)
	rs.SetAnchorRect(geom.Rect{X: 50, Y: 50, Width: 0, Height: 0})

	if ps.Result() != rs.Result() {
		t.Errorf("point session result %+v, rect session result %+v", ps.Result(), rs.Result())
	}
}

func TestPointSessionReadiness(t *testing.T) {
	ps := NewPointSession(placement.DefaultOptions())

	ps.SetAnchorPoint(10, 10)
	if ps.State() != StatePartiallyMeasured {
		t.Fatalf("State() = %v, want %v", ps.State(), StatePartiallyMeasured)
	}

	ps.SetFloatingRect(testFloating)
	if ps.State() != StateReady {
		t.Fatalf("State() = %v, want %v", ps.State(), StateReady)
	}
	if !ps.Result().Ready {
		t.Error("Result().Ready = false, want true")
	}
}

func TestPointSessionFlipsNearEdge(t *testing.T) {
	// A context menu opened near the viewport's bottom edge flips above the
	// cursor.
	opts := placement.DefaultOptions()

	ps := NewPointSession(opts)
	ps.SetBoundaryRect(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	ps.SetFloatingRect(geom.Rect{Width: 120, Height: 80})
	ps.SetAnchorPoint(400, 590)

	got := ps.Result()
	if got.Placement != placement.TopStart {
		t.Errorf("Placement = %v, want %v", got.Placement, placement.TopStart)
	}
	if got.Y != 510 {
		t.Errorf("Y = %v, want 510 (point 590 - height 80)", got.Y)
	}
}

func TestPointSessionMovesWithPoint(t *testing.T) {
	ps := NewPointSession(placement.DefaultOptions())
	ps.SetBoundaryRect(testBoundary)
	ps.SetFloatingRect(testFloating)

	var published []placement.Result
	ps.Subscribe(func(r placement.Result) { published = append(published, r) })

	ps.SetAnchorPoint(100, 100)
	ps.SetAnchorPoint(200, 150)

	if len(published) != 2 {
		t.Fatalf("published %d results, want 2", len(published))
	}
	if published[1].X != 200 || published[1].Y != 150 {
		t.Errorf("latest position = (%v, %v), want (200, 150)", published[1].X, published[1].Y)
	}
}
