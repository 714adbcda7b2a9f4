package floating_test

import (
	"fmt"

	"github.com/matzehuels/floatkit/pkg/floating"
	"github.com/matzehuels/floatkit/pkg/geom"
	"github.com/matzehuels/floatkit/pkg/placement"
)

func ExampleSession() {
	session := floating.NewSession(placement.DefaultOptions())

	cancel := session.Subscribe(func(r placement.Result) {
		fmt.Printf("placed %s at (%.0f, %.0f)\n", r.Placement, r.X, r.Y)
	})
	defer cancel()

	// Measurements arrive in any order; nothing publishes until both the
	// anchor and the floating element have been measured.
	session.SetBoundaryRect(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	session.SetAnchorRect(geom.Rect{X: 100, Y: 100, Width: 40, Height: 20})
	session.SetFloatingRect(geom.Rect{Width: 60, Height: 40})
	// Output:
	// placed bottom-start at (100, 120)
}

func ExampleBridge() {
	session := floating.NewSession(placement.DefaultOptions())

	// Sources wrap the rendering collaborator's measurement handles; here
	// they are fixed rects.
	bridge := floating.NewBridge(session, floating.Sources{
		Anchor:   floating.StaticRect(geom.Rect{X: 100, Y: 100, Width: 40, Height: 20}),
		Floating: floating.StaticRect(geom.Rect{Width: 60, Height: 40}),
		Boundary: floating.StaticRect(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600}),
	})

	// A resize notification for the floating element re-reads and pushes
	// every rect it names; scroll ticks can notify unconditionally.
	bridge.Notify(floating.ScopeAll)

	r := session.Result()
	fmt.Println("ready:", r.Ready)
	fmt.Printf("position: (%.0f, %.0f)\n", r.X, r.Y)
	// Output:
	// ready: true
	// position: (100, 120)
}

func ExamplePointSession() {
	// A context menu anchored at the cursor.
	session := floating.NewPointSession(placement.DefaultOptions())
	session.SetBoundaryRect(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	session.SetFloatingRect(geom.Rect{Width: 120, Height: 80})
	session.SetAnchorPoint(400, 590)

	r := session.Result()
	fmt.Println("placement:", r.Placement)
	// Output:
	// placement: top-start
}
