// Package pkg provides the core libraries for Floatkit floating-element placement.
//
// # Overview
//
// Floatkit computes where floating elements (tooltips, dropdowns, context
// menus) should be placed relative to an anchor, keeping them visible inside
// a boundary. The pkg directory is organized into three main areas:
//
//  1. [placement] - The pure placement engine (base position, flip, shift)
//  2. [floating] - The reactive layer (sessions, lifecycle, observation bridge)
//  3. [geom] - Shared rectangle and overflow geometry
//
// # Architecture
//
// The typical data flow through Floatkit:
//
//	Measurements (anchor, floating, boundary rects)
//	         ↓
//	    [floating] package (session lifecycle + change notifications)
//	         ↓
//	    [placement] package (base position → middleware pipeline)
//	         ↓
//	    Result (x, y, final placement)
//
// # Quick Start
//
// Compute a tooltip position directly:
//
//	import (
//	    "github.com/matzehuels/floatkit/pkg/geom"
//	    "github.com/matzehuels/floatkit/pkg/placement"
//	)
//
//	opts := placement.DefaultOptions()
//	opts.Placement = placement.TopCenter
//	opts.Offset = 8
//
//	result := placement.Compute(
//	    geom.Rect{X: 380, Width: 40, Height: 20},  // anchor
//	    geom.Rect{Width: 60, Height: 40},          // floating size
//	    geom.Rect{Width: 800, Height: 600},        // boundary
//	    opts,
//	)
//
// Or drive a session from measurement events:
//
//	s := floating.NewSession(opts)
//	s.Subscribe(func(r placement.Result) { apply(r) })
//	s.SetAnchorRect(anchor)
//	s.SetFloatingRect(tip)
//	s.SetBoundaryRect(viewport)
//
// # Main Packages
//
// [placement] - Deterministic placement engine. Twelve placements (four
// sides, three alignments), a middleware pipeline with flip and shift
// adjustments, and absolute/fixed positioning strategies.
//
// [floating] - Session lifecycle (unmeasured → partially measured → ready),
// synchronous result publication to subscribers, point-anchored sessions for
// context menus, and the observation bridge that turns scroll/resize/mutation
// notifications into re-measurements.
//
// [geom] - Rectangles, points, and overflow arithmetic in a top-left origin
// coordinate space.
//
// ## Supporting Packages
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [observability] - Pluggable hooks for engine and session instrumentation.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/placement  # Specific package
//	go test -run Example     # Examples only
//
// [placement]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/placement
// [floating]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/floating
// [geom]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/geom
// [errors]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/floatkit/pkg/buildinfo
package pkg
