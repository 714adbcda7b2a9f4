package geom_test

import (
	"fmt"

	"github.com/matzehuels/floatkit/pkg/geom"
)

func ExampleOverflow() {
	boundary := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tooltip := geom.Rect{X: 90, Y: 40, Width: 30, Height: 20}

	o := geom.Overflow(tooltip, boundary)

	fmt.Println("Right overflow:", o.Right)
	fmt.Println("Overflowing:", o.Any())
	// Output:
	// Right overflow: 20
	// Overflowing: true
}

func ExampleContains() {
	boundary := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	fmt.Println(geom.Contains(boundary, geom.Rect{X: 10, Y: 10, Width: 20, Height: 20}))
	fmt.Println(geom.Contains(boundary, geom.Rect{X: 90, Y: 90, Width: 20, Height: 20}))
	// Output:
	// true
	// false
}
