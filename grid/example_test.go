package grid_test

import (
	"fmt"

	"github.com/dkuijer/chiproute/grid"
)

// ExampleNewGrid demonstrates building a grid with two gates and one net,
// then manually occupying the single segment between them — scenario S1
// from spec.md §8: a 2x2x2 grid, one net between adjacent gates.
func ExampleNewGrid() {
	g, err := grid.NewGrid(
		grid.Size{X: 1, Y: 1, Z: 2},
		[]grid.Gate{
			{UID: 1, X: 0, Y: 0},
			{UID: 2, X: 1, Y: 0},
		},
		[]grid.NetSpec{{StartUID: 1, EndUID: 2}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	key := grid.NetKey{StartUID: 1, EndUID: 2}
	net, _ := g.Net(key)
	seg, _ := grid.MakeSegment(net.Start, net.End)
	if err := g.Occupy(seg, key); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%d intersections=%d\n", g.ComputeCost(), g.Intersections())
	// Output: cost=1 intersections=0
}

// ExampleMakeSegment shows that a segment's canonical form does not
// depend on the order its endpoints are given in (spec.md §3, §8
// property #4).
func ExampleMakeSegment() {
	a := grid.Coordinate{X: 0, Y: 0, Z: 0}
	b := grid.Coordinate{X: 1, Y: 0, Z: 0}

	ab, _ := grid.MakeSegment(a, b)
	ba, _ := grid.MakeSegment(b, a)

	fmt.Println(ab == ba)
	// Output: true
}
