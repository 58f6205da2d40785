package sorter_test

import (
	"fmt"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/sorter"
)

// ExampleByLength demonstrates ordering nets by minimal Manhattan length,
// ascending then descending — testable property #6 from spec.md §8: the
// descending order is the ascending order reversed.
func ExampleByLength() {
	g, _ := grid.NewGrid(
		grid.Size{X: 5, Y: 5, Z: 2},
		[]grid.Gate{
			{UID: 1, X: 0, Y: 0},
			{UID: 2, X: 1, Y: 0},
			{UID: 3, X: 0, Y: 1},
			{UID: 4, X: 5, Y: 5},
		},
		[]grid.NetSpec{
			{StartUID: 1, EndUID: 2}, // length 1
			{StartUID: 1, EndUID: 4}, // length 10
			{StartUID: 3, EndUID: 4}, // length 9
		},
	)

	nets := g.Nets()
	asc := sorter.ByLength(nets, sorter.Options{})
	for _, n := range asc {
		fmt.Println(n.MinimalLength)
	}

	desc := sorter.ByLength(nets, sorter.Options{Descending: true})
	for _, n := range desc {
		fmt.Println(n.MinimalLength)
	}

	// Output:
	// 1
	// 9
	// 10
	// 10
	// 9
	// 1
}
