package router_test

import (
	"fmt"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/router"
)

// ExampleRun demonstrates the default configuration: an initial A* pass
// with no follow-up optimizer. Run's Result exposes the pure query
// surface an out-of-scope CSV/plot writer would consume.
func ExampleRun() {
	g, err := grid.NewGrid(
		grid.Size{X: 4, Y: 4, Z: 2},
		[]grid.Gate{
			{UID: 1, X: 0, Y: 0},
			{UID: 2, X: 4, Y: 4},
		},
		[]grid.NetSpec{{StartUID: 1, EndUID: 2}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := router.Run(g, router.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("unrouted=%d cost=%d\n", len(result.Unrouted()), result.Cost())
	// Output: unrouted=0 cost=8
}
