package localsearch_test

import (
	"fmt"
	"math/rand"

	"github.com/dkuijer/chiproute/astar"
	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/localsearch"
)

// ExampleRunHillclimber routes a small grid with astar.Solve, then lets
// Hillclimber attempt to shrink the total cost. Hillclimber only ever
// accepts a rewrite that holds cost flat or lowers it, so the final cost
// is guaranteed never to exceed the cost after the initial routing,
// regardless of which candidates its random walk happens to find.
func ExampleRunHillclimber() {
	g, _ := grid.NewGrid(
		grid.Size{X: 6, Y: 6, Z: 3},
		[]grid.Gate{
			{UID: 1, X: 0, Y: 0},
			{UID: 2, X: 4, Y: 0},
			{UID: 3, X: 0, Y: 4},
			{UID: 4, X: 4, Y: 4},
		},
		[]grid.NetSpec{
			{StartUID: 1, EndUID: 2},
			{StartUID: 3, EndUID: 4},
		},
	)

	for _, key := range []grid.NetKey{{StartUID: 1, EndUID: 2}, {StartUID: 3, EndUID: 4}} {
		_, _ = astar.Solve(g, key)
	}
	initialCost := g.ComputeCost()

	result, err := localsearch.RunHillclimber(g,
		localsearch.WithHillclimberIterations(10),
		localsearch.WithHillclimberRNG(rand.New(rand.NewSource(1))),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.ComputeCost() <= initialCost)
	fmt.Println(len(result.History) == 10)
	// Output:
	// true
	// true
}
