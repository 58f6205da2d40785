// Package chiproute is a chip-routing engine: given a 3D grid of fixed
// gates and a list of nets (unordered gate pairs that must be connected),
// it computes one axis-aligned wire path per net that minimizes
//
//	cost = |wire_segments| + 300 * intersections
//
// Organization
//
//	grid/        — Coordinate, Segment, Gate, Net and Grid: the shared
//	               occupancy model every router and optimizer reads and writes.
//	sorter/       — total orderings of a net collection, used to seed and
//	               sequence routing and rewriting.
//	astar/        — a cost-weighted A* search that produces the initial
//	               routing for every net on an empty or partially-occupied grid.
//	localsearch/  — Hillclimber and Simulated-Annealing optimizers that
//	               rewire one net at a time via a bounded random walk.
//	router/       — the top-level Run orchestrator and its Config/Result
//	               types, the "configuration surface" of a routing run.
//
// Non-goals
//
//	Input loaders, output writers, CLI argument parsing, and a netlist
//	randomizer are deliberately out of scope: this module exposes pure
//	construction (grid.NewGrid) and query (router.Result) surfaces for such
//	collaborators to consume, but implements none of them.
//
//	go get github.com/dkuijer/chiproute
package chiproute
