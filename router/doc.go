// Package router is the top-level orchestrator of a chip-routing run: it
// drives an initial A* pass over every net, then, per Config.Algorithm,
// hands the grid to either localsearch.RunHillclimber or
// localsearch.RunAnnealing.
//
// This package is the "configuration surface" spec.md §6 describes —
// algorithm choice, iteration limit, sorter, annealing schedule — and the
// "pure query interface" (Result) that an out-of-scope CSV/plot writer
// would consume. It does no I/O: Config.ChipID/NetlistID are labels only,
// and Config's CSV/plot flags are carried but never acted on here.
//
// Error handling
//
//	Configuration errors (unknown algorithm, non-positive iteration limit,
//	an out-of-range cooling parameter) are returned before Run mutates the
//	grid at all, per spec.md §7. A net the initial A* pass cannot route is
//	not an error: its key is recorded in Result.Unrouted and the run
//	continues with the remaining nets.
//
// Determinism
//
//	Run derives two independent *rand.Rand substreams from Config.Seed (or
//	Config.RNG, if set): one for the initial A* pass's sorter, one for the
//	optimizer phase. The same Seed and Config always reproduce the same
//	cost and iteration history (spec.md §5).
package router
