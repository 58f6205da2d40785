package router

import (
	"math/rand"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/localsearch"
	"github.com/dkuijer/chiproute/sorter"
)

// Algorithm selects which of the three routing strategies spec.md §6
// describes Run should execute, beyond the mandatory initial A* pass.
type Algorithm string

const (
	// AstarOnly stops after the initial A* pass fills every net's path;
	// no local-search optimizer runs.
	AstarOnly Algorithm = "astar_only"
	// HillclimberAlgorithm runs localsearch.RunHillclimber after the
	// initial A* pass.
	HillclimberAlgorithm Algorithm = "hillclimber"
	// AnnealingAlgorithm runs localsearch.RunAnnealing after the initial
	// A* pass.
	AnnealingAlgorithm Algorithm = "annealing"
)

// Config is the configuration surface of one routing run (spec.md §6):
// algorithm choice, iteration budget, net-visiting order, and the
// annealer's cooling schedule. It carries no file paths and does no I/O —
// ChipID and NetlistID are plain labels a loader/writer (out of scope for
// this module) may use to tag its own inputs/outputs; Run never reads or
// writes them.
type Config struct {
	// ChipID and NetlistID identify the inputs a loader (out of scope)
	// populated the grid from. Purely descriptive; Run does not
	// dereference them.
	ChipID, NetlistID string

	// Algorithm selects which optimizer, if any, follows the initial A*
	// pass.
	Algorithm Algorithm

	// IterationLimit bounds the optimizer's pass count. Ignored when
	// Algorithm is AstarOnly. Must be positive for Hillclimber/Annealing.
	IterationLimit int

	// Sorter and Descending select the net-visiting order both the
	// initial A* pass and any optimizer use.
	Sorter     sorter.Name
	Descending bool

	// T0, Schedule, and ScheduleParams configure the annealer. Ignored
	// unless Algorithm == AnnealingAlgorithm.
	T0             float64
	Schedule       localsearch.Schedule
	ScheduleParams localsearch.ScheduleParams

	// Seed picks the run's deterministic RNG when RNG is nil: Run derives
	// two independent substreams from it (one for the initial A* pass's
	// sorter, one for the optimizer phase), rather than threading a single
	// *rand.Rand through both, so the optimizer's draws don't shift with
	// however many draws the initial pass happened to consume first.
	// Seed==0 maps to a fixed default seed (see rngFromSeed), so a
	// zero-value Config is still reproducible.
	Seed int64

	// RNG, if set, overrides Seed entirely and is used directly as both
	// substreams' parent. Mainly for tests that need a single, specific
	// *rand.Rand; production callers should prefer Seed.
	RNG *rand.Rand

	// Flags mirror spec.md §6's output-sink toggles. This module
	// implements none of the sinks they'd gate (loaders/writers/plots are
	// out of scope); they are carried here only so a Config value fully
	// reflects the configuration surface an out-of-scope CLI would
	// populate and pass through unchanged.
	UpdateCSVPaths      bool
	MakeCSVImprovements bool
	MakeIterativePlot   bool
}

// DefaultConfig returns a Config that runs AstarOnly with sorter.ByLength
// ascending and Seed left at its zero value, the same deterministic-by-default
// posture localsearch.DefaultHillclimberOptions and
// localsearch.DefaultAnnealingOptions take. Run derives the actual *rand.Rand
// substreams from Seed; RNG stays nil here so a caller overriding only Seed
// does not also need to touch RNG.
func DefaultConfig() Config {
	return Config{
		Algorithm:      AstarOnly,
		IterationLimit: 20,
		Sorter:         sorter.ByLengthName,
		Schedule:       localsearch.LinearSchedule,
		ScheduleParams: localsearch.DefaultScheduleParams(localsearch.LinearSchedule),
	}
}

// Result is the pure query interface spec.md §1 and §6 describe an output
// writer (CSV rows, a plot) consuming: per-net paths, total cost,
// per-iteration cost history, and the set of nets A* failed to route.
// Run returns one of these; this package implements no sink that reads it.
type Result struct {
	g *grid.Grid

	history  []int
	unrouted []grid.NetKey
}

// Paths returns every net's current path, keyed by NetKey. Unrouted nets
// map to a nil Path.
func (r *Result) Paths() map[grid.NetKey]grid.Path {
	out := make(map[grid.NetKey]grid.Path, r.g.NetCount())
	for key, net := range r.g.Nets() {
		out[key] = net.Path
	}
	return out
}

// Cost returns the grid's total cost after the run.
func (r *Result) Cost() int { return r.g.ComputeCost() }

// History returns the grid's total cost after every optimizer iteration, in
// order; under annealing an accepted worsening move makes it rise. Empty when Algorithm == AstarOnly, since there are no iterations
// beyond the single initial pass.
func (r *Result) History() []int { return r.history }

// Unrouted returns the keys of nets the initial A* pass failed to find a
// path for (spec.md §7 "Unrouted net... not an error"). A local-search
// optimizer never routes a net A* could not: both optimizers skip nets
// with no current path (see localsearch.RunHillclimber/RunAnnealing).
func (r *Result) Unrouted() []grid.NetKey { return r.unrouted }
