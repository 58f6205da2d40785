package localsearch

import (
	"math/rand"

	"github.com/dkuijer/chiproute/sorter"
)

// Result summarizes one optimizer run over a grid's nets.
type Result struct {
	// History records the grid's total cost (grid.Grid.ComputeCost) after
	// every iteration, in order; len(History) == the number of iterations
	// actually run.
	History []int

	// Stalled reports whether the run's global no-improvement counter
	// exceeded its limit at the end of any iteration (the counter is not
	// checked mid-iteration). Hillclimber and Annealing both keep
	// running regardless (spec.md's iteration-limit contract takes
	// priority); this is purely diagnostic.
	Stalled bool
}

// HillclimberOptions configures a Hillclimber run.
type HillclimberOptions struct {
	// Iterations is the number of passes to make over every net.
	Iterations int

	// Sorter and Descending select the net visiting order each iteration.
	Sorter     sorter.Name
	Descending bool

	// AttemptsPerNet bounds how many candidate paths improveHillclimber may
	// propose for a single net before giving up on it this iteration.
	AttemptsPerNet int

	// LateralEvery makes every Nth attempt (counted across the whole run,
	// not per net) accept a same-cost rewrite instead of requiring strict
	// improvement. 0 disables lateral acceptance entirely.
	LateralEvery int

	RNG *rand.Rand
}

// HillclimberOption mutates a HillclimberOptions in place.
type HillclimberOption func(*HillclimberOptions)

// DefaultHillclimberOptions mirrors the source's constants: 100 attempts
// per net, a lateral move permitted every 5th attempt.
func DefaultHillclimberOptions() HillclimberOptions {
	return HillclimberOptions{
		Iterations:     20,
		Sorter:         sorter.ByLengthName,
		AttemptsPerNet: 100,
		LateralEvery:   5,
		RNG:            rand.New(rand.NewSource(1)),
	}
}

// WithHillclimberIterations overrides the number of passes over all nets.
// Panics if n is not positive.
func WithHillclimberIterations(n int) HillclimberOption {
	if n <= 0 {
		panic("localsearch: WithHillclimberIterations requires n > 0")
	}
	return func(o *HillclimberOptions) { o.Iterations = n }
}

// WithHillclimberSorter selects the net visiting order.
func WithHillclimberSorter(name sorter.Name, descending bool) HillclimberOption {
	return func(o *HillclimberOptions) { o.Sorter = name; o.Descending = descending }
}

// WithHillclimberRNG overrides the random source, e.g. to make a run
// reproducible under a specific seed.
func WithHillclimberRNG(rng *rand.Rand) HillclimberOption {
	return func(o *HillclimberOptions) { o.RNG = rng }
}

// WithHillclimberAttemptsPerNet overrides the per-net proposal budget.
// Panics if n is not positive.
func WithHillclimberAttemptsPerNet(n int) HillclimberOption {
	if n <= 0 {
		panic("localsearch: WithHillclimberAttemptsPerNet requires n > 0")
	}
	return func(o *HillclimberOptions) { o.AttemptsPerNet = n }
}

// AnnealingOptions configures an Annealing run.
type AnnealingOptions struct {
	// Iterations is the number of passes to make over every net.
	Iterations int

	Sorter     sorter.Name
	Descending bool

	// AttemptsPerNet bounds how many candidate paths improveAnnealing may
	// propose before giving up on a net this iteration, same as
	// Hillclimber; each proposal found by the bounded random walk is
	// evaluated exactly once (accept or reject), after which the net's
	// turn this iteration ends regardless of outcome.
	AttemptsPerNet int

	T0       float64
	Schedule Schedule
	Params   ScheduleParams

	// StallLimit is a diagnostic threshold: if the run's global
	// no-improvement counter exceeds it at the end of an iteration,
	// Result.Stalled is set. The
	// run itself does not change behavior; spec.md's iteration budget
	// still governs how long the optimizer runs.
	StallLimit int

	RNG *rand.Rand
}

// AnnealingOption mutates an AnnealingOptions in place.
type AnnealingOption func(*AnnealingOptions)

// DefaultAnnealingOptions returns Options for the given starting
// temperature and cooling schedule, with that schedule's own sensible
// parameter defaults (see DefaultScheduleParams).
func DefaultAnnealingOptions(t0 float64, schedule Schedule) AnnealingOptions {
	return AnnealingOptions{
		Iterations:     20,
		Sorter:         sorter.ByLengthName,
		AttemptsPerNet: 50,
		T0:             t0,
		Schedule:       schedule,
		Params:         DefaultScheduleParams(schedule),
		StallLimit:     500,
		RNG:            rand.New(rand.NewSource(1)),
	}
}

// WithAnnealingIterations overrides the number of passes over all nets.
// Panics if n is not positive.
func WithAnnealingIterations(n int) AnnealingOption {
	if n <= 0 {
		panic("localsearch: WithAnnealingIterations requires n > 0")
	}
	return func(o *AnnealingOptions) { o.Iterations = n }
}

// WithAnnealingSorter selects the net visiting order.
func WithAnnealingSorter(name sorter.Name, descending bool) AnnealingOption {
	return func(o *AnnealingOptions) { o.Sorter = name; o.Descending = descending }
}

// WithAnnealingRNG overrides the random source.
func WithAnnealingRNG(rng *rand.Rand) AnnealingOption {
	return func(o *AnnealingOptions) { o.RNG = rng }
}

// WithAnnealingParams overrides the cooling schedule's constants.
func WithAnnealingParams(p ScheduleParams) AnnealingOption {
	return func(o *AnnealingOptions) { o.Params = p }
}

// WithAnnealingT0 overrides the starting temperature.
func WithAnnealingT0(t0 float64) AnnealingOption {
	return func(o *AnnealingOptions) { o.T0 = t0 }
}

// WithAnnealingSchedule overrides the cooling schedule choice.
func WithAnnealingSchedule(schedule Schedule) AnnealingOption {
	return func(o *AnnealingOptions) { o.Schedule = schedule }
}

// WithAnnealingStallLimit overrides the diagnostic stall threshold. Panics
// if n is not positive.
func WithAnnealingStallLimit(n int) AnnealingOption {
	if n <= 0 {
		panic("localsearch: WithAnnealingStallLimit requires n > 0")
	}
	return func(o *AnnealingOptions) { o.StallLimit = n }
}
