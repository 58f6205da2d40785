package router

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dkuijer/chiproute/astar"
	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/localsearch"
	"github.com/dkuijer/chiproute/sorter"
)

// Run drives one full routing pass over g per cfg: an initial A* pass
// seeds every net's path (spec.md §2 "the initial router (A*) fills every
// net's path"), then, unless cfg.Algorithm is AstarOnly, the selected
// local-search optimizer rewrites nets for up to cfg.IterationLimit
// iterations.
//
// A net A* cannot route is recorded in Result.Unrouted and left
// unrouted (spec.md §7): this is not an error and does not abort the run.
// Configuration errors (unknown algorithm, non-positive iteration limit,
// a cooling schedule parameter out of range) are returned before any
// mutation of g.
func Run(g *grid.Grid, cfg Config) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	base := cfg.RNG
	if base == nil {
		base = rngFromSeed(cfg.Seed)
	}
	// Two independent substreams: the initial A* pass's sorter draws from
	// its own stream so the optimizer phase's draws don't shift with
	// however many random choices the initial pass happened to make first.
	sortRNG := deriveRNG(base, 0)
	optimizerRNG := deriveRNG(base, 1)

	switch cfg.Algorithm {
	case AstarOnly, HillclimberAlgorithm, AnnealingAlgorithm:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
	if cfg.Algorithm != AstarOnly && cfg.IterationLimit <= 0 {
		return nil, ErrBadIterationLimit
	}
	if cfg.Algorithm == AnnealingAlgorithm {
		if err := localsearch.ValidateSchedule(cfg.Schedule, cfg.ScheduleParams); err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
	}

	sortFn, err := sorter.Lookup(cfg.Sorter)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	unrouted, err := routeInitial(g, cfg, sortFn, sortRNG)
	if err != nil {
		return nil, err
	}

	result := &Result{g: g, unrouted: unrouted}

	switch cfg.Algorithm {
	case AstarOnly:
		// No optimizer pass; Result.History stays empty.
	case HillclimberAlgorithm:
		hcResult, err := localsearch.RunHillclimber(g,
			localsearch.WithHillclimberIterations(cfg.IterationLimit),
			localsearch.WithHillclimberSorter(cfg.Sorter, cfg.Descending),
			localsearch.WithHillclimberRNG(optimizerRNG),
		)
		if err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
		result.history = hcResult.History
	case AnnealingAlgorithm:
		saResult, err := localsearch.RunAnnealing(g,
			localsearch.WithAnnealingIterations(cfg.IterationLimit),
			localsearch.WithAnnealingSorter(cfg.Sorter, cfg.Descending),
			localsearch.WithAnnealingRNG(optimizerRNG),
			localsearch.WithAnnealingT0(cfg.T0),
			localsearch.WithAnnealingSchedule(cfg.Schedule),
			localsearch.WithAnnealingParams(cfg.ScheduleParams),
		)
		if err != nil {
			return nil, fmt.Errorf("router: %w", err)
		}
		result.history = saResult.History
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	return result, nil
}

// routeInitial runs astar.Solve once per net, in cfg's sorter order,
// collecting the keys of nets that come back ErrNoPath rather than
// aborting the run (spec.md §7).
func routeInitial(g *grid.Grid, cfg Config, sortFn sorter.Func, rng *rand.Rand) ([]grid.NetKey, error) {
	nets := sortFn(g.Nets(), sorter.Options{Descending: cfg.Descending, RNG: rng, Size: g.Size()})

	var unrouted []grid.NetKey
	for _, net := range nets {
		if net.Routed() {
			continue
		}
		if _, err := astar.Solve(g, net.Key); err != nil {
			if errors.Is(err, astar.ErrNoPath) {
				unrouted = append(unrouted, net.Key)
				continue
			}
			return nil, fmt.Errorf("router: initial routing: %w", err)
		}
	}
	return unrouted, nil
}
