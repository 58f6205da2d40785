package localsearch

import (
	"fmt"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/sorter"
)

// RunHillclimber runs the Hillclimber optimizer over g: each iteration,
// every routed net gets up to opts.AttemptsPerNet chances to find a
// cheaper replacement path via a bounded random walk (spec.md §4.4, §4.6).
//
// Acceptance is mostly strict (a replacement is kept only if it strictly
// lowers total cost), but every LateralEvery'th attempt (a counter shared
// across the whole run, not reset per net) also accepts a same-cost
// replacement. On a strict-improvement accept the net's attempt loop ends
// immediately; on a lateral accept it keeps trying more attempts on the
// same net, since a lateral move does not itself justify moving on. This
// mirrors the source's own asymmetry between its two accept branches.
func RunHillclimber(g *grid.Grid, opts ...HillclimberOption) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultHillclimberOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sortFn, err := sorter.Lookup(cfg.Sorter)
	if err != nil {
		return nil, fmt.Errorf("localsearch: %w", err)
	}

	result := &Result{History: make([]int, 0, cfg.Iterations)}
	attemptsWithoutImprovement := 0

	for iter := 0; iter < cfg.Iterations; iter++ {
		nets := sortFn(g.Nets(), sorter.Options{Descending: cfg.Descending, RNG: cfg.RNG, Size: g.Size()})

		for _, net := range nets {
			if !net.Routed() {
				continue
			}
			if err := improveHillclimber(g, net, cfg, &attemptsWithoutImprovement); err != nil {
				return nil, fmt.Errorf("localsearch: hillclimber: net %s: %w", net.Key, err)
			}
		}

		if attemptsWithoutImprovement > cfg.AttemptsPerNet*5 {
			result.Stalled = true
		}
		result.History = append(result.History, g.ComputeCost())
	}

	return result, nil
}

func improveHillclimber(g *grid.Grid, net *grid.Net, cfg HillclimberOptions, counter *int) error {
	maxLength := 2*net.MinimalLength + 10
	bestCost := g.ComputeCost()

	for attempt := 0; attempt < cfg.AttemptsPerNet; attempt++ {
		candidate, delta, ok := boundedRandomWalk(g, net.Start, net.End, maxLength, cfg.RNG)
		if !ok {
			*counter++
			continue
		}

		newCost := estimateCost(g, net, candidate, delta)
		lateralTurn := cfg.LateralEvery > 0 && *counter%cfg.LateralEvery == 0

		if lateralTurn {
			if newCost <= bestCost {
				cost, err := acceptCandidate(g, net, candidate)
				if err != nil {
					return err
				}
				bestCost = cost
				*counter = 0
				continue
			}
			*counter++
			continue
		}

		if newCost < bestCost {
			if _, err := acceptCandidate(g, net, candidate); err != nil {
				return err
			}
			*counter = 0
			return nil
		}
		*counter++
	}
	return nil
}
