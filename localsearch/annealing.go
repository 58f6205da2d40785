package localsearch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dkuijer/chiproute/grid"
	"github.com/dkuijer/chiproute/sorter"
)

// RunAnnealing runs the Annealing optimizer over g: each iteration, every
// routed net gets one evaluated candidate rewrite (spec.md §4.5), proposed
// the same way Hillclimber does (bounded random walk, spec.md §4.6).
//
// Acceptance is Boltzmann: a candidate that doesn't worsen cost (delta <=
// 0) is always accepted; a candidate that worsens cost is accepted with
// probability exp(-delta/T), or never if T has cooled to zero. Exactly one
// candidate is evaluated per net per iteration, and no net but the one
// being evaluated is ever touched: the source's commented-out block that
// re-routes every other net via a fresh A* pass inside the loop is not
// carried over. See DESIGN.md's Open Question decisions.
//
// The temperature cools once per net whose candidate is accepted, per the
// configured Schedule.
func RunAnnealing(g *grid.Grid, opts ...AnnealingOption) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultAnnealingOptions(0, LinearSchedule)
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Params.validate(cfg.Schedule); err != nil {
		return nil, err
	}

	sortFn, err := sorter.Lookup(cfg.Sorter)
	if err != nil {
		return nil, fmt.Errorf("localsearch: %w", err)
	}

	temp := newCooler(cfg.Schedule, cfg.Params, cfg.T0)
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: cfg.RNG}

	result := &Result{History: make([]int, 0, cfg.Iterations)}
	attemptsWithoutImprovement := 0

	for iter := 0; iter < cfg.Iterations; iter++ {
		nets := sortFn(g.Nets(), sorter.Options{Descending: cfg.Descending, RNG: cfg.RNG, Size: g.Size()})

		for _, net := range nets {
			if !net.Routed() {
				continue
			}
			if err := improveAnnealing(g, net, cfg, temp, uniform, &attemptsWithoutImprovement); err != nil {
				return nil, fmt.Errorf("localsearch: annealing: net %s: %w", net.Key, err)
			}
		}

		if attemptsWithoutImprovement > cfg.StallLimit {
			result.Stalled = true
		}
		result.History = append(result.History, g.ComputeCost())
	}

	return result, nil
}

// improveAnnealing proposes candidates for net, up to cfg.AttemptsPerNet
// times, until the bounded random walk yields one (a find-path miss is not
// evaluated, but it does use up one of those tries and bumps the counter),
// then evaluates and decides that single candidate and returns, win or lose.
func improveAnnealing(g *grid.Grid, net *grid.Net, cfg AnnealingOptions, temp *cooler, uniform distuv.Uniform, counter *int) error {
	maxLength := net.CurrentLength() + 10

	for attempt := 0; attempt < cfg.AttemptsPerNet; attempt++ {
		candidate, delta, ok := boundedRandomWalk(g, net.Start, net.End, maxLength, cfg.RNG)
		if !ok {
			*counter++
			continue
		}

		bestCost := g.ComputeCost()
		newCost := estimateCost(g, net, candidate, delta)
		costDelta := newCost - bestCost

		probability := acceptanceProbability(costDelta, temp.temperature())
		if probability > uniform.Rand() {
			if _, err := acceptCandidate(g, net, candidate); err != nil {
				return err
			}
			*counter = 0
			temp.advance()
			return nil
		}

		*counter++
		return nil
	}
	return nil
}

// acceptanceProbability implements spec.md §4.5's Boltzmann rule: a
// non-worsening move is always accepted, a worsening move is accepted with
// probability exp(-delta/T), and nothing is accepted once T has cooled to
// zero.
func acceptanceProbability(delta int, T float64) float64 {
	if delta <= 0 {
		return 1
	}
	if T == 0 {
		return 0
	}
	return math.Exp(-float64(delta) / T)
}
