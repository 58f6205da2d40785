package localsearch

import (
	"math/rand"

	"github.com/dkuijer/chiproute/grid"
)

// maxFailedSteps bounds how many illegal single-step draws a whole walk
// tolerates before giving up entirely. This counter is cumulative across
// the whole walk, not reset per step: the source never resets it either
// (new_attempts is declared once, outside the step loop).
const maxFailedSteps = 10

// boundedRandomWalk proposes a candidate path from start to dest by taking
// up to maxLength random, weighted-axis steps (spec.md §4.6). It never
// mutates g: every legality check (segment already occupied, coordinate
// already visited this walk, out of bounds, blocks a foreign gate) is
// read-only, and the caller decides whether to commit the result.
//
// Arrival is checked before each step, not after the last one: a walk whose
// maxLength-th step lands on dest is still reported as a failure, so a
// successful candidate has at most maxLength-1 segments.
//
// Returns ok=false if the walk exhausts its step budget, or its cumulative
// failed-step budget, without reaching dest. On success it also returns
// the number of non-gate coordinates the candidate touches that the grid
// already reports as occupied (an estimate of the intersections the
// rewrite would add), for use in the caller's accept/reject cost
// comparison; the caller recomputes the true count via grid.Grid.Update
// once a rewrite is actually accepted.
func boundedRandomWalk(g *grid.Grid, start, dest grid.Coordinate, maxLength int, rng *rand.Rand) (path grid.Path, intersectionDelta int, ok bool) {
	size := g.Size()
	inPath := map[grid.Coordinate]bool{}
	localSegs := map[grid.Segment]struct{}{}

	cur := start
	currentLength := 0
	failedSteps := 0
	for currentLength < maxLength {
		path = append(path, cur)
		inPath[cur] = true

		if cur == dest {
			return path, intersectionDelta, true
		}

		next, stepped := findSmartestStep(g, cur, dest, size, inPath, rng, &failedSteps)
		if !stepped {
			return nil, 0, false
		}

		seg, err := grid.MakeSegment(cur, next)
		if err != nil {
			panic("localsearch: findSmartestStep produced a non-adjacent step")
		}
		if _, occupied := g.SegmentOwner(seg); occupied {
			return nil, 0, false
		}
		if _, used := localSegs[seg]; used {
			return nil, 0, false
		}
		localSegs[seg] = struct{}{}

		if !g.IsGate(next) && g.IsOccupied(next) {
			intersectionDelta++
		}

		cur = next
		currentLength++
	}
	return nil, 0, false
}

// findSmartestStep picks one weighted-random axis-aligned step from cur,
// retrying against legality checks until one succeeds or failedSteps (a
// counter shared across the whole walk, not just this step) exceeds
// maxFailedSteps. At z=0, axes x and y are twice as likely to be chosen as
// z (weights [2, 2, 1]), and a z pick always moves up (+1), never down:
// layer 0 is reserved for gates, so a step away from it only ever goes
// further from it. Above z=0, all three axes and both directions are
// equally likely.
func findSmartestStep(g *grid.Grid, cur, dest grid.Coordinate, size grid.Size, inPath map[grid.Coordinate]bool, rng *rand.Rand, failedSteps *int) (grid.Coordinate, bool) {
	for {
		next := randomStep(cur, rng)
		if legalStep(g, next, dest, size, inPath) {
			return next, true
		}
		*failedSteps++
		if *failedSteps > maxFailedSteps {
			return grid.Coordinate{}, false
		}
	}
}

func randomStep(cur grid.Coordinate, rng *rand.Rand) grid.Coordinate {
	next := cur
	if cur.Z == 0 {
		switch weightedAxis(rng) {
		case 0:
			next.X += randSign(rng)
		case 1:
			next.Y += randSign(rng)
		case 2:
			next.Z++
		}
		return next
	}
	switch rng.Intn(3) {
	case 0:
		next.X += randSign(rng)
	case 1:
		next.Y += randSign(rng)
	case 2:
		next.Z += randSign(rng)
	}
	return next
}

// weightedAxis draws axis 0 (x) or 1 (y) with probability 2/5 each and axis
// 2 (z) with probability 1/5, matching the source's [2, 2, 1] weighting.
func weightedAxis(rng *rand.Rand) int {
	switch n := rng.Intn(5); {
	case n < 2:
		return 0
	case n < 4:
		return 1
	default:
		return 2
	}
}

func randSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// legalStep rejects a proposed coordinate if it revisits this walk's own
// path, falls outside the grid's x/y/z extents, or lands on a foreign
// gate's footprint at layer 0 (gates exist only at z=0, so a step through
// z=1 or above directly over a gate is not blocked here, matching the
// source's set membership test against (x, y, 0) tuples). The upper z
// bound check is this package's own addition: the source only ever checks
// x/y bounds here, leaving z unbounded above, which this grid's typed
// bounds would otherwise surface as a fatal ErrOutOfBounds from Occupy
// instead of an ordinary rejected step.
func legalStep(g *grid.Grid, next, dest grid.Coordinate, size grid.Size, inPath map[grid.Coordinate]bool) bool {
	if inPath[next] {
		return false
	}
	if next.X < 0 || next.X > size.X {
		return false
	}
	if next.Y < 0 || next.Y > size.Y {
		return false
	}
	if next.Z < 0 || next.Z > size.Z {
		return false
	}
	if next.Z == 0 && next != dest && g.IsGate(next) {
		return false
	}
	return true
}
