package sorter

import (
	"sort"

	"github.com/dkuijer/chiproute/grid"
)

// ByLength orders nets by grid.Net.MinimalLength, ascending unless
// opts.Descending. The sort is stable: two nets of equal length keep their
// relative canonicalOrder position (testable property #6).
func ByLength(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net {
	out := canonicalOrder(nets)
	sort.SliceStable(out, func(i, j int) bool {
		if opts.Descending {
			return out[i].MinimalLength > out[j].MinimalLength
		}
		return out[i].MinimalLength < out[j].MinimalLength
	})
	return out
}

// Random returns nets in a uniform random order drawn from opts.RNG.
// opts.Descending is ignored, matching random_sort's signature in the
// original implementation.
func Random(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net {
	out := canonicalOrder(nets)
	opts.RNG.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ByMiddleFirst orders nets by the sum of Manhattan distances from both
// endpoints to the grid's 2D center (⌊X/2⌋, ⌊Y/2⌋), ascending unless
// opts.Descending.
func ByMiddleFirst(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net {
	midX, midY := opts.Size.X/2, opts.Size.Y/2
	out := canonicalOrder(nets)

	distance := func(n *grid.Net) int {
		return absInt(midX-n.Start.X) + absInt(midY-n.Start.Y) +
			absInt(midX-n.End.X) + absInt(midY-n.End.Y)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := distance(out[i]), distance(out[j])
		if opts.Descending {
			return di > dj
		}
		return di < dj
	})
	return out
}

// ByGateOccupancy orders nets by occ(start) + occ(end) - 2, where occ(c) is
// how many nets in the collection have c as an endpoint, ascending unless
// opts.Descending. Busiest-first order is produced only when
// opts.Descending is true; the zero-value Options sorts least-busy first.
func ByGateOccupancy(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net {
	out := canonicalOrder(nets)

	occ := make(map[grid.Coordinate]int, len(out)*2)
	for _, n := range out {
		occ[n.Start]++
		occ[n.End]++
	}

	busyness := make(map[grid.NetKey]int, len(out))
	for _, n := range out {
		busyness[n.Key] = occ[n.Start] + occ[n.End] - 2
	}

	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := busyness[out[i].Key], busyness[out[j].Key]
		if opts.Descending {
			return bi > bj
		}
		return bi < bj
	})
	return out
}

// ByExpectedIntersections counts, for every net, how many of the other
// nets' straight-line gate-to-gate segments cross its own in 2D (via the
// cross-product sign test in spec.md §4.2), stores the result on
// grid.Net.ExpIntersections, then orders ascending (fewest expected
// crossings first) unless opts.Descending.
//
// ExpIntersections is recomputed from scratch on every call: unlike the
// original's per-net attribute, nothing here accumulates across repeated
// calls within a single routing run.
func ByExpectedIntersections(nets map[grid.NetKey]*grid.Net, opts Options) []*grid.Net {
	out := canonicalOrder(nets)

	for _, n := range out {
		n.ExpIntersections = 0
	}
	for i, n := range out {
		for j, other := range out {
			if i == j {
				continue
			}
			if crosses(n, other) {
				n.ExpIntersections++
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if opts.Descending {
			return out[i].ExpIntersections > out[j].ExpIntersections
		}
		return out[i].ExpIntersections < out[j].ExpIntersections
	})
	return out
}

// crosses reports whether the straight-line 2D segments from n.Start to
// n.End and from other.Start to other.End cross, via two opposite-sign
// cross-product tests.
func crosses(n, other *grid.Net) bool {
	ox0, oy0 := other.Start.X, other.Start.Y
	ox1, oy1 := other.End.X, other.End.Y
	x0, y0 := n.Start.X, n.Start.Y
	x1, y1 := n.End.X, n.End.Y

	p0 := (oy1-oy0)*(ox1-x0) - (ox1-ox0)*(oy1-y0)
	p1 := (oy1-oy0)*(ox1-x1) - (ox1-ox0)*(oy1-y1)
	p2 := (y1-y0)*(x1-ox0) - (x1-x0)*(y1-oy0)
	p3 := (y1-y0)*(x1-ox1) - (x1-x0)*(y1-oy1)

	return p0*p1 < 0 && p2*p3 < 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
