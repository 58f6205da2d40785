package astar

import "github.com/dkuijer/chiproute/grid"

// intersectionPenalty is the cost of entering an already-occupied, non-gate
// coordinate; it mirrors grid's own cost formula (|segments| + 300*intersections)
// so that g accumulated during search stays consistent with grid.Grid.ComputeCost.
const intersectionPenalty = 300

// gateClearanceZ is the maximum z at which a foreign gate still blocks a
// path, reserving the layers directly above every gate for detours.
const gateClearanceZ = 2

// Options configures a single Solve call.
type Options struct {
	// SearchLimit caps the number of nodes popped from the open set before
	// Solve gives up with ErrNoPath, guarding against runaway search on a
	// pathological grid. Zero means DefaultOptions picks one from the
	// grid's volume.
	SearchLimit int
}

// Option mutates an Options in place.
type Option func(*Options)

// WithSearchLimit overrides the default search node budget. Panics if limit
// is not positive: a non-positive search limit can never find a path and is
// a caller bug, not a runtime condition.
func WithSearchLimit(limit int) Option {
	if limit <= 0 {
		panic("astar: WithSearchLimit requires limit > 0")
	}
	return func(o *Options) { o.SearchLimit = limit }
}

// DefaultOptions returns the Options Solve uses absent overrides, sized to
// g's volume. Solve enqueues each coordinate at most once, so the volume
// already bounds the number of pops; the factor of 4 is spare headroom.
func DefaultOptions(g *grid.Grid) Options {
	size := g.Size()
	volume := (size.X + 1) * (size.Y + 1) * (size.Z + 1)
	return Options{SearchLimit: volume * 4}
}
