package grid

import "fmt"

// Occupy records seg as in use by net key. It fails with ErrSegmentOccupied
// if the segment is already in use by any net (including key itself), and
// ErrOutOfBounds if either endpoint falls outside the grid. On success it
// updates the coordinates set so both endpoints are reported as occupied.
//
// Occupy does not touch the intersection count; callers that route through
// an already-occupied, non-gate coordinate are responsible for accounting
// for the resulting intersection (see package astar and package
// localsearch), then periodically calling Update to self-heal any drift.
func (g *Grid) Occupy(seg Segment, key NetKey) error {
	if !g.InBounds(seg.A) || !g.InBounds(seg.B) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, seg)
	}
	if _, exists := g.wireSegments[seg]; exists {
		return fmt.Errorf("%w: %v", ErrSegmentOccupied, seg)
	}
	g.wireSegments[seg] = key
	g.coordinates[seg.A]++
	g.coordinates[seg.B]++
	return nil
}

// Release removes seg from the occupancy map. It is a no-op if seg was not
// occupied. Endpoints are dropped from the coordinates set only once no
// remaining occupied segment references them.
func (g *Grid) Release(seg Segment) {
	if _, exists := g.wireSegments[seg]; !exists {
		return
	}
	delete(g.wireSegments, seg)
	g.decrefCoordinate(seg.A)
	g.decrefCoordinate(seg.B)
}

func (g *Grid) decrefCoordinate(c Coordinate) {
	n, ok := g.coordinates[c]
	if !ok {
		return
	}
	if n <= 1 {
		delete(g.coordinates, c)
		return
	}
	g.coordinates[c] = n - 1
}

// ReleasePath releases every segment of path, tolerating an empty or nil
// path. No router or optimizer in this module calls it: package localsearch
// replaces a net's occupancy through Update instead.
func (g *Grid) ReleasePath(path Path) error {
	segs, err := path.Segments()
	if err != nil {
		return err
	}
	for _, seg := range segs {
		g.Release(seg)
	}
	return nil
}

// OccupyPath occupies every segment of path under key, rolling back any
// partial occupancy (and returning the first error) if a later segment is
// already taken. This keeps a rejected path's effect on the grid atomic,
// per spec.md's "each rewrite being atomic" requirement.
func (g *Grid) OccupyPath(path Path, key NetKey) error {
	segs, err := path.Segments()
	if err != nil {
		return err
	}
	occupied := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		if err := g.Occupy(seg, key); err != nil {
			for _, done := range occupied {
				g.Release(done)
			}
			return err
		}
		occupied = append(occupied, seg)
	}
	return nil
}

// ComputeCost returns |wire_segments| + 300*intersections. O(1).
func (g *Grid) ComputeCost() int {
	return len(g.wireSegments) + 300*g.intersections
}

// AdjustIntersections adds delta to the intersection counter. Used by
// astar.Solve to fold a committed path's intersection count into the grid
// without a full RecountIntersections; the localsearch optimizers do not
// call it and rely on Update's recount instead.
//
// Panics if the result would be negative: a negative intersection count is
// an invariant violation (spec.md §7), not a recoverable state.
func (g *Grid) AdjustIntersections(delta int) {
	next := g.intersections + delta
	if next < 0 {
		panic(fmt.Sprintf("grid: invariant violation: intersections would go negative (%d + %d)", g.intersections, delta))
	}
	g.intersections = next
}

// RecountIntersections recomputes the intersection count from scratch by
// walking every net's current path and counting, for each non-gate
// coordinate, whether it is touched by two or more distinct nets. A
// coordinate touched by N >= 2 nets still contributes exactly 1, per
// spec.md's invariant that multiplicity beyond one does not matter.
//
// Complexity: O(|paths| * average path length).
func (g *Grid) RecountIntersections() {
	touchedBy := make(map[Coordinate]map[NetKey]struct{})
	for key, net := range g.nets {
		seenInNet := make(map[Coordinate]struct{}, len(net.Path))
		for _, c := range net.Path {
			if g.IsGate(c) {
				continue
			}
			if _, dup := seenInNet[c]; dup {
				continue
			}
			seenInNet[c] = struct{}{}
			keys := touchedBy[c]
			if keys == nil {
				keys = make(map[NetKey]struct{}, 2)
				touchedBy[c] = keys
			}
			keys[key] = struct{}{}
		}
	}

	count := 0
	for _, keys := range touchedBy {
		if len(keys) >= 2 {
			count++
		}
	}
	g.intersections = count
}

// Update rebuilds wire_segments, coordinates, and the intersection count
// from the current set of net paths. Call this after any bulk mutation to
// paths (e.g. the initial A* pass completing, or to self-heal drift after a
// run of incremental Occupy/Release calls).
//
// Returns ErrSegmentOccupied if two distinct nets' paths claim the same
// physical segment, which indicates a bug upstream of Update (Occupy would
// have rejected it had it been applied incrementally).
func (g *Grid) Update() error {
	wireSegments := make(map[Segment]NetKey, len(g.wireSegments))
	coordinates := make(map[Coordinate]int, len(g.coordinates))

	for key, net := range g.nets {
		segs, err := net.Path.Segments()
		if err != nil {
			return fmt.Errorf("grid: update: net %s: %w", key, err)
		}
		for _, seg := range segs {
			if owner, exists := wireSegments[seg]; exists && owner != key {
				return fmt.Errorf("grid: update: %w: %v claimed by %s and %s", ErrSegmentOccupied, seg, owner, key)
			}
			wireSegments[seg] = key
			coordinates[seg.A]++
			coordinates[seg.B]++
		}
	}

	g.wireSegments = wireSegments
	g.coordinates = coordinates
	g.RecountIntersections()
	return nil
}
