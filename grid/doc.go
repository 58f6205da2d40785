// Package grid models the shared 3D routing surface for chip-layout wiring:
// gates at fixed coordinates, nets that must be connected, and the segment
// occupancy that every router and optimizer in this module reads and writes.
//
// What
//
//   - Coordinate: a bounded (x, y, z) triple.
//   - Segment: a canonical, unordered unit-length connection between two
//     adjacent coordinates. Canonicalization (ordering by endpoint magnitude)
//     is a hard invariant — without it the occupancy map double-counts the
//     same physical wire.
//   - Gate: an immutable terminal at layer z=0.
//   - Net: an unordered pair of gates, its minimal Manhattan length, and its
//     current routed path (if any).
//   - Grid: owns the gate set, the per-net path map, the segment-occupancy
//     map, the intersection count, and the derived cost.
//
// Why
//
//   - Every net's cost is coupled to every other net's through the shared
//     occupancy map; Grid is the single point where that coupling is
//     enforced and measured.
//
// Cost model
//
//	cost = |wire_segments| + 300 * intersections
//
// Determinism
//
//	Grid holds no RNG and no wall-clock state; the same sequence of
//	Occupy/Release/Update calls always produces the same cost.
//
// Concurrency
//
//	Grid is not safe for concurrent mutation. Exactly one goroutine (the A*
//	router for the duration of one net's search, or one optimizer loop) may
//	mutate a Grid at a time; see package astar and package localsearch.
package grid
