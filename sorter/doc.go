// Package sorter provides total orderings over a net collection, used to
// seed the A* router's routing order and to sequence which net a local
// search optimizer rewrites next.
//
// What
//
//   - ByLength: ascending/descending minimal Manhattan length.
//   - Random: a uniform shuffle (Descending is ignored).
//   - ByMiddleFirst: ascending/descending distance of both endpoints from
//     the grid's 2D center.
//   - ByGateOccupancy: ascending/descending gate busyness, where a gate's
//     occupancy is how many nets in the collection use it as an endpoint;
//     busiest-gates-first only with Descending set, since the zero-value
//     Options sorts ascending like every other sorter.
//   - ByExpectedIntersections: ascending-by-default fewest-expected-crossings
//     first, using a 2D cross-product test between straight-line
//     gate-to-gate projections.
//
// Determinism
//
//	Go map iteration order is randomized; every sorter first canonicalizes
//	its input by NetKey before applying its own ordering, so that ties
//	resolve the same way across runs given the same (nets, options). Only
//	Random consumes entropy, and only from the *rand.Rand passed in
//	Options.RNG — never a package-level source.
package sorter
