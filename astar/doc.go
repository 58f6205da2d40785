// Package astar routes a single net across a grid.Grid using a cost-weighted
// A* search: priority = g + h, where g is the accumulated path cost and h is
// the Manhattan distance remaining to the goal.
//
// Notes on implementation choices:
//
//   - We use a real container/heap min-heap keyed on priority, rather than
//     the bucketed-priority-by-scan structure spec.md describes as an
//     acceptable fallback; spec.md itself recommends the heap as the
//     preferred implementation for larger bucket counts.
//   - A child coordinate already occupied by another net's wire (and not a
//     gate) costs +300 to enter, the same intersection penalty grid.Grid
//     charges per occupied non-gate coordinate touched by more than one net.
//   - Foreign gates block a path only at z <= 2, reserving the layers
//     directly above every gate for routing clearance (confirmed against
//     the original implementation's z <= 2 check; not a guess).
//   - Once a goal is reached, Solve commits the path into g's occupancy
//     (grid.Grid.OccupyPath) and derives the net's intersection delta from
//     g // 300, per spec.md §4.3 — this module's one place that still
//     infers intersections from cost instead of counting them directly; see
//     package localsearch for the explicit counting the optimizers use
//     instead.
package astar
