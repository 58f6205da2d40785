// Package localsearch implements the two single-net rewrite optimizers that
// run after an initial A* pass has routed every net: Hillclimber (mostly
// strict acceptance) and Annealing (Boltzmann acceptance of worsening moves
// under a cooling schedule). Both share one bounded random walk to propose
// candidate paths and one commit/rollback discipline to apply or discard
// them.
//
// Notes on implementation choices:
//
//   - The bounded random walk is a pure proposal: unlike the source (which
//     merges a successful walk's segments into the grid immediately, before
//     the caller has decided whether to keep it), this package only mutates
//     Grid on an ACCEPTED rewrite, via grid.Grid.Update. This is the "per-
//     rewrite undo log" spec.md's design notes recommend in place of the
//     source's whole-grid snapshotting, and it keeps a rejected proposal
//     from ever touching the grid's occupancy.
//   - A rewrite's rejected old path is never detached from the grid, so
//     nothing needs releasing on rejection; on acceptance, Update both
//     releases the old path's segments and commits the new ones, and
//     recomputes intersections from scratch rather than trusting an
//     incrementally-tracked estimate.
//   - The acceptance counter (attempts_without_improvement) is a single
//     counter for the whole run, not one per net, matching the source: the
//     "every 5th attempt allows a lateral move" cadence spans every net's
//     attempts cumulatively.
//   - Six cooling schedules are implemented exactly as spec.md's formulas
//     state; geometric is computed directly from T0 and the iteration
//     count rather than compounding on the previous temperature, per
//     spec.md's own stated formula (the source's call sites disagreed with
//     each other on this).
package localsearch
