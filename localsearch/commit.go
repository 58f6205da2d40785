package localsearch

import "github.com/dkuijer/chiproute/grid"

// estimateCost projects the grid's total cost if net's path were replaced
// by candidate, without mutating the grid: it adjusts the current cost by
// the candidate's segment-count delta against the net's current path, plus
// 300 times the walk's own intersectionDelta estimate. The net's old path
// is still fully occupied while this estimate is computed (the walk never
// released it), so the estimate, like the source's, counts a candidate
// coordinate that merely revisits the net's own old route as a new
// intersection; acceptCandidate's subsequent grid.Grid.Update call corrects
// this once the old path is actually released.
func estimateCost(g *grid.Grid, net *grid.Net, candidate grid.Path, intersectionDelta int) int {
	oldSegs, _ := net.Path.Segments()
	newSegs, _ := candidate.Segments()
	segDelta := len(newSegs) - len(oldSegs)
	return g.ComputeCost() + segDelta + 300*intersectionDelta
}

// acceptCandidate commits candidate as net's new path and re-derives the
// grid's occupancy and intersection count from scratch. Returns the
// recomputed, authoritative cost.
func acceptCandidate(g *grid.Grid, net *grid.Net, candidate grid.Path) (int, error) {
	net.Path = candidate
	if err := g.Update(); err != nil {
		return 0, err
	}
	return g.ComputeCost(), nil
}
