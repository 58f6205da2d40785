package astar

import (
	"fmt"

	"github.com/dkuijer/chiproute/grid"
)

// directions is the fixed, deterministic enumeration of axis-aligned steps
// tried from every node: X then Y then Z, negative before positive. Keeping
// this order fixed (rather than ranging a map) is what makes Solve's output
// reproducible given the same grid state.
var directions = [6]grid.Coordinate{
	{X: -1}, {X: 1},
	{Y: -1}, {Y: 1},
	{Z: -1}, {Z: 1},
}

// Solve finds a minimum-cost path for the net identified by key on g, using
// A* with priority = g + h (h = Manhattan distance to the goal). On success
// it commits the path's segments into g (grid.Grid.OccupyPath), writes the
// path onto the net, and folds the search's inferred intersection count
// (g // 300, per spec.md §4.3) into g's intersection counter. On failure the
// net and grid are left untouched and ErrNoPath is returned.
func Solve(g *grid.Grid, key grid.NetKey, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	net, ok := g.Net(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNet, key)
	}
	if net.Routed() {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRouted, key)
	}

	cfg := DefaultOptions(g)
	for _, opt := range opts {
		opt(&cfg)
	}

	start, goal := net.Start, net.End
	size := g.Size()

	cameFrom := make(map[grid.Coordinate]grid.Coordinate)
	visited := make(map[grid.Coordinate]bool)
	inQueue := make(map[grid.Coordinate]bool)

	open := &openSet{}
	open.push(start, manhattan3D(start, goal), 0)
	inQueue[start] = true

	popped := 0
	for !open.empty() {
		if popped >= cfg.SearchLimit {
			break
		}
		popped++

		cur := open.pop()
		delete(inQueue, cur.coord)
		if visited[cur.coord] {
			continue
		}
		visited[cur.coord] = true

		if cur.coord == goal {
			path := reconstruct(cameFrom, cur.coord, start)
			if err := g.OccupyPath(path, key); err != nil {
				return nil, fmt.Errorf("astar: commit path for %s: %w", key, err)
			}
			net.Path = path
			g.AdjustIntersections(cur.g / intersectionPenalty)
			return path, nil
		}

		for _, d := range directions {
			child := grid.Coordinate{X: cur.coord.X + d.X, Y: cur.coord.Y + d.Y, Z: cur.coord.Z + d.Z}
			if !inAxisBounds(child, size) {
				continue
			}
			if visited[child] {
				continue
			}
			if blocksForeignGate(g, child, start, goal) {
				continue
			}
			if inQueue[child] {
				continue
			}

			seg, err := grid.MakeSegment(cur.coord, child)
			if err != nil {
				// Every generated child is unit-adjacent by construction;
				// a failure here means directions itself is wrong.
				panic(fmt.Sprintf("astar: non-adjacent step %s -> %s", cur.coord, child))
			}
			if _, occupiedBy := g.SegmentOwner(seg); occupiedBy {
				continue
			}

			childG := cur.g + 1
			if g.IsOccupied(child) && !g.IsGate(child) {
				childG += intersectionPenalty
			}

			cameFrom[child] = cur.coord
			inQueue[child] = true
			open.push(child, childG+manhattan3D(child, goal), childG)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoPath, key)
}

// blocksForeignGate reports whether child sits on a gate other than the
// net's own start/goal, within the z <= 2 clearance band around gates.
func blocksForeignGate(g *grid.Grid, child, start, goal grid.Coordinate) bool {
	if child.Z > gateClearanceZ {
		return false
	}
	gateCoord := grid.Coordinate{X: child.X, Y: child.Y, Z: 0}
	if _, isGate := g.GateAt(gateCoord); !isGate {
		return false
	}
	return gateCoord != start && gateCoord != goal
}

func inAxisBounds(c grid.Coordinate, size grid.Size) bool {
	return c.X >= 0 && c.X <= size.X &&
		c.Y >= 0 && c.Y <= size.Y &&
		c.Z >= 0 && c.Z <= size.Z
}

func manhattan3D(a, b grid.Coordinate) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y) + absInt(a.Z-b.Z)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// reconstruct walks cameFrom backwards from goal to start and returns the
// path in start-to-goal order.
func reconstruct(cameFrom map[grid.Coordinate]grid.Coordinate, goal, start grid.Coordinate) grid.Path {
	path := grid.Path{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			panic(fmt.Sprintf("astar: broken cameFrom chain at %s", cur))
		}
		path = append(path, prev)
		cur = prev
	}
	// path is goal..start; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
