package astar

import "errors"

var (
	// ErrNilGrid is returned by Solve when g is nil.
	ErrNilGrid = errors.New("astar: nil grid")

	// ErrUnknownNet is returned by Solve when key does not name a net on g.
	ErrUnknownNet = errors.New("astar: unknown net")

	// ErrAlreadyRouted is returned by Solve when the requested net already
	// has a path; Solve never overwrites an existing route, to avoid
	// silently leaking the old path's occupancy.
	ErrAlreadyRouted = errors.New("astar: net already routed")

	// ErrNoPath is returned by Solve when the open set empties (or the
	// search limit is reached) before the goal is found. The net is left
	// unrouted; the grid is left unmodified.
	ErrNoPath = errors.New("astar: no path found")
)
