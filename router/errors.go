package router

import "errors"

// Sentinel errors returned by package router.
var (
	// ErrNilGrid is returned by Run when g is nil.
	ErrNilGrid = errors.New("router: grid is nil")

	// ErrUnknownAlgorithm is returned when Config.Algorithm names an
	// algorithm Run does not implement.
	ErrUnknownAlgorithm = errors.New("router: unknown algorithm")

	// ErrBadIterationLimit is a configuration error: Hillclimber and
	// Annealing both require a positive iteration count, checked before the
	// run starts (spec.md §7 "Configuration invalid: fail before the run
	// starts").
	ErrBadIterationLimit = errors.New("router: iteration limit must be positive")
)
