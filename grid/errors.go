package grid

import "errors"

// Sentinel errors returned by package grid.
var (
	// ErrEmptySize indicates a grid was constructed with a non-positive X or
	// Y extent, or with Z below 2.
	ErrEmptySize = errors.New("grid: size must have X, Y > 0 and Z >= 2")

	// ErrDuplicateGate indicates two gates were supplied with the same uid.
	ErrDuplicateGate = errors.New("grid: duplicate gate uid")

	// ErrGateOutOfBounds indicates a gate coordinate falls outside the grid extents.
	ErrGateOutOfBounds = errors.New("grid: gate coordinate out of bounds")

	// ErrUnknownGate indicates a net references a gate uid that was not loaded.
	ErrUnknownGate = errors.New("grid: net references unknown gate uid")

	// ErrDuplicateNet indicates two nets were supplied with the same key.
	ErrDuplicateNet = errors.New("grid: duplicate net key")

	// ErrNotAdjacent indicates make_segment was called on two coordinates
	// that do not differ by exactly 1 along exactly one axis.
	ErrNotAdjacent = errors.New("grid: coordinates are not unit-adjacent")

	// ErrSegmentOccupied indicates Occupy was called on a segment already in use.
	// This signals an invariant violation: callers must never attempt to
	// occupy a segment without first checking availability.
	ErrSegmentOccupied = errors.New("grid: segment already occupied")

	// ErrUnknownNet indicates an operation referenced a net key not present in the grid.
	ErrUnknownNet = errors.New("grid: unknown net key")

	// ErrOutOfBounds indicates a coordinate lies outside the grid's extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
