package localsearch

import "errors"

var (
	// ErrNilGrid is returned when Run is called with a nil grid.
	ErrNilGrid = errors.New("localsearch: grid is nil")

	// ErrBadAlpha is a configuration error: exponential cooling requires
	// alpha strictly inside (0, 1), checked before the run starts.
	ErrBadAlpha = errors.New("localsearch: exponential cooling requires alpha in (0, 1)")

	// ErrBadBeta is a configuration error: geometric cooling requires beta
	// strictly inside (0, 1), checked before the run starts.
	ErrBadBeta = errors.New("localsearch: geometric cooling requires beta in (0, 1)")

	// ErrBadTLow is a configuration error: VCF cooling divides by t_lower
	// and therefore requires it strictly positive.
	ErrBadTLow = errors.New("localsearch: vcf cooling requires t_lower > 0")

	// ErrUnknownSchedule is returned when Options names a Schedule this
	// package does not implement.
	ErrUnknownSchedule = errors.New("localsearch: unknown cooling schedule")
)
