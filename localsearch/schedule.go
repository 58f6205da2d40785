package localsearch

import "math"

// Schedule names one of the six temperature update rules Annealing can use.
type Schedule string

const (
	LinearSchedule      Schedule = "linear"
	LogarithmicSchedule Schedule = "logarithmic"
	GeometricSchedule   Schedule = "geometric"
	LundyMeesSchedule   Schedule = "lundy_mees"
	VCFSchedule         Schedule = "vcf"
	ExponentialSchedule Schedule = "exponential"
)

// ScheduleParams holds the tunable constants the six schedules draw from.
// Not every field applies to every schedule; DefaultScheduleParams picks
// sensible defaults per schedule.
type ScheduleParams struct {
	K     float64 // linear: flat step subtracted each iteration
	TLow  float64 // linear: floor temperature; vcf: must be > 0
	Beta  float64 // geometric, lundy_mees, vcf: decay constant
	Alpha float64 // exponential: multiplicative decay, must be in (0, 1)
}

// DefaultScheduleParams returns the constants the source uses for schedule,
// adjusting t_lower's default for vcf (which divides by it, so it cannot
// default to linear's 0).
func DefaultScheduleParams(schedule Schedule) ScheduleParams {
	p := ScheduleParams{K: 20, TLow: 0, Beta: 0.9, Alpha: 0.98}
	if schedule == VCFSchedule {
		p.TLow = 1
	}
	return p
}

// ValidateSchedule checks schedule and its params against the
// constraints spec.md §4.5 states explicitly (exponential's alpha and
// geometric's beta must lie strictly inside (0, 1); vcf's t_lower must be
// positive since it is a divisor), without running anything. Exported so
// a caller like package router can fail a misconfigured annealing run
// before it mutates any grid state (spec.md §7 "Configuration invalid:
// fail before the run starts").
func ValidateSchedule(schedule Schedule, p ScheduleParams) error {
	return p.validate(schedule)
}

// validate checks the constraints spec.md states explicitly: exponential's
// alpha and geometric's beta must lie strictly inside (0, 1), and vcf's
// t_lower must be positive since it is a divisor.
func (p ScheduleParams) validate(schedule Schedule) error {
	switch schedule {
	case LinearSchedule, LogarithmicSchedule, LundyMeesSchedule:
		// No constraints beyond the defaults.
	case ExponentialSchedule:
		if p.Alpha <= 0 || p.Alpha >= 1 {
			return ErrBadAlpha
		}
	case GeometricSchedule:
		if p.Beta <= 0 || p.Beta >= 1 {
			return ErrBadBeta
		}
	case VCFSchedule:
		if p.TLow <= 0 {
			return ErrBadTLow
		}
	default:
		return ErrUnknownSchedule
	}
	return nil
}

// cool advances a temperature by one step under schedule. t0 is the run's
// starting temperature, T the temperature entering this step, and i the
// 1-based iteration count. Panics on an unrecognized schedule: ScheduleParams.validate
// is responsible for rejecting that before a run ever calls cool.
func cool(schedule Schedule, p ScheduleParams, T, t0 float64, i int) float64 {
	switch schedule {
	case LinearSchedule:
		next := T - p.K
		if next <= p.TLow {
			return p.TLow
		}
		return next
	case LogarithmicSchedule:
		return T / (1 + math.Log(1+float64(i)))
	case GeometricSchedule:
		// T_i = beta^i * T0, a direct function of the starting temperature
		// rather than a recurrence on the previous step.
		return math.Pow(p.Beta, float64(i)) * t0
	case LundyMeesSchedule:
		return T / (1 + p.Beta*T)
	case VCFSchedule:
		beta := (t0 - p.TLow) / (float64(i) * t0 * p.TLow)
		return T / (1 + beta*T)
	case ExponentialSchedule:
		return T * p.Alpha
	default:
		panic("localsearch: unknown cooling schedule " + string(schedule))
	}
}

// cooler tracks a running temperature under a schedule across iterations.
type cooler struct {
	schedule  Schedule
	params    ScheduleParams
	t0        float64
	current   float64
	iteration int
}

func newCooler(schedule Schedule, params ScheduleParams, t0 float64) *cooler {
	return &cooler{schedule: schedule, params: params, t0: t0, current: t0}
}

func (c *cooler) temperature() float64 { return c.current }

// advance applies one cooling step and returns the new temperature. Never
// lets the temperature go negative.
func (c *cooler) advance() float64 {
	c.iteration++
	next := cool(c.schedule, c.params, c.current, c.t0, c.iteration)
	if next < 0 {
		next = 0
	}
	c.current = next
	return c.current
}
