package running

import "errors"

var (
	// ErrInvalidInput is returned when a constructor receives a negative
	// distance, duration, pace or degree.
	ErrInvalidInput = errors.New("invalid input")

	// ErrZeroDistance is returned when a derived metric would divide by a zero distance
	ErrZeroDistance = errors.New("distance must be positive")

	// ErrZeroDuration is returned when speed would divide by a zero duration
	ErrZeroDuration = errors.New("duration must be positive")

	// ErrDurationUnset is returned when a metric needs a duration the race was never given
	ErrDurationUnset = errors.New("race duration is not set")

	// ErrScaleMismatch is returned for scale-specific metrics on the wrong scale
	ErrScaleMismatch = errors.New("operation not supported for this scale")

	// ErrNegativePace is returned when a split schedule would step below zero
	ErrNegativePace = errors.New("schedule pace would be negative")
)
