package running

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// Race is a distance in one scale with an optional duration.
// A Race is immutable once constructed.
type Race struct {
	scale    Scale
	distance int64 // base units of scale
	duration time.Duration
	timed    bool
}

// NewRace creates a race with a known duration
func NewRace(scale Scale, distance int64, duration time.Duration) (Race, error) {
	r, err := NewRaceDistance(scale, distance)
	if err != nil {
		return Race{}, err
	}
	if duration < 0 {
		return Race{}, fmt.Errorf("%w: negative duration %v", ErrInvalidInput, duration)
	}
	r.duration = truncate(duration)
	r.timed = true
	return r, nil
}

// NewRaceDistance creates a race whose duration is not known yet
func NewRaceDistance(scale Scale, distance int64) (Race, error) {
	if !scale.valid() {
		return Race{}, fmt.Errorf("%w: unknown scale", ErrInvalidInput)
	}
	if distance < 0 {
		return Race{}, fmt.Errorf("%w: negative distance %d", ErrInvalidInput, distance)
	}
	return Race{scale: scale, distance: distance}, nil
}

// NewRaceFromPace derives the duration from a target pace per split.
// Full splits cost one pace each; the partial split at the end is prorated
// and truncated to whole seconds.
func NewRaceFromPace(scale Scale, distance int64, pace time.Duration) (Race, error) {
	if pace < 0 {
		return Race{}, fmt.Errorf("%w: negative pace %v", ErrInvalidInput, pace)
	}
	r, err := NewRaceDistance(scale, distance)
	if err != nil {
		return Race{}, err
	}
	d, err := durationFromPace(scale, distance, pace)
	if err != nil {
		return Race{}, err
	}
	r.duration = d
	r.timed = true
	return r, nil
}

// NewRaceFromSplits builds a race from recorded split times. Each split
// covers one split distance, so the distance is len(splits) splits.
// An empty slice gives a zero-distance race.
func NewRaceFromSplits(scale Scale, splits []time.Duration) (Race, error) {
	total, err := sumSplits(splits)
	if err != nil {
		return Race{}, err
	}
	return NewRace(scale, int64(len(splits))*scale.SplitDistance(), total)
}

// Scale returns the unit scale of the race
func (r Race) Scale() Scale { return r.scale }

// Distance returns the race distance in base units
func (r Race) Distance() int64 { return r.distance }

// Duration returns the race duration, or zero if it was never set
func (r Race) Duration() time.Duration { return r.duration }

// HasDuration reports whether a duration was supplied
func (r Race) HasDuration() bool { return r.timed }

// WithDuration returns a copy of the race timed at d
func (r Race) WithDuration(d time.Duration) (Race, error) {
	return NewRace(r.scale, r.distance, d)
}

// Running returns the pacing side of the race
func (r Race) Running() (Running, error) {
	if !r.timed {
		return Running{}, ErrDurationUnset
	}
	return NewRunning(r.duration)
}

// NumSplits returns the number of splits, counting a trailing partial split
func (r Race) NumSplits() (int64, error) {
	if r.distance == 0 {
		return 0, ErrZeroDistance
	}
	split := r.scale.SplitDistance()
	n := r.distance / split
	if r.distance%split > 0 {
		n++
	}
	return n, nil
}

// AveragePace returns the time to cover one split at the average speed,
// truncated to whole seconds
func (r Race) AveragePace() (time.Duration, error) {
	if err := r.checkTimed(); err != nil {
		return 0, err
	}
	// split*secs can exceed int64; divide the 128-bit product
	hi, lo := bits.Mul64(uint64(r.scale.SplitDistance()), uint64(seconds(r.duration)))
	if hi >= uint64(r.distance) {
		return 0, fmt.Errorf("%w: pace of %v over %d %s out of range", ErrInvalidInput, r.duration, r.distance, r.scale.Unit())
	}
	q, _ := bits.Div64(hi, lo, uint64(r.distance))
	if q > uint64(maxSeconds) {
		return 0, fmt.Errorf("%w: pace of %v over %d %s out of range", ErrInvalidInput, r.duration, r.distance, r.scale.Unit())
	}
	return fromSeconds(int64(q))
}

// Speed returns base units per second (m/s or yd/s)
func (r Race) Speed() (float64, error) {
	if err := r.checkTimed(); err != nil {
		return 0, err
	}
	secs := seconds(r.duration)
	if secs == 0 {
		return 0, ErrZeroDuration
	}
	return float64(r.distance) / float64(secs), nil
}

// SpeedPerHour returns splits per hour (km/h or mph)
func (r Race) SpeedPerHour() (float64, error) {
	if err := r.checkTimed(); err != nil {
		return 0, err
	}
	secs := seconds(r.duration)
	if secs == 0 {
		return 0, ErrZeroDuration
	}
	splits := float64(r.distance) / float64(r.scale.SplitDistance())
	return splits / (float64(secs) / secondsPerHour), nil
}

// SpeedMilesHour returns miles per hour. Only defined for Imperial races.
func (r Race) SpeedMilesHour() (float64, error) {
	if r.scale != Imperial {
		return 0, fmt.Errorf("%w: miles per hour on %s race", ErrScaleMismatch, r.scale)
	}
	return r.SpeedPerHour()
}

func (r Race) checkTimed() error {
	if r.distance == 0 {
		return ErrZeroDistance
	}
	if !r.timed {
		return ErrDurationUnset
	}
	return nil
}

const (
	secondsPerHour = 3600
	maxSeconds     = math.MaxInt64 / int64(time.Second)
)

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func truncate(d time.Duration) time.Duration {
	return d.Truncate(time.Second)
}

// fromSeconds converts whole seconds to a Duration, rejecting values
// time.Duration cannot hold
func fromSeconds(secs int64) (time.Duration, error) {
	if secs < 0 || secs > maxSeconds {
		return 0, fmt.Errorf("%w: %d seconds out of range", ErrInvalidInput, secs)
	}
	return time.Duration(secs) * time.Second, nil
}

func durationFromPace(scale Scale, distance int64, pace time.Duration) (time.Duration, error) {
	split := scale.SplitDistance()
	p := seconds(pace)
	full := distance / split
	if p > 0 && full > maxSeconds/p {
		return 0, fmt.Errorf("%w: %d %s at %v overflows", ErrInvalidInput, distance, scale.Unit(), pace)
	}
	// remainder < split and p <= maxSeconds, so the product fits in int64
	secs := full*p + (distance%split)*p/split
	return fromSeconds(secs)
}

func sumSplits(splits []time.Duration) (time.Duration, error) {
	var total time.Duration
	for i, s := range splits {
		if s < 0 {
			return 0, fmt.Errorf("%w: split %d is negative (%v)", ErrInvalidInput, i+1, s)
		}
		s = truncate(s)
		if total > math.MaxInt64-s {
			return 0, fmt.Errorf("%w: splits total overflows at split %d", ErrInvalidInput, i+1)
		}
		total += s
	}
	return total, nil
}
