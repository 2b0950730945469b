package running

import (
	"fmt"
	"time"
)

// Running is the time spent covering a race, kept apart from the distance
// so one effort can be evaluated against different races.
type Running struct {
	duration time.Duration
}

// NewRunning creates a running effort of the given duration
func NewRunning(duration time.Duration) (Running, error) {
	if duration < 0 {
		return Running{}, fmt.Errorf("%w: negative duration %v", ErrInvalidInput, duration)
	}
	return Running{duration: truncate(duration)}, nil
}

// NewRunningFromPace derives the duration needed to cover race at pace
func NewRunningFromPace(race Race, pace time.Duration) (Running, error) {
	r, err := NewRaceFromPace(race.Scale(), race.Distance(), pace)
	if err != nil {
		return Running{}, err
	}
	return Running{duration: r.Duration()}, nil
}

// NewRunningFromSplits sums recorded split times
func NewRunningFromSplits(splits []time.Duration) (Running, error) {
	total, err := sumSplits(splits)
	if err != nil {
		return Running{}, err
	}
	return Running{duration: total}, nil
}

// Duration returns the elapsed time
func (r Running) Duration() time.Duration { return r.duration }

// On times race with this effort's duration
func (r Running) On(race Race) (Race, error) {
	return race.WithDuration(r.duration)
}

// AveragePace returns the average pace per split over race
func (r Running) AveragePace(race Race) (time.Duration, error) {
	timed, err := r.On(race)
	if err != nil {
		return 0, err
	}
	return timed.AveragePace()
}

// Speed returns base units per second over race
func (r Running) Speed(race Race) (float64, error) {
	timed, err := r.On(race)
	if err != nil {
		return 0, err
	}
	return timed.Speed()
}

// SpeedMilesHour returns miles per hour over an Imperial race
func (r Running) SpeedMilesHour(race Race) (float64, error) {
	timed, err := r.On(race)
	if err != nil {
		return 0, err
	}
	return timed.SpeedMilesHour()
}

// Splits returns race's splits all at the average pace
func (r Running) Splits(race Race) ([]time.Duration, error) {
	timed, err := r.On(race)
	if err != nil {
		return nil, err
	}
	return Splits(timed)
}

// SplitsWithPace returns race's splits all at pace. The effort's own
// duration plays no part; it forwards to the package-level SplitsWithPace.
func (r Running) SplitsWithPace(race Race, pace time.Duration) ([]time.Duration, error) {
	return SplitsWithPace(race, pace)
}

// NegativeSplits returns a slow-to-fast schedule over race
func (r Running) NegativeSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	timed, err := r.On(race)
	if err != nil {
		return nil, err
	}
	return NegativeSplits(timed, degree)
}

// PositiveSplits returns a fast-to-slow schedule over race
func (r Running) PositiveSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	timed, err := r.On(race)
	if err != nil {
		return nil, err
	}
	return PositiveSplits(timed, degree)
}
