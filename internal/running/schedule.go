package running

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleKind selects how pace is distributed across splits
type ScheduleKind int

const (
	Uniform ScheduleKind = iota
	Negative
	Positive
)

func (k ScheduleKind) String() string {
	switch k {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("ScheduleKind(%d)", int(k))
	}
}

// ParseScheduleKind resolves a schedule kind by name
func ParseScheduleKind(name string) (ScheduleKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform", "even":
		return Uniform, nil
	case "negative":
		return Negative, nil
	case "positive":
		return Positive, nil
	default:
		return Uniform, fmt.Errorf("unknown schedule %q: must be uniform, negative or positive", name)
	}
}

// Schedule builds the split schedule of the given kind. degree is ignored
// for Uniform.
func Schedule(race Race, k ScheduleKind, degree time.Duration) ([]time.Duration, error) {
	switch k {
	case Negative:
		return NegativeSplits(race, degree)
	case Positive:
		return PositiveSplits(race, degree)
	case Uniform:
		return Splits(race)
	default:
		return nil, fmt.Errorf("%w: unknown schedule kind %d", ErrInvalidInput, int(k))
	}
}

// Splits returns one average-pace entry per split
func Splits(race Race) ([]time.Duration, error) {
	pace, err := race.AveragePace()
	if err != nil {
		return nil, err
	}
	return SplitsWithPace(race, pace)
}

// SplitsWithPace returns one entry per split, each equal to pace
func SplitsWithPace(race Race, pace time.Duration) ([]time.Duration, error) {
	if pace < 0 {
		return nil, fmt.Errorf("%w: negative pace %v", ErrInvalidInput, pace)
	}
	n, err := race.NumSplits()
	if err != nil {
		return nil, err
	}
	splits := make([]time.Duration, n)
	for i := range splits {
		splits[i] = truncate(pace)
	}
	return splits, nil
}

// NegativeSplits starts degree seconds slower than the average pace and
// gets one second faster every block of splits.
func NegativeSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	return blockSplits(race, degree, -1)
}

// PositiveSplits starts degree seconds faster than the average pace and
// gets one second slower every block of splits.
func PositiveSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	return blockSplits(race, degree, +1)
}

// blockSplits holds each plateau pace for block splits, where block is the
// split count divided by the number of plateaus (2*degree+1). The step
// happens before the split is appended, so the first split of a block
// already carries the new pace. Splits left over by the division extend
// the final plateaus. With fewer splits than plateaus block is 0: the
// counter matches before the first split, the pace steps once and then
// holds for the whole race.
func blockSplits(race Race, degree time.Duration, step int64) ([]time.Duration, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %v", ErrInvalidInput, degree)
	}
	avg, err := race.AveragePace()
	if err != nil {
		return nil, err
	}
	n, err := race.NumSplits()
	if err != nil {
		return nil, err
	}

	deg := seconds(degree)
	variation := 2*deg + 1
	block := n / variation

	pace := seconds(avg) - step*deg
	if pace < 0 {
		return nil, fmt.Errorf("%w: average pace %v minus degree %v", ErrNegativePace, avg, degree)
	}

	splits := make([]time.Duration, 0, n)
	var count int64
	for i := int64(0); i < n; i++ {
		if count == block {
			pace += step
			count = 0
		}
		if pace < 0 {
			return nil, fmt.Errorf("%w: at split %d", ErrNegativePace, i+1)
		}
		d, err := fromSeconds(pace)
		if err != nil {
			return nil, err
		}
		splits = append(splits, d)
		count++
	}
	return splits, nil
}

// Total sums a schedule
func Total(splits []time.Duration) time.Duration {
	var total time.Duration
	for _, s := range splits {
		total += s
	}
	return total
}
