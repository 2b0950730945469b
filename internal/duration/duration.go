// Package duration builds and formats whole-second race durations.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrNegative is returned when a duration component is negative
var ErrNegative = errors.New("duration components must not be negative")

// ErrOutOfRange is returned when the total does not fit in a time.Duration
var ErrOutOfRange = errors.New("duration out of range")

const maxSeconds = math.MaxInt64 / int64(time.Second)

// Options controls Format output
type Options struct {
	// IncludeHoursAlways prints the hour segment even when it is zero
	IncludeHoursAlways bool
}

// ToDuration creates a duration from hours, minutes and seconds
func ToDuration(hours, minutes, seconds int) (time.Duration, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("%w: %d:%d:%d", ErrNegative, hours, minutes, seconds)
	}
	h, m, sec := int64(hours), int64(minutes), int64(seconds)
	if h > maxSeconds/3600 || m > maxSeconds/60 || sec > maxSeconds {
		return 0, fmt.Errorf("%w: %d:%d:%d", ErrOutOfRange, hours, minutes, seconds)
	}
	total := h*3600 + m*60
	if total > maxSeconds-sec {
		return 0, fmt.Errorf("%w: %d:%d:%d", ErrOutOfRange, hours, minutes, seconds)
	}
	return time.Duration(total+sec) * time.Second, nil
}

// Seconds returns d in whole seconds, truncated
func Seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// Format renders d as MM:SS, or HH:MM:SS when it has hours or opts asks for them.
// Hours are not capped, so 135h59m1s renders as 135:59:01.
func Format(d time.Duration, opts Options) string {
	sign := ""
	secs := Seconds(d)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	hours := secs / 3600
	mins := (secs % 3600) / 60
	secs = secs % 60

	if hours == 0 && !opts.IncludeHoursAlways {
		return fmt.Sprintf("%s%02d:%02d", sign, mins, secs)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, mins, secs)
}

// FormatPace renders a per-split pace as M:SS like "5:41"
func FormatPace(d time.Duration) string {
	secs := Seconds(d)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Parse reads "H:MM:SS", "MM:SS" or "SS". Go duration strings such as
// "4h5m19s" are accepted too.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}

	if strings.ContainsAny(s, "hms") {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("parsing duration %q: %w", s, err)
		}
		if d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrNegative, s)
		}
		return d.Truncate(time.Second), nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("parsing duration %q: too many segments", s)
	}

	// Right-align into hours, minutes, seconds
	values := [3]int{}
	offset := 3 - len(parts)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("parsing duration %q: %w", s, err)
		}
		values[offset+i] = v
	}

	return ToDuration(values[0], values[1], values[2])
}
