// Package distance converts between the units used by metric and imperial races.
package distance

import (
	"errors"
	"fmt"
	"math"
)

const (
	MetersPerKm      = 1000.0
	YardsPerMile     = 1760.0
	KmPerMile        = 1.60934
	FeetPerMeter     = 3.28084
	KmhPerMs         = 3.6
	MphPerYardSecond = 2.04545
)

// ErrInvalid is returned for negative or NaN input
var ErrInvalid = errors.New("distance must be a non-negative number")

func check(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, v)
	}
	return nil
}

func multiply(v, factor float64) (float64, error) {
	if err := check(v); err != nil {
		return 0, err
	}
	return v * factor, nil
}

func divide(v, divisor float64) (float64, error) {
	if err := check(v); err != nil {
		return 0, err
	}
	return v / divisor, nil
}

// ToKm converts meters to kilometers
func ToKm(meters float64) (float64, error) { return divide(meters, MetersPerKm) }

// ToMile converts yards to miles
func ToMile(yards float64) (float64, error) { return divide(yards, YardsPerMile) }

// MileToKm converts miles to kilometers
func MileToKm(miles float64) (float64, error) { return multiply(miles, KmPerMile) }

// KmToMile converts kilometers to miles
func KmToMile(km float64) (float64, error) { return divide(km, KmPerMile) }

// MeterToFeet converts meters to feet
func MeterToFeet(meters float64) (float64, error) { return multiply(meters, FeetPerMeter) }

// FeetToMeter converts feet to meters
func FeetToMeter(feet float64) (float64, error) { return divide(feet, FeetPerMeter) }

// ToKmH converts meters per second to kilometers per hour
func ToKmH(ms float64) (float64, error) { return multiply(ms, KmhPerMs) }

// ToMph converts yards per second to miles per hour
func ToMph(ys float64) (float64, error) { return multiply(ys, MphPerYardSecond) }
