// Package runner holds athlete measurements used alongside race pacing.
package runner

import (
	"errors"
	"fmt"

	"runpace/internal/running"
)

// Imperial BMI multiplier for lb/in²
const imperialBMIFactor = 703.0

// ErrInvalidRunner is returned for non-positive measurements
var ErrInvalidRunner = errors.New("runner measurements must be positive")

// Runner is an athlete. Weight and height are in kg and m for the metric
// scale, lb and in for imperial.
type Runner struct {
	Scale  running.Scale
	Weight float64
	Height float64
	Age    int
}

// New creates a runner after checking the measurements
func New(scale running.Scale, weight, height float64, age int) (Runner, error) {
	if weight <= 0 || height <= 0 {
		return Runner{}, fmt.Errorf("%w: weight %v, height %v", ErrInvalidRunner, weight, height)
	}
	if age < 0 {
		return Runner{}, fmt.Errorf("%w: age %d", ErrInvalidRunner, age)
	}
	return Runner{Scale: scale, Weight: weight, Height: height, Age: age}, nil
}

// BMI returns the body mass index
func (r Runner) BMI() float64 {
	bmi := r.Weight / (r.Height * r.Height)
	if r.Scale == running.Imperial {
		bmi *= imperialBMIFactor
	}
	return bmi
}

// BMICategory returns a human-readable BMI classification
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
