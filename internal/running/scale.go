package running

import (
	"fmt"
	"strings"
)

// Scale is a unit system. It fixes the base distance unit and the distance
// of one split.
type Scale struct {
	name          string
	splitDistance int64
	unit          string
	splitUnit     string
}

var (
	// Metric measures distance in meters with 1 km splits.
	Metric = Scale{name: "metric", splitDistance: 1000, unit: "m", splitUnit: "km"}
	// Imperial measures distance in yards with 1 mile splits.
	Imperial = Scale{name: "imperial", splitDistance: 1760, unit: "yd", splitUnit: "mi"}
)

// Name returns "metric" or "imperial"
func (s Scale) Name() string { return s.name }

// SplitDistance returns the distance of one split in base units
func (s Scale) SplitDistance() int64 { return s.splitDistance }

// Unit returns the short label of the base unit ("m" or "yd")
func (s Scale) Unit() string { return s.unit }

// SplitUnit returns the short label of one split ("km" or "mi")
func (s Scale) SplitUnit() string { return s.splitUnit }

func (s Scale) String() string { return s.name }

func (s Scale) valid() bool {
	return s.splitDistance > 0
}

// ParseScale resolves a scale by name
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metric", "km":
		return Metric, nil
	case "imperial", "mi":
		return Imperial, nil
	default:
		return Scale{}, fmt.Errorf("unknown scale %q: must be \"metric\" or \"imperial\"", name)
	}
}
