package running

import (
	"fmt"
	"strings"
)

// Preset is a standard race distance in both scales
type Preset struct {
	Name   string
	Meters int64
	Yards  int64
}

// Presets lists the standard race distances
var Presets = []Preset{
	{"5k", 5000, 5468},
	{"10k", 10000, 10936},
	{"half", 21098, 23056},
	{"marathon", 42195, 46112},
}

// Distance returns the preset distance in scale's base unit
func (p Preset) Distance(scale Scale) int64 {
	if scale == Imperial {
		return p.Yards
	}
	return p.Meters
}

// LookupPreset finds a preset by name
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown race preset %q", name)
}
