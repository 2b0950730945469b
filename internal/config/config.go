package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"runpace/internal/duration"
	"runpace/internal/running"
)

// Config represents the application configuration
type Config struct {
	LogLevel string         `koanf:"log_level"`
	Race     RaceConfig     `koanf:"race"`
	Schedule ScheduleConfig `koanf:"schedule"`
	Athlete  AthleteConfig  `koanf:"athlete"`
	Display  DisplayConfig  `koanf:"display"`
}

// RaceConfig describes the race to pace. Meters and Yards override the
// preset distance for their scale when set.
type RaceConfig struct {
	Preset   string `koanf:"preset"`
	Meters   int64  `koanf:"meters"`
	Yards    int64  `koanf:"yards"`
	Duration string `koanf:"duration"`
}

// ScheduleConfig selects the split schedule
type ScheduleConfig struct {
	Kind   string `koanf:"kind"`
	Degree int    `koanf:"degree"` // seconds
}

// AthleteConfig holds optional athlete measurements for the BMI line
type AthleteConfig struct {
	Scale  string  `koanf:"scale"`
	Weight float64 `koanf:"weight"`
	Height float64 `koanf:"height"`
	Age    int     `koanf:"age"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	IncludeHoursAlways bool `koanf:"include_hours_always"`
	Chart              bool `koanf:"chart"`
	ChartHeight        int  `koanf:"chart_height"`
}

// ErrNoConfig is returned when an explicitly requested config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration: a 4 hour marathon
// with 5 second negative splits
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Race: RaceConfig{
			Preset:   "marathon",
			Duration: "4:00:00",
		},
		Schedule: ScheduleConfig{
			Kind:   "negative",
			Degree: 5,
		},
		Athlete: AthleteConfig{
			Scale: "metric",
		},
		Display: DisplayConfig{
			Chart:       true,
			ChartHeight: 8,
		},
	}
}

// Validate checks that every field can be turned into race inputs
func (c *Config) Validate() error {
	if _, err := c.RaceDuration(); err != nil {
		return fmt.Errorf("race.duration: %w", err)
	}
	if c.Race.Meters < 0 {
		return fmt.Errorf("race.meters must not be negative, got %d", c.Race.Meters)
	}
	if c.Race.Yards < 0 {
		return fmt.Errorf("race.yards must not be negative, got %d", c.Race.Yards)
	}
	if c.Race.Meters == 0 || c.Race.Yards == 0 {
		if _, err := running.LookupPreset(c.Race.Preset); err != nil {
			return fmt.Errorf("race.preset: %w", err)
		}
	}

	if _, err := c.ScheduleKind(); err != nil {
		return fmt.Errorf("schedule.kind: %w", err)
	}
	if c.Schedule.Degree < 0 {
		return fmt.Errorf("schedule.degree must not be negative, got %d", c.Schedule.Degree)
	}

	if _, err := running.ParseScale(c.Athlete.Scale); err != nil {
		return fmt.Errorf("athlete.scale: %w", err)
	}
	if c.Athlete.Weight < 0 || c.Athlete.Height < 0 {
		return errors.New("athlete.weight and athlete.height must not be negative")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}

	return nil
}

// RaceDuration parses the configured target duration
func (c *Config) RaceDuration() (time.Duration, error) {
	return duration.Parse(c.Race.Duration)
}

// ScheduleKind parses the configured schedule kind
func (c *Config) ScheduleKind() (running.ScheduleKind, error) {
	return running.ParseScheduleKind(c.Schedule.Kind)
}

// Degree returns the schedule degree as a duration
func (c *Config) Degree() time.Duration {
	return time.Duration(c.Schedule.Degree) * time.Second
}

// Distance returns the race distance in scale's base unit
func (c *Config) Distance(scale running.Scale) (int64, error) {
	if scale == running.Imperial && c.Race.Yards > 0 {
		return c.Race.Yards, nil
	}
	if scale == running.Metric && c.Race.Meters > 0 {
		return c.Race.Meters, nil
	}
	p, err := running.LookupPreset(c.Race.Preset)
	if err != nil {
		return 0, err
	}
	return p.Distance(scale), nil
}

// HasAthlete reports whether athlete measurements were configured
func (c *Config) HasAthlete() bool {
	return c.Athlete.Weight > 0 && c.Athlete.Height > 0
}

// DefaultPath returns ~/.runpace/config.yaml
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runpace"), nil
}
