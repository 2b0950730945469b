package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "RUNPACE_"
	envConfig = "RUNPACE_CONFIG"
)

// Load builds a Config by layering, low to high precedence:
//  1. DefaultConfig()
//  2. the YAML file at path, or at RUNPACE_CONFIG when path is empty
//  3. env vars prefixed RUNPACE_, with "__" separating sections
//     (RUNPACE_RACE__DURATION -> race.duration)
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed
func Save(cfg *Config, path string) error {
	data, err := yaml.Parser().Marshal(cfg.toMap())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// CreateExample writes the default config to path unless a file is already there
func CreateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}
	example := DefaultConfig()
	example.Athlete = AthleteConfig{Scale: "metric", Weight: 70, Height: 1.75, Age: 35}
	return Save(&example, path)
}

func (c *Config) toMap() map[string]interface{} {
	return map[string]interface{}{
		"log_level": c.LogLevel,
		"race": map[string]interface{}{
			"preset":   c.Race.Preset,
			"meters":   c.Race.Meters,
			"yards":    c.Race.Yards,
			"duration": c.Race.Duration,
		},
		"schedule": map[string]interface{}{
			"kind":   c.Schedule.Kind,
			"degree": c.Schedule.Degree,
		},
		"athlete": map[string]interface{}{
			"scale":  c.Athlete.Scale,
			"weight": c.Athlete.Weight,
			"height": c.Athlete.Height,
			"age":    c.Athlete.Age,
		},
		"display": map[string]interface{}{
			"include_hours_always": c.Display.IncludeHoursAlways,
			"chart":                c.Display.Chart,
			"chart_height":         c.Display.ChartHeight,
		},
	}
}
