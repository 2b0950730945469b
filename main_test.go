package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"runpace/internal/logger"
)

func setup(t *testing.T) {
	t.Helper()
	logger.Init(&bytes.Buffer{})
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RUNPACE_CONFIG", "")
}

func TestRun_DefaultReport(t *testing.T) {
	setup(t)
	var out bytes.Buffer

	if err := run(context.Background(), nil, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	for _, want := range []string{"Metric race", "Imperial race", "5:41 /km", "9:09 /mi", "negative (±5s)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRun_Flags(t *testing.T) {
	setup(t)
	var out bytes.Buffer

	args := []string{"-scale", "metric", "-race", "10k", "-duration", "50:00", "-schedule", "uniform"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "10,000 m") || !strings.Contains(got, "5:00 /km") {
		t.Errorf("10k report wrong:\n%s", got)
	}
	if strings.Contains(got, "Imperial race") {
		t.Error("imperial card rendered with -scale metric")
	}
}

func TestRun_Errors(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown scale", []string{"-scale", "nautical"}},
		{"unknown preset", []string{"-race", "ultra"}},
		{"bad duration", []string{"-duration", "fast"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}},
		{"degree beyond pace", []string{"-duration", "0:10:00", "-race", "5k", "-schedule", "positive", "-degree", "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.args, &bytes.Buffer{}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRun_InitConfig(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer

	if err := run(context.Background(), []string{"-init", "-config", path}, &out); err != nil {
		t.Fatalf("run(-init) error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	out.Reset()
	if err := run(context.Background(), []string{"-config", path, "-scale", "metric"}, &out); err != nil {
		t.Fatalf("run() with example config error: %v", err)
	}
	if !strings.Contains(out.String(), "BMI") {
		t.Error("example config athlete should produce a BMI line")
	}
}
