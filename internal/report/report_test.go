package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"runpace/internal/runner"
	"runpace/internal/running"
)

func marathon(t *testing.T, scale running.Scale, distance int64) running.Race {
	t.Helper()
	r, err := running.NewRace(scale, distance, 4*time.Hour)
	if err != nil {
		t.Fatalf("NewRace() error: %v", err)
	}
	return r
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		scale     running.Scale
		distance  int64
		kind      running.ScheduleKind
		wantPace  time.Duration
		wantN     int64
		wantFirst time.Duration
	}{
		{"metric uniform", running.Metric, 42195, running.Uniform, 341 * time.Second, 43, 341 * time.Second},
		{"metric negative", running.Metric, 42195, running.Negative, 341 * time.Second, 43, 346 * time.Second},
		{"imperial positive", running.Imperial, 46112, running.Positive, 549 * time.Second, 27, 544 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(marathon(t, tt.scale, tt.distance), Options{Kind: tt.kind, Degree: 5 * time.Second})
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if s.AveragePace != tt.wantPace {
				t.Errorf("AveragePace = %v, want %v", s.AveragePace, tt.wantPace)
			}
			if s.NumSplits != tt.wantN || int64(len(s.Splits)) != tt.wantN {
				t.Errorf("NumSplits = %d (len %d), want %d", s.NumSplits, len(s.Splits), tt.wantN)
			}
			if s.Splits[0] != tt.wantFirst {
				t.Errorf("Splits[0] = %v, want %v", s.Splits[0], tt.wantFirst)
			}
			if s.Total != running.Total(s.Splits) {
				t.Errorf("Total = %v, want %v", s.Total, running.Total(s.Splits))
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	untimed, _ := running.NewRaceDistance(running.Metric, 5000)
	if _, err := Build(untimed, Options{}); !errors.Is(err, running.ErrDurationUnset) {
		t.Errorf("untimed race error = %v, want ErrDurationUnset", err)
	}

	empty, _ := running.NewRaceFromSplits(running.Metric, nil)
	if _, err := Build(empty, Options{}); !errors.Is(err, running.ErrZeroDistance) {
		t.Errorf("empty race error = %v, want ErrZeroDistance", err)
	}

	still, _ := running.NewRace(running.Metric, 5000, 0)
	if _, err := Build(still, Options{}); !errors.Is(err, running.ErrZeroDuration) {
		t.Errorf("zero duration error = %v, want ErrZeroDuration", err)
	}
}

func TestRender(t *testing.T) {
	athlete, err := runner.New(running.Metric, 85, 1.79, 44)
	if err != nil {
		t.Fatalf("runner.New() error: %v", err)
	}
	opts := Options{Kind: running.Negative, Degree: 5 * time.Second, Chart: true, Athlete: &athlete}

	s, err := Build(marathon(t, running.Metric, 42195), opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out := Render(s, opts)

	for _, want := range []string{
		"Metric race",
		"42,195 m",
		"04:00:00",
		"5:41 /km",
		"2.93 m/s",
		"43",
		"negative (±5s)",
		"1st km",
		"43rd km",
		"5:46",
		"(+5s)",
		"26.5 (Overweight)",
		"pace per km",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRender_Imperial(t *testing.T) {
	opts := Options{Kind: running.Uniform}
	s, err := Build(marathon(t, running.Imperial, 46112), opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out := Render(s, opts)

	for _, want := range []string{"Imperial race", "46,112 yd", "26.20 mi", "9:09 /mi", "6.55 mph", "27th mi"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(out, "pace per") {
		t.Error("Render() drew a chart with charts disabled")
	}
}

func TestRenderSplits_Deltas(t *testing.T) {
	s := Summary{
		Scale:       running.Metric,
		AveragePace: 300 * time.Second,
		Splits:      []time.Duration{302 * time.Second, 300 * time.Second, 297 * time.Second},
	}
	lines := RenderSplits(s)
	if len(lines) != 3 {
		t.Fatalf("RenderSplits() returned %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "5:02 (+2s)") {
		t.Errorf("slower split = %q, want +2s", lines[0])
	}
	if strings.Contains(lines[1], "(") {
		t.Errorf("even split should have no delta, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "4:57 (-3s)") {
		t.Errorf("faster split = %q, want -3s", lines[2])
	}
}
