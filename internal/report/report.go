// Package report turns a race and its split schedule into a printable summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"runpace/internal/distance"
	"runpace/internal/duration"
	"runpace/internal/runner"
	"runpace/internal/running"
)

const (
	defaultChartHeight = 8
	chartWidth         = 60
)

// Options controls which schedule is built and how it is shown
type Options struct {
	Kind        running.ScheduleKind
	Degree      time.Duration
	Duration    duration.Options
	Chart       bool
	ChartHeight int
	Athlete     *runner.Runner
}

// Summary holds every derived metric of one race
type Summary struct {
	Scale        running.Scale
	Distance     int64
	Duration     time.Duration
	AveragePace  time.Duration
	Speed        float64 // base units per second
	SpeedPerHour float64 // km/h or mph
	NumSplits    int64
	Kind         running.ScheduleKind
	Degree       time.Duration
	Splits       []time.Duration
	Total        time.Duration
}

// Build derives the summary and split schedule for race
func Build(race running.Race, opts Options) (Summary, error) {
	pace, err := race.AveragePace()
	if err != nil {
		return Summary{}, fmt.Errorf("average pace: %w", err)
	}
	speed, err := race.Speed()
	if err != nil {
		return Summary{}, fmt.Errorf("speed: %w", err)
	}
	perHour, err := race.SpeedPerHour()
	if err != nil {
		return Summary{}, fmt.Errorf("speed per hour: %w", err)
	}
	n, err := race.NumSplits()
	if err != nil {
		return Summary{}, fmt.Errorf("splits: %w", err)
	}
	splits, err := running.Schedule(race, opts.Kind, opts.Degree)
	if err != nil {
		return Summary{}, fmt.Errorf("%s schedule: %w", opts.Kind, err)
	}

	return Summary{
		Scale:        race.Scale(),
		Distance:     race.Distance(),
		Duration:     race.Duration(),
		AveragePace:  pace,
		Speed:        speed,
		SpeedPerHour: perHour,
		NumSplits:    n,
		Kind:         opts.Kind,
		Degree:       opts.Degree,
		Splits:       splits,
		Total:        running.Total(splits),
	}, nil
}

// Render formats a summary as a styled card
func Render(s Summary, opts Options) string {
	var lines []string

	lines = append(lines, titleStyle.Render(raceTitle(s.Scale)))
	lines = append(lines, "")
	lines = append(lines, RenderMetric("Distance", formatDistance(s.Scale, s.Distance)))
	lines = append(lines, RenderMetric("Duration", duration.Format(s.Duration, opts.Duration)))
	lines = append(lines, RenderMetric("Average pace", duration.FormatPace(s.AveragePace)+" /"+s.Scale.SplitUnit()))
	lines = append(lines, RenderMetric("Speed", formatSpeed(s)))
	lines = append(lines, RenderMetric("Splits", humanize.Comma(s.NumSplits)))

	if opts.Athlete != nil {
		bmi := opts.Athlete.BMI()
		lines = append(lines, RenderMetric("BMI", fmt.Sprintf("%.1f (%s)", bmi, runner.BMICategory(bmi))))
	}

	lines = append(lines, "")
	lines = append(lines, RenderMetric("Schedule", scheduleLabel(s)))
	lines = append(lines, RenderMetric("Schedule total", duration.Format(s.Total, opts.Duration)))
	lines = append(lines, "")
	lines = append(lines, RenderSplits(s)...)

	if opts.Chart && len(s.Splits) > 1 {
		lines = append(lines, "")
		lines = append(lines, RenderChart(s, opts.ChartHeight))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderSplits renders one line per split, colored against the average pace
func RenderSplits(s Summary) []string {
	lines := make([]string, 0, len(s.Splits))
	for i, split := range s.Splits {
		label := splitLabelStyle.Render(humanize.Ordinal(i+1) + " " + s.Scale.SplitUnit())

		style := evenStyle
		switch {
		case split < s.AveragePace:
			style = fasterStyle
		case split > s.AveragePace:
			style = slowerStyle
		}

		delta := ""
		if diff := duration.Seconds(split - s.AveragePace); diff != 0 {
			delta = fmt.Sprintf(" (%+ds)", diff)
		}
		lines = append(lines, label+style.Render(duration.FormatPace(split)+delta))
	}
	return lines
}

// RenderChart plots pace in seconds per split
func RenderChart(s Summary, height int) string {
	if height <= 0 {
		height = defaultChartHeight
	}
	data := make([]float64, len(s.Splits))
	for i, split := range s.Splits {
		data[i] = float64(duration.Seconds(split))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("pace per %s (seconds)", s.Scale.SplitUnit())),
	)
}

// RenderSideBySide joins rendered cards horizontally
func RenderSideBySide(cards ...string) string {
	spaced := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

func raceTitle(scale running.Scale) string {
	if scale == running.Imperial {
		return "Imperial race"
	}
	return "Metric race"
}

func scheduleLabel(s Summary) string {
	if s.Kind == running.Uniform {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s (±%ds)", s.Kind, duration.Seconds(s.Degree))
}

func formatDistance(scale running.Scale, d int64) string {
	conv := distance.ToKm
	if scale == running.Imperial {
		conv = distance.ToMile
	}
	splits, err := conv(float64(d))
	if err != nil {
		return fmt.Sprintf("%s %s", humanize.Comma(d), scale.Unit())
	}
	return fmt.Sprintf("%s %s (%.2f %s)", humanize.Comma(d), scale.Unit(), splits, scale.SplitUnit())
}

func formatSpeed(s Summary) string {
	perHour := "km/h"
	if s.Scale == running.Imperial {
		perHour = "mph"
	}
	return fmt.Sprintf("%.2f %s/s (%.2f %s)", s.Speed, s.Scale.Unit(), s.SpeedPerHour, perHour)
}
