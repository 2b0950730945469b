package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"runpace/internal/config"
	"runpace/internal/duration"
	"runpace/internal/logger"
	"runpace/internal/report"
	"runpace/internal/runner"
	"runpace/internal/running"
	"runpace/internal/tui"
)

type options struct {
	configPath string
	initConfig bool
	interact   bool
	scale      string
	race       string
	duration   string
	schedule   string
	degree     int
}

func main() {
	logger.Init(os.Stderr)
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Get().Error(context.Background(), "runpace failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	log := logger.Named("main")

	if opts.initConfig {
		path := opts.configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		if err := config.CreateExample(path); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Fprintf(out, "Example config written to:\n  %s\n", path)
		return nil
	}

	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	races, err := buildRaces(cfg, opts.scale)
	if err != nil {
		return err
	}
	for _, r := range races {
		log.Debug(ctx, "race built",
			logger.String("scale", r.Scale().Name()),
			logger.Int64("distance", r.Distance()),
			logger.String("duration", duration.Format(r.Duration(), duration.Options{})))
	}

	reportOpts, err := reportOptions(cfg)
	if err != nil {
		return err
	}

	if opts.interact {
		p := tea.NewProgram(tui.NewApp(races, reportOpts), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	cards := make([]string, 0, len(races))
	for _, r := range races {
		summary, err := report.Build(r, reportOpts)
		if err != nil {
			return fmt.Errorf("%s report: %w", r.Scale(), err)
		}
		cards = append(cards, report.Render(summary, reportOpts))
	}
	fmt.Fprintln(out, report.RenderSideBySide(cards...))
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("runpace", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $RUNPACE_CONFIG or ~/.runpace/config.yaml)")
	fs.BoolVar(&opts.initConfig, "init", false, "write an example config file and exit")
	fs.BoolVar(&opts.interact, "tui", false, "browse split schedules interactively")
	fs.StringVar(&opts.scale, "scale", "both", "metric, imperial or both")
	fs.StringVar(&opts.race, "race", "", "race preset: 5k, 10k, half, marathon")
	fs.StringVar(&opts.duration, "duration", "", "target duration, e.g. 4:00:00")
	fs.StringVar(&opts.schedule, "schedule", "", "uniform, negative or positive")
	fs.IntVar(&opts.degree, "degree", -1, "seconds of pace variation for negative/positive splits")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads the given file, or ~/.runpace/config.yaml when it exists
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" && os.Getenv("RUNPACE_CONFIG") == "" {
		if def, err := config.DefaultPath(); err == nil {
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}

	cfg, err := config.Load(ctx, path)
	if errors.Is(err, config.ErrNoConfig) {
		return nil, fmt.Errorf("%w (run with -init to create one)", err)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.race != "" {
		cfg.Race.Preset = opts.race
		cfg.Race.Meters = 0
		cfg.Race.Yards = 0
	}
	if opts.duration != "" {
		cfg.Race.Duration = opts.duration
	}
	if opts.schedule != "" {
		cfg.Schedule.Kind = opts.schedule
	}
	if opts.degree >= 0 {
		cfg.Schedule.Degree = opts.degree
	}
}

func buildRaces(cfg *config.Config, which string) ([]running.Race, error) {
	var scales []running.Scale
	switch strings.ToLower(which) {
	case "", "both":
		scales = []running.Scale{running.Metric, running.Imperial}
	default:
		s, err := running.ParseScale(which)
		if err != nil {
			return nil, err
		}
		scales = []running.Scale{s}
	}

	d, err := cfg.RaceDuration()
	if err != nil {
		return nil, fmt.Errorf("race duration: %w", err)
	}

	races := make([]running.Race, 0, len(scales))
	for _, s := range scales {
		dist, err := cfg.Distance(s)
		if err != nil {
			return nil, err
		}
		r, err := running.NewRace(s, dist, d)
		if err != nil {
			return nil, fmt.Errorf("%s race: %w", s, err)
		}
		races = append(races, r)
	}
	return races, nil
}

func reportOptions(cfg *config.Config) (report.Options, error) {
	kind, err := cfg.ScheduleKind()
	if err != nil {
		return report.Options{}, err
	}

	opts := report.Options{
		Kind:        kind,
		Degree:      cfg.Degree(),
		Duration:    duration.Options{IncludeHoursAlways: cfg.Display.IncludeHoursAlways},
		Chart:       cfg.Display.Chart,
		ChartHeight: cfg.Display.ChartHeight,
	}

	if cfg.HasAthlete() {
		scale, err := running.ParseScale(cfg.Athlete.Scale)
		if err != nil {
			return report.Options{}, err
		}
		athlete, err := runner.New(scale, cfg.Athlete.Weight, cfg.Athlete.Height, cfg.Athlete.Age)
		if err != nil {
			return report.Options{}, fmt.Errorf("athlete: %w", err)
		}
		opts.Athlete = &athlete
	}

	return opts, nil
}
