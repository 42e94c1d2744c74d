package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/gridstar/pkg/gridstar"
	"github.com/randalmurphal/gridstar/pkg/gridstar/checkpoint"
	"github.com/randalmurphal/gridstar/pkg/gridstar/config"
	"github.com/randalmurphal/gridstar/pkg/gridstar/mapgen"
	"github.com/randalmurphal/gridstar/pkg/gridstar/render"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Messages printed for rejected configurations.
const (
	msgInvalidSize        = "Failed due width or height smaller than 1 or the number of cells (width * height) is larger than 1024."
	msgInvalidCoordinates = "Invalid coordinates of start or end."
)

type options struct {
	configPath  string
	printConfig bool
	tui         bool
	resume      bool
	metrics     bool
	tracing     bool
}

// parseArgs builds the search configuration: defaults, then the config
// file, then any flag that was set explicitly.
func parseArgs(args []string, stderr io.Writer) (config.Search, options, error) {
	var opts options
	def := config.Default()
	fs := flag.NewFlagSet("gridstar", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "YAML or JSON config `file`")
	fs.BoolVar(&opts.printConfig, "print-config", false, "print the effective config as YAML and exit")
	fs.BoolVar(&opts.tui, "tui", false, "animate the search in the terminal")
	fs.BoolVar(&opts.resume, "resume", false, "resume -run-id from its latest checkpoint")
	fs.BoolVar(&opts.metrics, "metrics", false, "record OpenTelemetry metrics")
	fs.BoolVar(&opts.tracing, "tracing", false, "record OpenTelemetry traces")

	width := fs.Int("width", def.Width, "grid width")
	height := fs.Int("height", def.Height, "grid height")
	startCol := fs.Int("start-col", def.Start.Col, "start column")
	startRow := fs.Int("start-row", def.Start.Row, "start row")
	endCol := fs.Int("end-col", def.End.Col, "end column")
	endRow := fs.Int("end-row", def.End.Row, "end row")
	chance := fs.Int("chance", def.PassableChance, "percent chance that a cell is passable")
	seed := fs.Int64("seed", def.Seed, "random seed for the map")
	progress := fs.Bool("progress", def.ShowProgress, "print the map after every step")
	delay := fs.Duration("delay", def.Delay, "pause between progress frames")
	maxSteps := fs.Int("max-steps", def.MaxSteps, "stop after this many steps (0 = no limit)")
	logLevel := fs.String("log-level", def.Log.Level, "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", def.Log.Format, "log format: text or json")
	cpPath := fs.String("checkpoint", def.Checkpoint.Path, "SQLite checkpoint database `file`")
	cpInterval := fs.Int("checkpoint-interval", def.Checkpoint.Interval, "checkpoint every n steps")
	runID := fs.String("run-id", def.Checkpoint.RunID, "run identifier for checkpoints")

	if err := fs.Parse(args); err != nil {
		return config.Search{}, opts, err
	}

	s := def
	if opts.configPath != "" {
		loaded, err := config.LoadSearch(opts.configPath)
		if err != nil {
			return config.Search{}, opts, err
		}
		s = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			s.Width = *width
		case "height":
			s.Height = *height
		case "start-col":
			s.Start.Col = *startCol
		case "start-row":
			s.Start.Row = *startRow
		case "end-col":
			s.End.Col = *endCol
		case "end-row":
			s.End.Row = *endRow
		case "chance":
			s.PassableChance = *chance
		case "seed":
			s.Seed = *seed
		case "progress":
			s.ShowProgress = *progress
		case "delay":
			s.Delay = *delay
		case "max-steps":
			s.MaxSteps = *maxSteps
		case "log-level":
			s.Log.Level = *logLevel
		case "log-format":
			s.Log.Format = *logFormat
		case "checkpoint":
			s.Checkpoint.Path = *cpPath
		case "checkpoint-interval":
			s.Checkpoint.Interval = *cpInterval
		case "run-id":
			s.Checkpoint.RunID = *runID
		}
	})
	return s, opts, nil
}

func newLogger(cfg config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// newEngine builds and fills the random map described by s.
func newEngine(s config.Search) (*gridstar.Plain, error) {
	e := gridstar.New[struct{}]()
	if err := e.SetSize(s.Width, s.Height); err != nil {
		return nil, err
	}
	e.SetPassability(mapgen.Random(rand.New(rand.NewSource(s.Seed)), s.PassableChance))
	if err := e.Fill(); err != nil {
		return nil, err
	}
	e.SetStart(s.Start.Col, s.Start.Row)
	e.SetEnd(s.End.Col, s.End.Row)
	return e, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s, opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.printConfig {
		out, err := s.YAML()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		stdout.Write(out)
		return exitOK
	}

	if err := s.Validate(); err != nil {
		switch {
		case errors.Is(err, config.ErrInvalidSize):
			fmt.Fprintln(stdout, msgInvalidSize)
		case errors.Is(err, config.ErrInvalidCoordinates):
			fmt.Fprintln(stdout, msgInvalidCoordinates)
		default:
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	logger := newLogger(s.Log, stderr)

	e, err := newEngine(s)
	if err != nil {
		logger.Error("build grid", slog.String("error", err.Error()))
		return exitError
	}

	runOpts := []gridstar.RunOption{
		gridstar.WithLogger(logger),
		gridstar.WithMaxSteps(s.MaxSteps),
		gridstar.WithMetrics(opts.metrics),
		gridstar.WithTracing(opts.tracing),
	}

	var store checkpoint.Store
	if s.Checkpoint.Path != "" {
		sqlite, err := checkpoint.NewSQLiteStore(s.Checkpoint.Path)
		if err != nil {
			logger.Error("open checkpoint store", slog.String("error", err.Error()))
			return exitError
		}
		defer sqlite.Close()
		store = sqlite

		if s.Checkpoint.RunID == "" {
			s.Checkpoint.RunID = uuid.New().String()
			fmt.Fprintf(stderr, "run id: %s\n", s.Checkpoint.RunID)
		}
		runOpts = append(runOpts,
			gridstar.WithRunID(s.Checkpoint.RunID),
			gridstar.WithCheckpointing(store),
			gridstar.WithCheckpointInterval(s.Checkpoint.Interval))
	}
	if opts.resume && store == nil {
		fmt.Fprintln(stderr, "-resume requires -checkpoint")
		return exitUsage
	}

	var screen *terminal
	if opts.tui {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		screen, err = openTerminal(cancel)
		if err != nil {
			logger.Error("open terminal", slog.String("error", err.Error()))
			return exitError
		}
		defer screen.close()
		runOpts = append(runOpts, gridstar.WithStepHook(screen.frame(s.Delay)))
	} else if s.ShowProgress {
		runOpts = append(runOpts, gridstar.WithStepHook(progressHook(ctx, stdout, s)))
	}

	var res gridstar.Result
	if opts.resume {
		res, err = e.Resume(ctx, store, s.Checkpoint.RunID, struct{}{}, runOpts...)
	} else {
		res, err = e.Run(ctx, struct{}{}, runOpts...)
	}
	if err != nil {
		if screen != nil {
			screen.close()
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if screen != nil {
		screen.finish(ctx, e)
		return exitOK
	}
	if err := render.ASCII(stdout, e, render.Options{Chance: s.PassableChance}); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logger.Debug("done", slog.Int("steps", res.Steps), slog.Int("closed", res.Closed))
	return exitOK
}

// progressHook prints a frame with open and closed cells after every
// intermediate step.
func progressHook(ctx context.Context, w io.Writer, s config.Search) gridstar.StepHook {
	return func(v gridstar.View, info gridstar.StepInfo) {
		if info.Done {
			return
		}
		_ = render.ASCII(w, v, render.Options{ShowOpenClosed: true, Chance: s.PassableChance})
		sleep(ctx, s.Delay)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
