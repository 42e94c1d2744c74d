package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxCells mirrors the engine's state block capacity.
const MaxCells = 1024

var (
	// ErrInvalidSize indicates a grid that is empty or larger than MaxCells.
	ErrInvalidSize = errors.New("width or height smaller than 1 or more than 1024 cells")

	// ErrInvalidCoordinates indicates start or end outside the grid.
	ErrInvalidCoordinates = errors.New("invalid coordinates of start or end")
)

// Point is a grid coordinate.
type Point struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Checkpoint configures SQLite checkpointing. An empty Path disables it.
type Checkpoint struct {
	Path     string `yaml:"path"`
	Interval int    `yaml:"interval"`
	RunID    string `yaml:"run_id"`
}

// Search is the full configuration of one search run.
type Search struct {
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	Start          Point         `yaml:"start"`
	End            Point         `yaml:"end"`
	PassableChance int           `yaml:"passable_chance"`
	Seed           int64         `yaml:"seed"`
	ShowProgress   bool          `yaml:"show_progress"`
	Delay          time.Duration `yaml:"delay"`
	MaxSteps       int           `yaml:"max_steps"`
	Log            Log           `yaml:"log"`
	Checkpoint     Checkpoint    `yaml:"checkpoint"`
}

// Default returns the demo configuration: a 24x13 map, 80% passable,
// seed 12345, from (0,0) to (23,11).
func Default() Search {
	return Search{
		Width:          24,
		Height:         13,
		Start:          Point{0, 0},
		End:            Point{23, 11},
		PassableChance: 80,
		Seed:           12345,
		Delay:          25 * time.Millisecond,
		Log:            Log{Level: "info", Format: "text"},
		Checkpoint:     Checkpoint{Interval: 1},
	}
}

// SearchFrom overlays the values present in cfg onto Default.
func SearchFrom(cfg Config) Search {
	s := Default()
	s.Width = cfg.Int("width", s.Width)
	s.Height = cfg.Int("height", s.Height)
	s.Start = pointFrom(cfg.Sub("start"), s.Start)
	s.End = pointFrom(cfg.Sub("end"), s.End)
	s.PassableChance = cfg.Int("passable_chance", s.PassableChance)
	s.Seed = cfg.Int64("seed", s.Seed)
	s.ShowProgress = cfg.Bool("show_progress", s.ShowProgress)
	s.Delay = cfg.Duration("delay", s.Delay)
	s.MaxSteps = cfg.Int("max_steps", s.MaxSteps)

	log := cfg.Sub("log")
	s.Log.Level = log.String("level", s.Log.Level)
	s.Log.Format = log.String("format", s.Log.Format)

	cp := cfg.Sub("checkpoint")
	s.Checkpoint.Path = cp.String("path", s.Checkpoint.Path)
	s.Checkpoint.Interval = cp.Int("interval", s.Checkpoint.Interval)
	s.Checkpoint.RunID = cp.String("run_id", s.Checkpoint.RunID)
	return s
}

func pointFrom(cfg Config, def Point) Point {
	return Point{
		Col: cfg.Int("col", def.Col),
		Row: cfg.Int("row", def.Row),
	}
}

// Validate checks the grid size, the coordinates and the remaining knobs.
func (s Search) Validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxCells || s.Height > MaxCells || s.Width*s.Height > MaxCells {
		return ErrInvalidSize
	}
	if !s.contains(s.Start) || !s.contains(s.End) {
		return ErrInvalidCoordinates
	}
	if s.PassableChance < 0 || s.PassableChance > 100 {
		return fmt.Errorf("passable_chance %d: must be between 0 and 100", s.PassableChance)
	}
	if s.Delay < 0 {
		return fmt.Errorf("delay %s: must not be negative", s.Delay)
	}
	if s.MaxSteps < 0 {
		return fmt.Errorf("max_steps %d: must not be negative", s.MaxSteps)
	}
	switch s.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log format %q: must be text or json", s.Log.Format)
	}
	return nil
}

func (s Search) contains(p Point) bool {
	return p.Col >= 0 && p.Col < s.Width && p.Row >= 0 && p.Row < s.Height
}

// YAML renders the configuration in the file format LoadSearch reads.
func (s Search) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
