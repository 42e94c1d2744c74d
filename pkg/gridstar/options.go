package gridstar

import (
	"log/slog"

	"github.com/randalmurphal/gridstar/pkg/gridstar/checkpoint"
	"github.com/randalmurphal/gridstar/pkg/gridstar/observability"
)

// StepInfo describes one expansion performed by Run or Resume.
type StepInfo struct {
	// Step is the 1-based count of Step calls made so far in this run.
	Step int
	// Current is the frontier cell selected by the step.
	Current int
	// Done is true for the final step, after which HasPath holds the outcome.
	Done bool
}

// StepHook is called after every step. It runs on the caller's goroutine
// between expansions, so it may render, sleep or inspect the engine.
type StepHook func(v View, info StepInfo)

type runConfig struct {
	maxSteps int
	runID    string

	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool

	checkpointStore        checkpoint.Store
	checkpointInterval     int
	checkpointFailureFatal bool

	hooks []StepHook
}

func defaultRunConfig() runConfig {
	return runConfig{
		maxSteps:           0,
		metrics:            observability.NoopMetrics{},
		spans:              observability.NoopSpanManager{},
		checkpointInterval: 1,
	}
}

// RunOption configures Run and Resume.
type RunOption func(*runConfig)

// WithMaxSteps limits the number of steps. Zero (the default) means no
// limit beyond the natural bound of the grid.
func WithMaxSteps(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// WithRunID sets the run identifier used in logs, traces and checkpoints.
// A random UUID is used when unset, but checkpointing requires an explicit ID.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithLogger enables structured logging of the run.
func WithLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing using the global tracer provider.
func WithTracing(enabled bool) RunOption {
	return func(c *runConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithCheckpointing saves a snapshot to store after steps. Requires WithRunID.
func WithCheckpointing(store checkpoint.Store) RunOption {
	return func(c *runConfig) {
		c.checkpointStore = store
	}
}

// WithCheckpointInterval saves a checkpoint every n steps. Default: 1
func WithCheckpointInterval(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.checkpointInterval = n
		}
	}
}

// WithCheckpointFailureFatal makes checkpoint failures stop the run.
// By default they are logged and the search continues.
func WithCheckpointFailureFatal(fatal bool) RunOption {
	return func(c *runConfig) {
		c.checkpointFailureFatal = fatal
	}
}

// WithStepHook registers a callback invoked after every step.
func WithStepHook(hook StepHook) RunOption {
	return func(c *runConfig) {
		if hook != nil {
			c.hooks = append(c.hooks, hook)
		}
	}
}
