package gridstar

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/gridstar/pkg/gridstar/checkpoint"
	"github.com/randalmurphal/gridstar/pkg/gridstar/observability"
	"go.opentelemetry.io/otel/trace"
)

// Result summarizes a finished run. Not finding a path is a normal result
// (Found == false), not an error.
type Result struct {
	RunID string
	Found bool
	// Steps counts Step calls, the final one included. A resumed run counts
	// the steps taken before its checkpoint too.
	Steps int
	// Path holds the route from start to end inclusive when Found.
	Path []int
	// Closed is the number of closed cells when the run stopped, impassable
	// cells rejected as neighbors included.
	Closed   int
	Duration time.Duration
}

// Run validates the engine, opens the start cell and steps until the search
// is over. Between steps it honors ctx cancellation, the step limit, step
// hooks and checkpointing.
//
// Example:
//
//	e := gridstar.New[struct{}]()
//	_ = e.SetSize(24, 13)
//	e.SetPassability(mapgen.Random(rng, 80))
//	_ = e.Fill()
//	e.SetStart(0, 0)
//	e.SetEnd(23, 11)
//	res, err := e.Run(ctx, struct{}{}, gridstar.WithLogger(logger))
func (e *Engine[D]) Run(ctx context.Context, data D, opts ...RunOption) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}
	cfg, err := newRunConfig(opts)
	if err != nil {
		return Result{}, err
	}
	if err := e.Validate(); err != nil {
		return Result{RunID: cfg.runID}, err
	}

	e.Begin()
	return e.runLoop(ctx, data, &cfg, 0)
}

func newRunConfig(opts []RunOption) (runConfig, error) {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.checkpointStore != nil && cfg.runID == "" {
		return cfg, ErrRunIDRequired
	}
	if cfg.runID == "" {
		cfg.runID = uuid.New().String()
	}
	return cfg, nil
}

// runLoop steps the engine until it stops. steps is the count already
// performed by an earlier, checkpointed run.
func (e *Engine[D]) runLoop(ctx context.Context, data D, cfg *runConfig, steps int) (res Result, runErr error) {
	res.RunID = cfg.runID
	done := observability.TimedOperation()
	startTime := time.Now()
	logger := observability.EnrichLogger(cfg.logger, cfg.runID, e.cols, e.rows)

	observability.LogSearchStart(logger, cfg.runID, e.start, e.end)

	traceCtx := ctx
	var span trace.Span
	if cfg.tracingEnabled {
		traceCtx, span = cfg.spans.StartSearchSpan(ctx, cfg.runID, e.cols, e.rows)
		defer func() {
			cfg.spans.EndSpanWithError(span, runErr)
		}()
	}

	defer func() {
		res.Steps = steps
		res.Closed = e.closedCount()
		res.Duration = time.Since(startTime)
		if runErr != nil {
			observability.LogSearchError(logger, cfg.runID, runErr, steps, done())
			return
		}
		cfg.metrics.RecordSearch(ctx, res.Found, steps, res.Duration)
		if res.Found {
			cfg.metrics.RecordPathLength(ctx, len(res.Path))
		}
		observability.LogSearchComplete(logger, cfg.runID, res.Found, steps, len(res.Path), done())
	}()

	for {
		select {
		case <-ctx.Done():
			return res, &CancellationError{Steps: steps, Cause: ctx.Err()}
		default:
		}

		if cfg.maxSteps > 0 && steps >= cfg.maxSteps {
			return res, &MaxStepsError{Max: cfg.maxSteps, Current: e.LowestInOpenSet()}
		}

		current, more := e.step(data)
		steps++

		observability.LogStep(logger, steps, current, more)
		cfg.spans.AddStepEvent(traceCtx, steps, current)
		for _, hook := range cfg.hooks {
			hook(e, StepInfo{Step: steps, Current: current, Done: !more})
		}

		if !more {
			res.Found = e.hasPath
			res.Path = e.Path()
			return res, nil
		}

		if cfg.checkpointStore != nil && steps%cfg.checkpointInterval == 0 {
			if err := e.saveCheckpoint(ctx, cfg, logger, steps, current); err != nil {
				return res, err
			}
		}
	}
}

func (e *Engine[D]) closedCount() int {
	n := 0
	for i := 0; i < e.cols*e.rows; i++ {
		if e.cells[i].State.IsClosed() {
			n++
		}
	}
	return n
}

// saveCheckpoint persists the state block after a step.
func (e *Engine[D]) saveCheckpoint(ctx context.Context, cfg *runConfig, logger *slog.Logger, step, current int) error {
	fail := func(op string, err error) error {
		if cfg.checkpointFailureFatal {
			return &CheckpointError{Step: step, Op: op, Err: err}
		}
		observability.LogCheckpointError(logger, step, op, err)
		return nil
	}

	snap, err := json.Marshal(e.Export())
	if err != nil {
		return fail("serialize", err)
	}
	data, err := checkpoint.New(cfg.runID, step, snap).WithCurrent(current).Marshal()
	if err != nil {
		return fail("marshal", err)
	}
	if err := cfg.checkpointStore.Save(cfg.runID, step, data); err != nil {
		return fail("save", err)
	}

	observability.LogCheckpoint(logger, step, len(data))
	cfg.metrics.RecordCheckpoint(ctx, int64(len(data)))
	return nil
}

// Resume restores the latest checkpoint of runID into the engine and keeps
// stepping from there. The engine's hooks are kept; only the state block is
// replaced.
func (e *Engine[D]) Resume(ctx context.Context, store checkpoint.Store, runID string, data D, opts ...RunOption) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}

	info, raw, err := store.Latest(runID)
	if errors.Is(err, checkpoint.ErrNotFound) {
		return Result{RunID: runID}, &CheckpointError{Op: "load", Err: ErrNoCheckpoints}
	}
	if err != nil {
		return Result{RunID: runID}, &CheckpointError{Op: "load", Err: err}
	}

	cp, err := checkpoint.Unmarshal(raw)
	if err != nil {
		return Result{RunID: runID}, &CheckpointError{Step: info.Step, Op: "load", Err: errors.Join(ErrDeserializeSnapshot, err)}
	}
	if cp.Version != checkpoint.Version {
		return Result{RunID: runID}, &CheckpointError{Step: cp.Step, Op: "load", Err: ErrCheckpointVersionMismatch}
	}

	var snap Snapshot
	if err := json.Unmarshal(cp.Snapshot, &snap); err != nil {
		return Result{RunID: runID}, &CheckpointError{Step: cp.Step, Op: "load", Err: errors.Join(ErrDeserializeSnapshot, err)}
	}
	// Check the snapshot on a scratch engine so a bad checkpoint leaves e alone.
	var staged Engine[D]
	if err := staged.Import(snap); err != nil {
		return Result{RunID: runID}, err
	}
	if err := staged.Validate(); err != nil {
		return Result{RunID: runID}, err
	}
	if err := e.Import(snap); err != nil {
		return Result{RunID: runID}, err
	}

	cfg, err := newRunConfig(append([]RunOption{WithRunID(runID)}, opts...))
	if err != nil {
		return Result{RunID: runID}, err
	}
	return e.runLoop(ctx, data, &cfg, cp.Step)
}
