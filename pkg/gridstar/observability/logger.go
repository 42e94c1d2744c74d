// Package observability provides logging, metrics, and tracing for searches.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds search context to a logger.
// Returns a new logger with run_id, cols and rows fields.
func EnrichLogger(logger *slog.Logger, runID string, cols, rows int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.Int("cols", cols),
		slog.Int("rows", rows),
	)
}

// LogSearchStart logs the start of a search.
func LogSearchStart(logger *slog.Logger, runID string, start, end int) {
	if logger == nil {
		return
	}
	logger.Info("search starting",
		slog.String("run_id", runID),
		slog.Int("start", start),
		slog.Int("end", end),
	)
}

// LogSearchComplete logs a finished search. A search that finds no path
// still completes.
func LogSearchComplete(logger *slog.Logger, runID string, found bool, steps, pathLen int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.String("run_id", runID),
		slog.Bool("found", found),
		slog.Int("steps", steps),
		slog.Int("path_length", pathLen),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSearchError logs a search that stopped with an error.
func LogSearchError(logger *slog.Logger, runID string, err error, steps int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("search failed",
		slog.String("run_id", runID),
		slog.String("error", err.Error()),
		slog.Int("steps", steps),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogStep logs one expansion.
func LogStep(logger *slog.Logger, step, current int, more bool) {
	if logger == nil {
		return
	}
	logger.Debug("step",
		slog.Int("step", step),
		slog.Int("current", current),
		slog.Bool("continue", more),
	)
}

// LogCheckpoint logs checkpoint creation.
func LogCheckpoint(logger *slog.Logger, step int, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("checkpoint saved",
		slog.Int("step", step),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogCheckpointError logs checkpoint failure (non-fatal).
func LogCheckpointError(logger *slog.Logger, step int, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("checkpoint failed",
		slog.Int("step", step),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
