package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records a finished search with its outcome, step count and duration.
	RecordSearch(ctx context.Context, found bool, steps int, duration time.Duration)

	// RecordPathLength records the number of cells on a found route.
	RecordPathLength(ctx context.Context, cells int)

	// RecordCheckpoint records a checkpoint save operation.
	RecordCheckpoint(ctx context.Context, sizeBytes int64)
}

type otelMetrics struct {
	searchRuns     metric.Int64Counter
	searchLatency  metric.Float64Histogram
	searchSteps    metric.Int64Histogram
	pathLength     metric.Int64Histogram
	checkpointSize metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("gridstar")

	searchRuns, err := meter.Int64Counter("gridstar.search.runs",
		metric.WithDescription("Number of finished searches"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("gridstar.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	searchSteps, err := meter.Int64Histogram("gridstar.search.steps",
		metric.WithDescription("Steps taken per search"),
	)
	if err != nil {
		return nil, err
	}

	pathLength, err := meter.Int64Histogram("gridstar.search.path_length",
		metric.WithDescription("Cells on the found route, start and end included"),
	)
	if err != nil {
		return nil, err
	}

	checkpointSize, err := meter.Int64Histogram("gridstar.checkpoint.size_bytes",
		metric.WithDescription("Checkpoint size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searchRuns:     searchRuns,
		searchLatency:  searchLatency,
		searchSteps:    searchSteps,
		pathLength:     pathLength,
		checkpointSize: checkpointSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses the global
// OpenTelemetry meter provider. If initialization fails it returns a no-op
// recorder.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSearch records a finished search.
func (m *otelMetrics) RecordSearch(ctx context.Context, found bool, steps int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("found", found))
	m.searchRuns.Add(ctx, 1, attrs)
	m.searchLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.searchSteps.Record(ctx, int64(steps), attrs)
}

// RecordPathLength records the route length.
func (m *otelMetrics) RecordPathLength(ctx context.Context, cells int) {
	m.pathLength.Record(ctx, int64(cells))
}

// RecordCheckpoint records a checkpoint save.
func (m *otelMetrics) RecordCheckpoint(ctx context.Context, sizeBytes int64) {
	m.checkpointSize.Record(ctx, sizeBytes)
}
