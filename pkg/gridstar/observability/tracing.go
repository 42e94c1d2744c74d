package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("gridstar")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span covering a whole search.
	StartSearchSpan(ctx context.Context, runID string, cols, rows int) (context.Context, trace.Span)

	// AddStepEvent records one expansion on the span in ctx.
	AddStepEvent(ctx context.Context, step, current int)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses the global OpenTelemetry
// tracer provider.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSearchSpan starts a span for the entire search.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, runID string, cols, rows int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "gridstar.search",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("grid.cols", cols),
			attribute.Int("grid.rows", rows),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// AddStepEvent adds a step event to the current span.
func (m *otelSpanManager) AddStepEvent(ctx context.Context, step, current int) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("gridstar.step", trace.WithAttributes(
		attribute.Int("step", step),
		attribute.Int("cell", current),
	))
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
