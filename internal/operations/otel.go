package operations

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"salesreport/internal/infrastructure"
)

// OperationTracer provides OpenTelemetry instrumentation for pipeline runs
type OperationTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.PipelineMetrics
}

// NewOperationTracer creates a tracer from the telemetry providers.
// A nil providers value yields a tracer that records nothing.
func NewOperationTracer(providers *infrastructure.TelemetryProviders) (*OperationTracer, error) {
	if providers == nil {
		return &OperationTracer{tracer: tracenoop.NewTracerProvider().Tracer(infrastructure.MeterName)}, nil
	}

	metrics, err := infrastructure.CreatePipelineMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline metrics: %w", err)
	}

	return &OperationTracer{
		tracer:  providers.Tracer,
		metrics: metrics,
	}, nil
}

// TraceRun creates a span for the whole run
func (ot *OperationTracer) TraceRun(ctx context.Context, runID string) (context.Context, trace.Span) {
	ctx, span := ot.tracer.Start(ctx, "pipeline.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("run.id", runID)),
	)

	if ot.metrics != nil {
		ot.metrics.RunsTotal.Add(ctx, 1)
	}

	return ctx, span
}

// TraceStep creates a span for one step
func (ot *OperationTracer) TraceStep(ctx context.Context, runID, stepID string) (context.Context, trace.Span) {
	return ot.tracer.Start(ctx, "pipeline.step."+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordStepCompletion ends a step span and records its metrics
func (ot *OperationTracer) RecordStepCompletion(ctx context.Context, span trace.Span, stepID string, status StepStatus, duration time.Duration, records int, err error) {
	defer span.End()

	span.SetAttributes(
		attribute.String("step.status", string(status)),
		attribute.Float64("step.duration_seconds", duration.Seconds()),
		attribute.Int("step.records", records),
	)

	switch status {
	case StepStatusCompleted:
		span.SetStatus(codes.Ok, "step completed")
	case StepStatusFailed:
		if err != nil {
			span.RecordError(err)
		}
		span.SetStatus(codes.Error, "step failed")
	default:
		span.AddEvent("step." + string(status))
	}

	if ot.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("step", stepID),
		attribute.String("status", string(status)),
	)
	ot.metrics.StepsTotal.Add(ctx, 1, attrs)
	if status != StepStatusSkipped {
		ot.metrics.StepDuration.Record(ctx, duration.Seconds(), attrs)
	}
	if records > 0 {
		ot.metrics.RecordsProcessed.Add(ctx, int64(records),
			metric.WithAttributes(attribute.String("step", stepID)))
	}
}

// RecordRunCompletion ends the run span
func (ot *OperationTracer) RecordRunCompletion(span trace.Span, phase Phase, failed int) {
	defer span.End()

	span.SetAttributes(
		attribute.String("run.phase", string(phase)),
		attribute.Int("run.failed_steps", failed),
	)
	if failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d step(s) failed", failed))
		return
	}
	span.SetStatus(codes.Ok, "run completed")
}
