package operations

import (
	"context"
	"log/slog"
	"time"

	"salesreport/internal/infrastructure"
)

// logOperationStart logs the start of a run
func (m *Manager) logOperationStart(ctx context.Context, runID string, stepCount int) {
	attrs := []any{
		slog.String("operation_id", runID),
		slog.Int("steps", stepCount),
	}
	if traceID := infrastructure.TraceIDFromContext(ctx); traceID != "" {
		attrs = append(attrs, slog.String("trace_id", traceID))
	}
	m.logger.InfoContext(ctx, "Pipeline started", attrs...)
}

// logOperationComplete logs the run summary, one attribute group per step
func (m *Manager) logOperationComplete(ctx context.Context, state *OperationState) {
	summary := state.Summary()

	attrs := []any{
		slog.String("operation_id", summary.RunID),
		slog.String("phase", string(summary.Phase)),
		slog.Duration("duration", summary.Duration),
	}
	for _, s := range summary.Steps {
		attrs = append(attrs, slog.Group(s.ID,
			slog.String("status", string(s.Status)),
			slog.Duration("duration", s.Duration),
			slog.String("message", s.Message)))
	}

	if state.HasFailures() {
		m.logger.WarnContext(ctx, "Pipeline finished with failures", attrs...)
		return
	}
	m.logger.InfoContext(ctx, "Pipeline finished", attrs...)
}

// logStageStart logs the start of a Step execution
func (m *Manager) logStageStart(ctx context.Context, step Step) {
	m.logger.InfoContext(ctx, step.Name()+" started",
		slog.String("step", step.ID()))
}

// logStageComplete logs the completion of a Step execution
func (m *Manager) logStageComplete(ctx context.Context, step Step, duration time.Duration) {
	m.logger.InfoContext(ctx, step.Name()+" completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
}

// logStageError logs a Step error
func (m *Manager) logStageError(ctx context.Context, step Step, err error) {
	errorMsg := "unknown error"
	if err != nil {
		errorMsg = err.Error()
	}
	m.logger.ErrorContext(ctx, step.Name()+" failed",
		slog.String("step", step.ID()),
		slog.String("error", errorMsg))
}

// logStageSkipped logs why a Step did not run
func (m *Manager) logStageSkipped(ctx context.Context, step Step, reason string) {
	m.logger.WarnContext(ctx, "Skipping "+step.Name(),
		slog.String("step", step.ID()),
		slog.String("reason", reason))
}
