package operations

import (
	"context"
	"fmt"
	"log/slog"

	"salesreport/internal/infrastructure"
)

// Manager runs the registered steps of a pipeline
type Manager struct {
	registry *Registry
	tracer   *OperationTracer
	logger   *slog.Logger
}

// NewManager creates a manager over registry. A nil tracer records nothing.
func NewManager(registry *Registry, tracer *OperationTracer, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer, _ = NewOperationTracer(nil)
	}
	return &Manager{
		registry: registry,
		tracer:   tracer,
		logger:   logger,
	}
}

// GetRegistry returns the step registry
func (m *Manager) GetRegistry() *Registry {
	return m.registry
}

// Execute runs every step in registration order and returns the final state.
// Step failures never surface as an error: they are recorded on the state and
// every later step is skipped. The error is non-nil only when no steps are
// registered.
func (m *Manager) Execute(ctx context.Context) (*OperationState, error) {
	steps := m.registry.List()
	if len(steps) == 0 {
		return nil, NewRegistrationError("", "no steps registered")
	}

	ctx = infrastructure.EnsureRunID(ctx)
	state := NewOperationState(infrastructure.GetRunID(ctx))
	for _, step := range steps {
		state.AddStage(NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceRun(ctx, state.ID)
	state.Start()
	m.logOperationStart(ctx, state.ID, len(steps))

	m.executeSequential(ctx, state, steps)

	state.Complete()
	m.tracer.RecordRunCompletion(span, state.CurrentPhase(), len(state.GetFailedStages()))
	m.logOperationComplete(ctx, state)

	return state, nil
}

// executeSequential runs steps until one fails, then skips the remainder
func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) {
	var blocker *StepState

	for i, step := range steps {
		stepState := state.GetStage(step.ID())

		if blocker != nil {
			reason := fmt.Sprintf("previous step %s did not complete", blocker.ID)
			m.skipStage(ctx, state, step, stepState, reason)
			continue
		}

		m.logger.DebugContext(ctx, "executing_step",
			slog.String("step", step.ID()),
			slog.Int("step_number", i+1),
			slog.Int("total_steps", len(steps)))

		if !m.executeStage(ctx, state, step, stepState) {
			blocker = stepState
		}
	}
}

// executeStage runs one step and reports whether it completed
func (m *Manager) executeStage(ctx context.Context, state *OperationState, step Step, stepState *StepState) bool {
	if err := step.Validate(state); err != nil {
		m.skipStage(ctx, state, step, stepState, err.Error())
		return false
	}

	stepCtx, span := m.tracer.TraceStep(ctx, state.ID, step.ID())
	stepState.Start()
	m.logStageStart(stepCtx, step)

	err := step.Execute(stepCtx, state)
	records := len(state.GetRecords())

	if err != nil {
		stepState.Fail(err)
		m.logStageError(stepCtx, step, err)
		m.tracer.RecordStepCompletion(stepCtx, span, step.ID(), StepStatusFailed, stepState.Duration(), 0, err)
		return false
	}

	stepState.Complete(fmt.Sprintf("%s completed", step.Name()))
	m.logStageComplete(stepCtx, step, stepState.Duration())
	m.tracer.RecordStepCompletion(stepCtx, span, step.ID(), StepStatusCompleted, stepState.Duration(), records, nil)
	return true
}

func (m *Manager) skipStage(ctx context.Context, state *OperationState, step Step, stepState *StepState, reason string) {
	stepCtx, span := m.tracer.TraceStep(ctx, state.ID, step.ID())
	stepState.Skip(reason)
	m.logStageSkipped(stepCtx, step, reason)
	m.tracer.RecordStepCompletion(stepCtx, span, step.ID(), StepStatusSkipped, 0, 0, nil)
}
