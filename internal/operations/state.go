package operations

import (
	"fmt"
	"sync"
	"time"

	"salesreport/pkg/contracts/domain"
)

// OperationStatusValue represents the overall run status
type OperationStatusValue string

const (
	OperationStatusPending   OperationStatusValue = "pending"
	OperationStatusRunning   OperationStatusValue = "running"
	OperationStatusCompleted OperationStatusValue = "completed"
)

// OperationState represents the complete state of a pipeline run
type OperationState struct {
	mu sync.RWMutex

	ID        string               `json:"id"`
	Status    OperationStatusValue `json:"status"`
	Phase     Phase                `json:"phase"`
	StartTime time.Time            `json:"start_time"`
	EndTime   *time.Time           `json:"end_time,omitempty"`

	// Steps in execution order
	Steps []*StepState `json:"steps"`

	// Data handed from one step to the next
	Records []domain.Record        `json:"-"`
	Result  *domain.AnalysisResult `json:"-"`
}

// NewOperationState creates a new run state in PhaseInit
func NewOperationState(id string) *OperationState {
	return &OperationState{
		ID:        id,
		Status:    OperationStatusPending,
		Phase:     PhaseInit,
		StartTime: time.Now(),
	}
}

// Start marks the run as running
func (p *OperationState) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Status = OperationStatusRunning
	p.StartTime = time.Now()
}

// Complete marks the run as finished, whatever its step outcomes
func (p *OperationState) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusCompleted
}

// Advance moves the run to the given phase, which must directly follow the current one
func (p *OperationState) Advance(to Phase) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if next := p.Phase.Next(); next == "" || next != to {
		return NewInvalidStateError(fmt.Sprintf("cannot move from %s to %s", p.Phase, to))
	}
	p.Phase = to
	return nil
}

// CurrentPhase returns the furthest phase reached
func (p *OperationState) CurrentPhase() Phase {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Phase
}

// AddStage appends the state of a step
func (p *OperationState) AddStage(state *StepState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Steps = append(p.Steps, state)
}

// GetStage returns the state of a specific Step
func (p *OperationState) GetStage(stepID string) *StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, s := range p.Steps {
		if s.ID == stepID {
			return s
		}
	}
	return nil
}

// SetRecords stores the records produced or loaded by a step
func (p *OperationState) SetRecords(records []domain.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Records = records
}

// GetRecords returns the current records
func (p *OperationState) GetRecords() []domain.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Records
}

// SetResult stores the analysis result
func (p *OperationState) SetResult(result *domain.AnalysisResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Result = result
}

// GetResult returns the analysis result, nil until analysis succeeded
func (p *OperationState) GetResult() *domain.AnalysisResult {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Result
}

// Duration returns the duration of the run
func (p *OperationState) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.EndTime != nil {
		return p.EndTime.Sub(p.StartTime)
	}
	return time.Since(p.StartTime)
}

// GetFailedStages returns all failed steps
func (p *OperationState) GetFailedStages() []*StepState {
	return p.stagesWithStatus(StepStatusFailed)
}

// GetSkippedStages returns all skipped steps
func (p *OperationState) GetSkippedStages() []*StepState {
	return p.stagesWithStatus(StepStatusSkipped)
}

func (p *OperationState) stagesWithStatus(status StepStatus) []*StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var matched []*StepState
	for _, s := range p.Steps {
		if s.GetStatus() == status {
			matched = append(matched, s)
		}
	}
	return matched
}

// IsComplete returns true if every step reached a terminal status
func (p *OperationState) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, s := range p.Steps {
		if !s.GetStatus().IsTerminal() {
			return false
		}
	}
	return true
}

// HasFailures returns true if any Step has failed
func (p *OperationState) HasFailures() bool {
	return len(p.GetFailedStages()) > 0
}

// StepSummary is the outcome of one step
type StepSummary struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   StepStatus    `json:"status"`
	Duration time.Duration `json:"duration"`
	Message  string        `json:"message,omitempty"`
}

// RunSummary is the outcome of a run
type RunSummary struct {
	RunID    string        `json:"run_id"`
	Phase    Phase         `json:"phase"`
	Duration time.Duration `json:"duration"`
	Steps    []StepSummary `json:"steps"`
}

// Summary captures the run outcome for logging and inspection
func (p *OperationState) Summary() RunSummary {
	p.mu.RLock()
	defer p.mu.RUnlock()

	end := time.Now()
	if p.EndTime != nil {
		end = *p.EndTime
	}

	summary := RunSummary{
		RunID:    p.ID,
		Phase:    p.Phase,
		Duration: end.Sub(p.StartTime),
		Steps:    make([]StepSummary, 0, len(p.Steps)),
	}
	for _, s := range p.Steps {
		s.mu.RLock()
		summary.Steps = append(summary.Steps, StepSummary{
			ID:      s.ID,
			Name:    s.Name,
			Status:  s.Status,
			Message: s.Message,
		})
		s.mu.RUnlock()
		summary.Steps[len(summary.Steps)-1].Duration = s.Duration()
	}
	return summary
}
