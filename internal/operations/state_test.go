package operations

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesreport/internal/shared/testutil"
	"salesreport/pkg/contracts/domain"
)

func TestPhaseNext(t *testing.T) {
	assert.Equal(t, PhaseGenerated, PhaseInit.Next())
	assert.Equal(t, PhaseAnalyzed, PhaseGenerated.Next())
	assert.Equal(t, PhaseRendered, PhaseAnalyzed.Next())
	assert.Equal(t, Phase(""), PhaseRendered.Next())
	assert.Equal(t, Phase(""), Phase("bogus").Next())
}

func TestOperationStateAdvance(t *testing.T) {
	state := NewOperationState("run-1")
	assert.Equal(t, PhaseInit, state.CurrentPhase())

	require.NoError(t, state.Advance(PhaseGenerated))
	require.NoError(t, state.Advance(PhaseAnalyzed))
	require.NoError(t, state.Advance(PhaseRendered))
	assert.Equal(t, PhaseRendered, state.CurrentPhase())

	err := state.Advance(PhaseRendered)
	require.Error(t, err)
	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, ErrorTypeInvalidState, opErr.Type)
}

func TestOperationStateAdvanceRejectsSkippingPhases(t *testing.T) {
	tests := []struct {
		name string
		from []Phase
		to   Phase
	}{
		{"init to analyzed", nil, PhaseAnalyzed},
		{"init to rendered", nil, PhaseRendered},
		{"generated to rendered", []Phase{PhaseGenerated}, PhaseRendered},
		{"backwards", []Phase{PhaseGenerated, PhaseAnalyzed}, PhaseGenerated},
		{"to init", nil, PhaseInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewOperationState("run")
			for _, p := range tt.from {
				require.NoError(t, state.Advance(p))
			}
			before := state.CurrentPhase()

			assert.Error(t, state.Advance(tt.to))
			assert.Equal(t, before, state.CurrentPhase())
		})
	}
}

func TestOperationStateData(t *testing.T) {
	state := NewOperationState("run")
	assert.Nil(t, state.GetResult())

	records := testutil.SampleRecords()
	state.SetRecords(records)
	state.SetResult(&domain.AnalysisResult{RecordCount: len(records)})

	assert.Len(t, state.GetRecords(), len(records))
	assert.Equal(t, len(records), state.GetResult().RecordCount)
}

func TestOperationStateSummary(t *testing.T) {
	state := NewOperationState("run-7")
	gen := NewStepState(StepIDGenerate, StepNameGenerate)
	analyze := NewStepState(StepIDAnalyze, StepNameAnalyze)
	render := NewStepState(StepIDRender, StepNameRender)
	state.AddStage(gen)
	state.AddStage(analyze)
	state.AddStage(render)

	state.Start()
	assert.False(t, state.IsComplete())

	gen.Start()
	gen.Complete("done")
	analyze.Start()
	analyze.Fail(errors.New("boom"))
	render.Skip("previous step analyze did not complete")
	state.Complete()

	assert.True(t, state.IsComplete())
	assert.True(t, state.HasFailures())
	assert.Len(t, state.GetFailedStages(), 1)
	assert.Len(t, state.GetSkippedStages(), 1)
	assert.Same(t, analyze, state.GetStage(StepIDAnalyze))
	assert.Nil(t, state.GetStage("missing"))

	summary := state.Summary()
	assert.Equal(t, "run-7", summary.RunID)
	assert.Equal(t, PhaseInit, summary.Phase)
	require.Len(t, summary.Steps, 3)
	assert.Equal(t, []StepStatus{StepStatusCompleted, StepStatusFailed, StepStatusSkipped},
		[]StepStatus{summary.Steps[0].Status, summary.Steps[1].Status, summary.Steps[2].Status})
	assert.Equal(t, "boom", summary.Steps[1].Message)
	assert.GreaterOrEqual(t, summary.Duration, time.Duration(0))
}
