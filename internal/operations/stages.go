package operations

import (
	"context"
	"log/slog"

	"salesreport/internal/dataprocessing"
	"salesreport/internal/exporter"
	"salesreport/internal/generator"
	"salesreport/internal/report"
)

// GenerateStep writes a fresh synthetic dataset
type GenerateStep struct {
	BaseStage
	generator *generator.Generator
	rowCount  int
	path      string
}

// NewGenerateStep creates a step generating rowCount records into path
func NewGenerateStep(gen *generator.Generator, rowCount int, path string) *GenerateStep {
	return &GenerateStep{
		BaseStage: NewBaseStage(StepIDGenerate, StepNameGenerate),
		generator: gen,
		rowCount:  rowCount,
		path:      path,
	}
}

// Validate requires a generator and a destination
func (s *GenerateStep) Validate(state *OperationState) error {
	if s.generator == nil {
		return NewValidationError(s.ID(), "no generator configured")
	}
	if s.path == "" {
		return NewValidationError(s.ID(), "no data file configured")
	}
	return nil
}

// Execute generates the dataset and records it on the state
func (s *GenerateStep) Execute(ctx context.Context, state *OperationState) error {
	records, err := s.generator.GenerateToFile(ctx, s.rowCount, s.path)
	if err != nil {
		return WrapError(err, s.ID(), "sales data not generated")
	}

	state.SetRecords(records)
	if step := state.GetStage(s.ID()); step != nil {
		step.SetMetadata(MetadataKeyPath, s.path)
		step.SetMetadata(MetadataKeyRecords, len(records))
	}
	return state.Advance(PhaseGenerated)
}

// AnalyzeStep loads the dataset from disk and aggregates it
type AnalyzeStep struct {
	BaseStage
	analyzer *dataprocessing.Analyzer
	path     string
}

// NewAnalyzeStep creates a step analyzing the file at path
func NewAnalyzeStep(analyzer *dataprocessing.Analyzer, path string) *AnalyzeStep {
	return &AnalyzeStep{
		BaseStage: NewBaseStage(StepIDAnalyze, StepNameAnalyze),
		analyzer:  analyzer,
		path:      path,
	}
}

// Validate requires an analyzer
func (s *AnalyzeStep) Validate(state *OperationState) error {
	if s.analyzer == nil {
		return NewValidationError(s.ID(), "no analyzer configured")
	}
	return nil
}

// Execute replaces the state's records with what was read back from disk
func (s *AnalyzeStep) Execute(ctx context.Context, state *OperationState) error {
	records, result, err := s.analyzer.AnalyzeFile(ctx, s.path)
	if err != nil {
		return WrapError(err, s.ID(), "sales data not analyzed")
	}

	state.SetRecords(records)
	state.SetResult(result)
	if step := state.GetStage(s.ID()); step != nil {
		step.SetMetadata(MetadataKeyPath, s.path)
		step.SetMetadata(MetadataKeyRecords, len(records))
	}
	return state.Advance(PhaseAnalyzed)
}

// RenderStep writes the PDF report and, optionally, the companion workbook
type RenderStep struct {
	BaseStage
	renderer     *report.Renderer
	workbook     *exporter.WorkbookExporter
	reportPath   string
	workbookPath string
	logger       *slog.Logger
}

// NewRenderStep creates a step rendering the report to reportPath.
// A nil workbook exporter or empty workbookPath disables the workbook.
func NewRenderStep(renderer *report.Renderer, workbook *exporter.WorkbookExporter, reportPath, workbookPath string, logger *slog.Logger) *RenderStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderStep{
		BaseStage:    NewBaseStage(StepIDRender, StepNameRender),
		renderer:     renderer,
		workbook:     workbook,
		reportPath:   reportPath,
		workbookPath: workbookPath,
		logger:       logger,
	}
}

// Validate requires an analysis result to render
func (s *RenderStep) Validate(state *OperationState) error {
	if s.renderer == nil {
		return NewValidationError(s.ID(), "no renderer configured")
	}
	if state.GetResult() == nil {
		return NewValidationError(s.ID(), "no analysis result available")
	}
	return nil
}

// Execute renders the report. A workbook failure is logged and does not fail the step.
func (s *RenderStep) Execute(ctx context.Context, state *OperationState) error {
	records := state.GetRecords()
	result := state.GetResult()

	if err := s.renderer.Render(ctx, s.reportPath, records, result); err != nil {
		return WrapError(err, s.ID(), "report not rendered")
	}

	step := state.GetStage(s.ID())
	if step != nil {
		step.SetMetadata(MetadataKeyPath, s.reportPath)
		step.SetMetadata(MetadataKeyRecords, len(records))
	}
	if err := state.Advance(PhaseRendered); err != nil {
		return err
	}

	if s.workbook == nil || s.workbookPath == "" {
		return nil
	}
	if err := s.workbook.Export(s.workbookPath, records, result); err != nil {
		s.logger.WarnContext(ctx, "Companion workbook not written",
			slog.String("path", s.workbookPath),
			slog.String("error", err.Error()))
		return nil
	}
	if step != nil {
		step.SetMetadata(MetadataKeyOutput, s.workbookPath)
	}
	return nil
}
