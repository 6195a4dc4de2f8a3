package operations

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"salesreport/internal/config"
	"salesreport/internal/dataprocessing"
	"salesreport/internal/exporter"
	"salesreport/internal/generator"
	"salesreport/internal/infrastructure"
	"salesreport/internal/report"
	"salesreport/pkg/contracts"
)

// NewPipeline wires the generate, analyze and render steps for cfg into a Manager.
// A nil telemetry value disables tracing and metrics.
func NewPipeline(cfg config.PipelineConfig, paths *config.Paths, telemetry *infrastructure.TelemetryProviders, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("Pipeline configured",
		slog.Int("rows", cfg.RowCount),
		slog.Uint64("seed", seed))

	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	gen := generator.New(rng,
		exporter.NewCSVWriter(paths, infrastructure.WithComponent(logger, "csv")),
		logger)

	renderer := report.NewRenderer(logger, report.Options{
		Layout: report.LayoutOptions{
			Author:  cfg.Author,
			Creator: contracts.Producer(),
		},
	})
	workbook := exporter.NewWorkbookExporter(infrastructure.WithComponent(logger, "workbook"))

	registry := NewRegistry()
	for _, step := range []Step{
		NewGenerateStep(gen, cfg.RowCount, paths.DataCSV),
		NewAnalyzeStep(dataprocessing.NewAnalyzer(logger), paths.DataCSV),
		NewRenderStep(renderer, workbook, paths.ReportPDF, paths.ReportXLSX, logger),
	} {
		if err := registry.Register(step); err != nil {
			return nil, err
		}
	}

	tracer, err := NewOperationTracer(telemetry)
	if err != nil {
		return nil, err
	}

	return NewManager(registry, tracer, logger), nil
}
