package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salesreport/internal/config"
	"salesreport/internal/infrastructure"
	"salesreport/internal/operations"
	"salesreport/pkg/contracts"
)

// ShutdownTimeout bounds telemetry flushing on Stop
const ShutdownTimeout = 5 * time.Second

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Paths     *config.Paths
	Logger    *slog.Logger
	Telemetry *infrastructure.TelemetryProviders
	Pipeline  *operations.Manager
}

// NewApplication loads configuration and wires every component
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires every component for an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := config.GetPaths(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}
	paths.LogPathResolution(logger)

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version),
		slog.Int("rows", cfg.Pipeline.RowCount),
		slog.String("data_file", paths.DataCSV),
		slog.String("report_file", paths.ReportPDF))

	a := &Application{
		Config: cfg,
		Paths:  paths,
		Logger: logger,
	}

	// telemetry is optional; the pipeline runs without it
	telemetry, err := infrastructure.InitializeTelemetry(cfg.Telemetry, paths, logger)
	if err != nil {
		logger.Warn("Telemetry disabled", slog.String("error", err.Error()))
	} else {
		a.Telemetry = telemetry
	}

	a.Pipeline, err = operations.NewPipeline(cfg.Pipeline, paths, a.Telemetry, logger)
	if err != nil {
		a.Stop(context.Background())
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	return a, nil
}

// Run executes one pipeline run under a fresh run ID
func (a *Application) Run(ctx context.Context) (*operations.OperationState, error) {
	ctx = infrastructure.ContextWithRunID(ctx)

	state, err := a.Pipeline.Execute(ctx)
	if err != nil {
		a.Logger.ErrorContext(ctx, "Pipeline did not run", slog.String("error", err.Error()))
		return nil, err
	}

	if state.CurrentPhase() == operations.PhaseRendered {
		a.Logger.InfoContext(ctx, "Sales report ready", slog.String("path", a.Paths.ReportPDF))
	} else {
		a.Logger.WarnContext(ctx, "Sales report not produced",
			slog.String("phase", string(state.CurrentPhase())))
	}
	return state, nil
}

// Stop flushes telemetry and closes the log file
func (a *Application) Stop(ctx context.Context) error {
	var stopErr error

	if a.Telemetry != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
		defer cancel()
		if err := a.Telemetry.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down telemetry", slog.String("error", err.Error()))
			stopErr = err
		}
		a.Telemetry = nil
	}

	if err := infrastructure.CloseLogFile(); err != nil && stopErr == nil {
		stopErr = err
	}
	return stopErr
}
