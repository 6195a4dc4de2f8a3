package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"salesreport/internal/config"
	"salesreport/pkg/contracts"
)

const (
	ServiceName = "salesreport"
	MeterName   = "salesreport"
)

// TelemetryProviders holds the tracer and meter used by a pipeline run.
// With both exporters set to "none" the tracer and meter are no-ops.
type TelemetryProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Registry       *prometheus.Registry

	traceFile   *os.File
	metricsFile string
	logger      *slog.Logger
}

// InitializeTelemetry builds the providers described by cfg. Relative trace and
// metrics file locations come from paths.
func InitializeTelemetry(cfg config.TelemetryConfig, paths *config.Paths, logger *slog.Logger) (*TelemetryProviders, error) {
	if logger == nil {
		logger = GetLogger()
	}

	providers := &TelemetryProviders{
		Tracer: tracenoop.NewTracerProvider().Tracer(MeterName),
		Meter:  metricnoop.NewMeterProvider().Meter(MeterName),
		logger: logger,
	}

	res, err := createResource()
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if err := providers.initializeTracing(cfg, paths, res); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := providers.initializeMetrics(cfg, paths, res); err != nil {
		providers.closeTraceFile()
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Debug("Telemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.String("metric_exporter", cfg.MetricExporter))

	return providers, nil
}

// createResource creates the OpenTelemetry resource
func createResource() (*resource.Resource, error) {
	hostname, _ := os.Hostname()
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(contracts.Version),
		attribute.String("host.name", hostname),
	), nil
}

func (p *TelemetryProviders) initializeTracing(cfg config.TelemetryConfig, paths *config.Paths, res *resource.Resource) error {
	var exporter sdktrace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "", "none":
		return nil
	case "stdout":
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "file":
		path := paths.TraceFile
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create trace directory: %w", err)
		}
		file, ferr := os.Create(path)
		if ferr != nil {
			return fmt.Errorf("failed to create trace file: %w", ferr)
		}
		p.traceFile = file
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(file))
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
	if err != nil {
		p.closeTraceFile()
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRatio)),
	)

	p.TracerProvider = tp
	p.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(contracts.Version))
	return nil
}

func (p *TelemetryProviders) initializeMetrics(cfg config.TelemetryConfig, paths *config.Paths, res *resource.Resource) error {
	switch cfg.MetricExporter {
	case "", "none":
		return nil
	case "prometheus":
		registry := prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
		if err != nil {
			return fmt.Errorf("failed to create prometheus exporter: %w", err)
		}

		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)

		p.Registry = registry
		p.MeterProvider = mp
		p.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(contracts.Version))
		p.metricsFile = paths.MetricsFile
		return nil
	default:
		return fmt.Errorf("unsupported metric exporter: %s", cfg.MetricExporter)
	}
}

// Shutdown flushes spans, writes the metrics textfile and releases every provider
func (p *TelemetryProviders) Shutdown(ctx context.Context) error {
	var errs []error

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}
	if err := p.closeTraceFile(); err != nil {
		errs = append(errs, fmt.Errorf("trace file close: %w", err))
	}

	if p.Registry != nil && p.metricsFile != "" {
		if err := os.MkdirAll(filepath.Dir(p.metricsFile), 0755); err != nil {
			errs = append(errs, fmt.Errorf("metrics directory: %w", err))
		} else if err := prometheus.WriteToTextfile(p.metricsFile, p.Registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics textfile: %w", err))
		} else {
			p.logger.DebugContext(ctx, "Metrics written", slog.String("path", p.metricsFile))
		}
	}

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("telemetry shutdown errors: %v", errs)
	}
	return nil
}

func (p *TelemetryProviders) closeTraceFile() error {
	if p.traceFile == nil {
		return nil
	}
	err := p.traceFile.Close()
	p.traceFile = nil
	return err
}

// PipelineMetrics are the instruments recorded for each pipeline run
type PipelineMetrics struct {
	RunsTotal        metric.Int64Counter
	StepsTotal       metric.Int64Counter
	StepDuration     metric.Float64Histogram
	RecordsProcessed metric.Int64Counter
}

// CreatePipelineMetrics creates the pipeline instruments on meter
func CreatePipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	runsTotal, err := meter.Int64Counter(
		"pipeline_runs_total",
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, err
	}

	stepsTotal, err := meter.Int64Counter(
		"pipeline_steps_total",
		metric.WithDescription("Total number of pipeline steps by final status"),
	)
	if err != nil {
		return nil, err
	}

	stepDuration, err := meter.Float64Histogram(
		"pipeline_step_duration",
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	recordsProcessed, err := meter.Int64Counter(
		"pipeline_records_processed",
		metric.WithDescription("Number of sales records handled by a step"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		RunsTotal:        runsTotal,
		StepsTotal:       stepsTotal,
		StepDuration:     stepDuration,
		RecordsProcessed: recordsProcessed,
	}, nil
}

// TraceIDFromContext extracts trace ID from context for logging correlation
func TraceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return ""
}
