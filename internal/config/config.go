package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "salesreport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
	// Pipeline parameters are fixed; neither the environment nor the config file can change them.
	Pipeline PipelineConfig `yaml:"-" ignored:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TelemetryConfig controls span and metric export for pipeline runs
type TelemetryConfig struct {
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER"`   // "none", "stdout", "file"
	TraceFile      string  `yaml:"trace_file" envconfig:"TRACE_FILE"`
	MetricExporter string  `yaml:"metric_exporter" envconfig:"METRIC_EXPORTER"` // "none", "prometheus"
	MetricsFile    string  `yaml:"metrics_file" envconfig:"METRICS_FILE"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO"`
}

// PipelineConfig holds the fixed generate/analyze/render parameters
type PipelineConfig struct {
	RowCount     int
	DataFile     string
	ReportFile   string
	WorkbookFile string
	Author       string
	// Seed for the data generator; zero means seed from the clock
	Seed uint64
}

// Load loads configuration from defaults, the config file if one exists, and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom is Load with an explicit config file path. An empty path skips the file.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", configFile)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration and normalises case-insensitive values
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	c.Logging.Output = strings.ToLower(c.Logging.Output)

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path is required for output %q", c.Logging.Output)
	}

	switch c.Telemetry.TraceExporter {
	case "none", "stdout":
	case "file":
		if c.Telemetry.TraceFile == "" {
			return fmt.Errorf("trace file is required for the file trace exporter")
		}
	default:
		return fmt.Errorf("unsupported trace exporter: %q", c.Telemetry.TraceExporter)
	}

	switch c.Telemetry.MetricExporter {
	case "none":
	case "prometheus":
		if c.Telemetry.MetricsFile == "" {
			return fmt.Errorf("metrics file is required for the prometheus metric exporter")
		}
	default:
		return fmt.Errorf("unsupported metric exporter: %q", c.Telemetry.MetricExporter)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", c.Telemetry.SampleRatio)
	}

	if c.Pipeline.RowCount < 0 {
		return fmt.Errorf("row count must not be negative, got %d", c.Pipeline.RowCount)
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"salesreport.yaml",
		"configs/salesreport.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  DefaultTraceExporter,
			TraceFile:      DefaultTraceFile,
			MetricExporter: DefaultMetricExporter,
			MetricsFile:    DefaultMetricsFile,
			SampleRatio:    DefaultSampleRatio,
		},
		Pipeline: PipelineConfig{
			RowCount:     DefaultRowCount,
			DataFile:     DefaultDataFile,
			ReportFile:   DefaultReportFile,
			WorkbookFile: DefaultWorkbookFile,
			Author:       DefaultReportAuthor,
		},
	}
}
