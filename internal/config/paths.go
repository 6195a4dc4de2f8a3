package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the resolved locations of every file the pipeline reads or writes
type Paths struct {
	BaseDir     string
	DataCSV     string
	ReportPDF   string
	ReportXLSX  string
	LogFile     string
	TraceFile   string
	MetricsFile string
}

// GetPaths resolves the configured files against the current working directory
func GetPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(wd, cfg), nil
}

// NewPaths resolves the configured files against baseDir. Absolute paths are kept as-is.
func NewPaths(baseDir string, cfg *Config) *Paths {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	return &Paths{
		BaseDir:     baseDir,
		DataCSV:     resolve(cfg.Pipeline.DataFile),
		ReportPDF:   resolve(cfg.Pipeline.ReportFile),
		ReportXLSX:  resolve(cfg.Pipeline.WorkbookFile),
		LogFile:     resolve(cfg.Logging.FilePath),
		TraceFile:   resolve(cfg.Telemetry.TraceFile),
		MetricsFile: resolve(cfg.Telemetry.MetricsFile),
	}
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved file locations
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.String("base_dir", p.BaseDir),
		slog.Group("files",
			slog.String("data_csv", p.DataCSV),
			slog.String("report_pdf", p.ReportPDF),
			slog.String("report_xlsx", p.ReportXLSX),
		))
}
