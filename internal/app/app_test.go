package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesreport/internal/config"
	"salesreport/internal/infrastructure"
	"salesreport/internal/operations"
)

func setupWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)
	return dir
}

func TestApplicationRun(t *testing.T) {
	dir := setupWorkdir(t)
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Pipeline.Seed = 1

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(application.Paths.ReportPDF))
	assert.Equal(t, config.DefaultReportFile, filepath.Base(application.Paths.ReportPDF))

	state, err := application.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, operations.PhaseRendered, state.CurrentPhase())
	assert.NotEmpty(t, state.ID)
	assert.Len(t, state.GetRecords(), config.DefaultRowCount)

	require.NoError(t, application.Stop(context.Background()))
	assert.FileExists(t, filepath.Join(dir, config.DefaultReportFile))
	assert.FileExists(t, filepath.Join(dir, config.DefaultDataFile))
}

func TestApplicationMetricsTextfile(t *testing.T) {
	dir := setupWorkdir(t)
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Pipeline.RowCount = 3
	cfg.Telemetry.MetricExporter = "prometheus"

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, application.Telemetry)

	_, err = application.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, application.Stop(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultMetricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pipeline_steps")
}
