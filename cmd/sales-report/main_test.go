package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesreport/internal/config"
	"salesreport/internal/infrastructure"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SALES_LOGGING_LEVEL", "error")
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	assert.Equal(t, 0, run(context.Background()))

	for _, name := range []string{config.DefaultDataFile, config.DefaultReportFile, config.DefaultWorkbookFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SALES_LOGGING_FORMAT", "xml")
	infrastructure.ResetLoggerForTesting()
	t.Cleanup(infrastructure.ResetLoggerForTesting)

	assert.Equal(t, 1, run(context.Background()))
}
