package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salesreport/internal/errors"
	"salesreport/internal/shared/testutil"
	"salesreport/pkg/contracts/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedNow() time.Time { return reportDate }

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		RecordCount:     7,
		TotalRevenue:    dec("14852.61"),
		TotalUnitsSold:  122,
		AvgPricePerUnit: dec("108.07"),
		Categories: []domain.CategorySummary{
			{Category: domain.CategoryApparel, RecordCount: 2, TotalRevenue: dec("1812.75"), TotalUnitsSold: 27, AveragePrice: dec("68")},
		},
	}
}

func TestRender(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	renderer := NewRenderer(logger, Options{Layout: LayoutOptions{Author: "Test"}, Now: fixedNow})
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := renderer.Render(context.Background(), path, testutil.SampleRecords(), sampleResult())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 500)

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Report generated successfully")
	testutil.AssertNoErrors(t, handler)
}

func TestRenderPaginatesLongCategoryTable(t *testing.T) {
	renderer := NewRenderer(nil, Options{Now: fixedNow, Layout: LayoutOptions{SampleRows: 200}})
	path := filepath.Join(t.TempDir(), "long.pdf")

	result := sampleResult()
	for i := 0; i < 60; i++ {
		result.Categories = append(result.Categories, domain.CategorySummary{
			Category:       domain.Category(fmt.Sprintf("Category %02d", i)),
			RecordCount:    1,
			TotalRevenue:   dec("100.00"),
			TotalUnitsSold: 1,
			AveragePrice:   dec("100.00"),
		})
	}

	require.NoError(t, renderer.Render(context.Background(), path, manyRecords(200), result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(data, []byte("/Type /Page\n")), 1)
}

func TestRenderOverwrites(t *testing.T) {
	renderer := NewRenderer(nil, Options{Now: fixedNow})
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, renderer.Render(context.Background(), path, testutil.SampleRecords(), sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderWriteFailure(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	renderer := NewRenderer(logger, Options{Now: fixedNow})
	path := filepath.Join(t.TempDir(), "missing-dir", "report.pdf")

	err := renderer.Render(context.Background(), path, testutil.SampleRecords(), sampleResult())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeRender))
	testutil.AssertLogContains(t, handler, slog.LevelError, "Report not generated")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderNilResult(t *testing.T) {
	renderer := NewRenderer(nil, Options{Now: fixedNow})
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := renderer.Render(context.Background(), path, nil, nil)

	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeRender))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDrawUnknownElement(t *testing.T) {
	doc := BuildDocument(nil, nil, reportDate, LayoutOptions{})
	doc.Elements = append(doc.Elements, Element{Kind: "chart"})

	var buf bytes.Buffer
	err := Draw(doc, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart")
}
