package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salesreport/internal/shared/testutil"
	"salesreport/pkg/contracts/domain"
)

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		RecordCount:     3,
		TotalRevenue:    decimal.RequireFromString("3510.00"),
		TotalUnitsSold:  45,
		AvgPricePerUnit: decimal.RequireFromString("82.50"),
		Categories: []domain.CategorySummary{
			{Category: domain.CategoryApparel, RecordCount: 1, TotalRevenue: decimal.RequireFromString("900.00"), TotalUnitsSold: 15, AveragePrice: decimal.RequireFromString("60.00")},
			{Category: domain.CategoryElectronics, RecordCount: 2, TotalRevenue: decimal.RequireFromString("2610.00"), TotalUnitsSold: 30, AveragePrice: decimal.RequireFromString("93.75")},
		},
	}
}

func TestWorkbookExporter_Export(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	exporter := NewWorkbookExporter(logger)

	path := filepath.Join(t.TempDir(), "report", "summary.xlsx")
	records := testutil.SampleRecords()

	require.NoError(t, exporter.Export(path, records, sampleResult()))
	assert.True(t, handler.ContainsMessage("Workbook written"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetCategories, SheetData}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Metric", "Value"}, summary[0])
	assert.Equal(t, "Total Units Sold", summary[2][0])
	assert.Equal(t, "45", summary[2][1])

	categories, err := f.GetRows(SheetCategories)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Apparel", categories[1][0])
	assert.Equal(t, "Electronics", categories[2][0])

	data, err := f.GetRows(SheetData)
	require.NoError(t, err)
	require.Len(t, data, len(records)+1)
	assert.Equal(t, domain.RecordHeader, data[0])
	assert.Equal(t, "P001", data[1][0])
}

func TestWorkbookExporter_NilResult(t *testing.T) {
	exporter := NewWorkbookExporter(nil)
	path := filepath.Join(t.TempDir(), "none.xlsx")

	err := exporter.Export(path, nil, nil)

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkbookExporter_EmptyDataset(t *testing.T) {
	exporter := NewWorkbookExporter(nil)
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, exporter.Export(path, nil, &domain.AnalysisResult{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := f.GetRows(SheetData)
	require.NoError(t, err)
	assert.Len(t, data, 1)
}
