package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"salesreport/pkg/contracts/domain"
)

// Sheet names of the companion workbook
const (
	SheetSummary    = "Summary"
	SheetCategories = "Categories"
	SheetData       = "Data"
)

// numFmtMoney is the built-in Excel number format "#,##0.00"
const numFmtMoney = 4

// WorkbookExporter writes the analysis and the full dataset to an .xlsx workbook
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes a workbook with a Summary, a Categories and a Data sheet to path,
// replacing any existing file.
func (e *WorkbookExporter) Export(path string, records []domain.Record, result *domain.AnalysisResult) error {
	if result == nil {
		return fmt.Errorf("no analysis result to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{SheetCategories, SheetData} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyID, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Revenue", result.TotalRevenue.InexactFloat64()},
		{"Total Units Sold", result.TotalUnitsSold},
		{"Average Price per Unit", result.AvgPricePerUnit.InexactFloat64()},
		{"Records", result.RecordCount},
	}
	if err := writeRows(f, SheetSummary, summaryRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "B2", "B2", moneyID); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "B4", "B4", moneyID); err != nil {
		return err
	}

	categoryRows := [][]interface{}{{"Category", "Total Revenue", "Total Units Sold", "Average Price", "Records"}}
	for _, c := range result.Categories {
		categoryRows = append(categoryRows, []interface{}{
			string(c.Category),
			c.TotalRevenue.InexactFloat64(),
			c.TotalUnitsSold,
			c.AveragePrice.InexactFloat64(),
			c.RecordCount,
		})
	}
	if err := writeRows(f, SheetCategories, categoryRows); err != nil {
		return err
	}
	for _, col := range []string{"B", "D"} {
		if err := styleColumns(f, SheetCategories, moneyID, len(categoryRows), col, col); err != nil {
			return err
		}
	}

	dataRows := make([][]interface{}, 0, len(records)+1)
	header := make([]interface{}, len(domain.RecordHeader))
	for i, h := range domain.RecordHeader {
		header[i] = h
	}
	dataRows = append(dataRows, header)
	for _, r := range records {
		dataRows = append(dataRows, []interface{}{
			r.ProductID,
			string(r.Category),
			r.UnitsSold,
			r.PricePerUnit.InexactFloat64(),
			r.Revenue.InexactFloat64(),
		})
	}
	if err := writeRows(f, SheetData, dataRows); err != nil {
		return err
	}
	if err := styleColumns(f, SheetData, moneyID, len(dataRows), "D", "E"); err != nil {
		return err
	}

	for _, sheet := range []string{SheetSummary, SheetCategories, SheetData} {
		if err := f.SetCellStyle(sheet, "A1", "E1", boldID); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", sheet, err)
		}
		if err := f.SetColWidth(sheet, "A", "E", 22); err != nil {
			return fmt.Errorf("failed to size columns of %s: %w", sheet, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("Workbook written",
		slog.String("path", path),
		slog.Int("categories", len(result.Categories)),
		slog.Int("records", len(records)))

	return nil
}

// writeRows writes rows starting at A1
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

// styleColumns applies styleID to the data rows of columns first..last
func styleColumns(f *excelize.File, sheet string, styleID, rowCount int, first, last string) error {
	if rowCount < 2 {
		return nil
	}
	return f.SetCellStyle(sheet, first+"2", fmt.Sprintf("%s%d", last, rowCount), styleID)
}
