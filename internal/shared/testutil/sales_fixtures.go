package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	"salesreport/pkg/contracts/domain"
)

// NewRecord builds a record whose revenue is computed from units and price
func NewRecord(id string, category domain.Category, units int64, price string) domain.Record {
	r := domain.Record{
		ProductID:    id,
		Category:     category,
		UnitsSold:    units,
		PricePerUnit: decimal.RequireFromString(price),
	}
	r.Revenue = r.ExpectedRevenue()
	return r
}

// SampleRecords returns a small fixed dataset covering all three categories
func SampleRecords() []domain.Record {
	return []domain.Record{
		NewRecord("P001", domain.CategoryElectronics, 10, "100.00"),
		NewRecord("P002", domain.CategoryElectronics, 20, "150.50"),
		NewRecord("P003", domain.CategoryApparel, 15, "60.25"),
		NewRecord("P004", domain.CategoryApparel, 12, "75.75"),
		NewRecord("P005", domain.CategoryHomeGoods, 25, "199.99"),
		NewRecord("P006", domain.CategoryHomeGoods, 11, "50.01"),
		NewRecord("P007", domain.CategoryHomeGoods, 29, "120.00"),
	}
}

// WriteCSVFile writes raw rows to a file in a temp dir and returns its path
func WriteCSVFile(t *testing.T, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// RecordRows converts records to CSV rows including the header
func RecordRows(records []domain.Record) [][]string {
	rows := [][]string{domain.RecordHeader}
	for _, r := range records {
		rows = append(rows, []string{
			r.ProductID,
			string(r.Category),
			strconv.FormatInt(r.UnitsSold, 10),
			r.PricePerUnit.StringFixed(2),
			r.Revenue.StringFixed(2),
		})
	}
	return rows
}
