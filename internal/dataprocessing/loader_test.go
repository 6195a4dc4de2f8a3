package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salesreport/internal/errors"
	"salesreport/internal/shared/testutil"
	"salesreport/pkg/contracts/domain"
)

func TestLoadRecordsColumnsByName(t *testing.T) {
	rows := [][]string{
		{"Revenue", "Category", "ProductID", "PricePerUnit", "UnitsSold"},
		{"301.00", "Electronics", "P001", "150.50", "2"},
	}
	path := testutil.WriteCSVFile(t, "reordered.csv", rows)

	records, err := NewLoader(nil).LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "P001", r.ProductID)
	assert.Equal(t, domain.CategoryElectronics, r.Category)
	assert.Equal(t, int64(2), r.UnitsSold)
	assert.Equal(t, "150.50", r.PricePerUnit.StringFixed(2))
	assert.True(t, r.Revenue.Equal(r.ExpectedRevenue()))
}

func TestLoadRecordsIgnoresExtraColumns(t *testing.T) {
	rows := [][]string{
		{"", "ProductID", "Category", "UnitsSold", "PricePerUnit", "Revenue"},
		{"0", "P001", "Home Goods", "3", "60.00", "180.00"},
	}
	path := testutil.WriteCSVFile(t, "indexed.csv", rows)

	records, err := NewLoader(nil).LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CategoryHomeGoods, records[0].Category)
}

func TestLoadRecordsWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\ufeffProductID,Category,UnitsSold,PricePerUnit,Revenue\nP001,Apparel,4,25.00,100.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, err := NewLoader(nil).LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoadRecordsErrors(t *testing.T) {
	dir := t.TempDir()

	emptyPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))

	raggedPath := filepath.Join(dir, "ragged.csv")
	require.NoError(t, os.WriteFile(raggedPath,
		[]byte("ProductID,Category,UnitsSold,PricePerUnit,Revenue\nP001,Apparel,4\n"), 0644))

	tests := []struct {
		name     string
		path     string
		expected apperrors.ErrorType
	}{
		{"missing file", filepath.Join(dir, "nope.csv"), apperrors.ErrTypeNotFound},
		{"directory", dir, apperrors.ErrTypeRead},
		{"empty file", emptyPath, apperrors.ErrTypeParsing},
		{"wrong field count", raggedPath, apperrors.ErrTypeParsing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NewLoader(nil).LoadRecords(tt.path)
			require.Error(t, err)
			assert.Nil(t, records)
			assert.Equal(t, tt.expected, apperrors.TypeOf(err))
		})
	}
}
