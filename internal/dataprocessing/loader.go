package dataprocessing

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "salesreport/internal/errors"
	"salesreport/pkg/contracts/domain"
)

// Loader reads sales records from CSV files
type Loader struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLoader creates a loader with record validation enabled
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		validate: newRecordValidator(),
		logger:   logger,
	}
}

// newRecordValidator registers decimal.Decimal as a float so numeric tags apply to it
func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// columnIndex maps each required column to its position in the header
type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range domain.RecordHeader {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// LoadRecords reads every record in the CSV file at path.
// A missing file yields a NOT_FOUND error; I/O failures a READ error; malformed
// content a PARSING error; records breaking field rules a VALIDATION error.
func (l *Loader) LoadRecords(path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("sales data file", err).
				WithContext("path", path)
		}
		return nil, apperrors.NewReadError("failed to open sales data file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, apperrors.NewParsingError("sales data file has no header row", nil).
				WithContext("path", path)
		}
		return nil, classifyReadError("failed to read sales data header", err).
			WithContext("path", path)
	}

	idx, err := indexHeader(header)
	if err != nil {
		return nil, apperrors.NewParsingError("invalid sales data header", err).
			WithContext("path", path)
	}

	var records []domain.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError("failed to read sales data row", err).
				WithContext("path", path).
				WithContext("line", line)
		}

		record, err := parseRecord(row, idx)
		if err != nil {
			return nil, apperrors.NewParsingError("malformed sales data row", err).
				WithContext("path", path).
				WithContext("line", line)
		}

		if err := l.validate.Struct(record); err != nil {
			return nil, apperrors.NewValidationError("invalid sales record", err).
				WithContext("path", path).
				WithContext("line", line).
				WithContext("product_id", record.ProductID)
		}

		records = append(records, record)
	}

	l.logger.Debug("Sales records loaded",
		slog.String("path", path),
		slog.Int("records", len(records)))

	return records, nil
}

// classifyReadError separates CSV syntax problems from I/O failures
func classifyReadError(message string, err error) *apperrors.AppError {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return apperrors.NewParsingError(message, err)
	}
	return apperrors.NewReadError(message, err)
}

func parseRecord(row []string, idx columnIndex) (domain.Record, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[idx[col]])
	}

	units, err := strconv.ParseInt(field(domain.ColumnUnitsSold), 10, 64)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%s: %w", domain.ColumnUnitsSold, err)
	}

	price, err := decimal.NewFromString(field(domain.ColumnPricePerUnit))
	if err != nil {
		return domain.Record{}, fmt.Errorf("%s: %w", domain.ColumnPricePerUnit, err)
	}

	revenue, err := decimal.NewFromString(field(domain.ColumnRevenue))
	if err != nil {
		return domain.Record{}, fmt.Errorf("%s: %w", domain.ColumnRevenue, err)
	}

	return domain.Record{
		ProductID:    field(domain.ColumnProductID),
		Category:     domain.Category(field(domain.ColumnCategory)),
		UnitsSold:    units,
		PricePerUnit: price,
		Revenue:      revenue,
	}, nil
}
