package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	apperrors "salesreport/internal/errors"
	"salesreport/internal/exporter"
	"salesreport/pkg/contracts/domain"
)

// Value ranges of the uniform draws
const (
	minUnits   = 10
	unitsSpan  = 20
	minPrice   = 50
	priceSpan  = 150
	priceScale = 2
)

// Generator creates synthetic sales records
type Generator struct {
	rng    *rand.Rand
	writer *exporter.CSVWriter
	logger *slog.Logger
}

// New creates a generator drawing from rng and persisting through writer
func New(rng *rand.Rand, writer *exporter.CSVWriter, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if writer == nil {
		writer = exporter.NewCSVWriter(nil, logger)
	}
	return &Generator{
		rng:    rng,
		writer: writer,
		logger: logger.With(slog.String("component", "generator")),
	}
}

// PartitionSizes splits n rows across the categories in generation order.
// Every category but the last gets n/len(categories); the last gets the remainder.
func PartitionSizes(n int) []int {
	if n < 0 {
		n = 0
	}
	k := len(domain.GenerationOrder)
	sizes := make([]int, k)
	for i := 0; i < k-1; i++ {
		sizes[i] = n / k
	}
	sizes[k-1] = n - (k-1)*(n/k)
	return sizes
}

// Generate returns n records with sequential product IDs
func (g *Generator) Generate(n int) []domain.Record {
	sizes := PartitionSizes(n)
	total := 0
	for _, size := range sizes {
		total += size
	}
	records := make([]domain.Record, 0, total)

	seq := 0
	for i, category := range domain.GenerationOrder {
		for j := 0; j < sizes[i]; j++ {
			seq++
			records = append(records, g.newRecord(seq, category))
		}
	}

	return records
}

func (g *Generator) newRecord(seq int, category domain.Category) domain.Record {
	units := int64(math.Floor(minUnits + unitsSpan*g.rng.Float64()))
	price := decimal.NewFromFloat(minPrice + priceSpan*g.rng.Float64()).Round(priceScale)

	r := domain.Record{
		ProductID:    fmt.Sprintf("P%03d", seq),
		Category:     category,
		UnitsSold:    units,
		PricePerUnit: price,
	}
	r.Revenue = r.ExpectedRevenue()
	return r
}

// WriteCSV writes records to path with the standard header, replacing any existing file
func (g *Generator) WriteCSV(ctx context.Context, path string, records []domain.Record) error {
	stream, err := g.writer.CreateStreamWriter(path, domain.RecordHeader)
	if err != nil {
		return apperrors.NewStorageError("failed to create sales data file", err).
			WithContext("path", path)
	}

	for _, r := range records {
		row := []string{
			r.ProductID,
			string(r.Category),
			exporter.FormatInt(r.UnitsSold),
			exporter.FormatDecimal(r.PricePerUnit),
			exporter.FormatDecimal(r.Revenue),
		}
		if err := stream.WriteRecord(row); err != nil {
			stream.Close()
			return apperrors.NewStorageError("failed to write sales data row", err).
				WithContext("product_id", r.ProductID)
		}
	}

	if err := stream.Close(); err != nil {
		return apperrors.NewStorageError("failed to flush sales data file", err).
			WithContext("path", path)
	}

	g.logger.DebugContext(ctx, "Sales data written",
		slog.String("path", stream.Path()),
		slog.Int("rows", stream.Rows()))

	return nil
}

// GenerateToFile generates n records and writes them to path
func (g *Generator) GenerateToFile(ctx context.Context, n int, path string) ([]domain.Record, error) {
	g.logger.InfoContext(ctx, "Generating sales data",
		slog.Int("rows", n),
		slog.String("path", path))

	records := g.Generate(n)
	if err := g.WriteCSV(ctx, path, records); err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "Sales data generated",
		slog.Int("rows", len(records)),
		slog.Any("partition", PartitionSizes(n)))

	return records, nil
}
