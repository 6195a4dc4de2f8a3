package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "salesreport/internal/errors"
	"salesreport/pkg/contracts/domain"
)

// Analyzer computes overall and per-category sales statistics
type Analyzer struct {
	loader *Loader
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer that loads files through a validating Loader
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "analyzer"))
	return &Analyzer{
		loader: NewLoader(logger),
		logger: logger,
	}
}

// categoryAccumulator collects running sums for one category
type categoryAccumulator struct {
	count    int
	revenue  decimal.Decimal
	units    int64
	priceSum decimal.Decimal
}

// Analyze aggregates records. It never fails; an empty input yields a zero result.
func (a *Analyzer) Analyze(records []domain.Record) domain.AnalysisResult {
	result := domain.AnalysisResult{
		RecordCount:     len(records),
		TotalRevenue:    decimal.Zero,
		AvgPricePerUnit: decimal.Zero,
		Categories:      []domain.CategorySummary{},
	}
	if len(records) == 0 {
		return result
	}

	groups := make(map[domain.Category]*categoryAccumulator)
	priceSum := decimal.Zero

	for _, r := range records {
		result.TotalRevenue = result.TotalRevenue.Add(r.Revenue)
		result.TotalUnitsSold += r.UnitsSold
		priceSum = priceSum.Add(r.PricePerUnit)

		acc, ok := groups[r.Category]
		if !ok {
			acc = &categoryAccumulator{revenue: decimal.Zero, priceSum: decimal.Zero}
			groups[r.Category] = acc
		}
		acc.count++
		acc.revenue = acc.revenue.Add(r.Revenue)
		acc.units += r.UnitsSold
		acc.priceSum = acc.priceSum.Add(r.PricePerUnit)
	}

	result.AvgPricePerUnit = mean(priceSum, len(records))

	for category, acc := range groups {
		result.Categories = append(result.Categories, domain.CategorySummary{
			Category:       category,
			RecordCount:    acc.count,
			TotalRevenue:   acc.revenue,
			TotalUnitsSold: acc.units,
			AveragePrice:   mean(acc.priceSum, acc.count),
		})
	}

	sort.Slice(result.Categories, func(i, j int) bool {
		return result.Categories[i].Category < result.Categories[j].Category
	})

	return result
}

func mean(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}

// AnalyzeFile loads path and aggregates its records.
// On any failure both the records and the result are nil and the error is an
// AppError: NOT_FOUND for a missing file, READ, PARSING or VALIDATION otherwise.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) ([]domain.Record, *domain.AnalysisResult, error) {
	records, err := a.loader.LoadRecords(path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			a.logger.ErrorContext(ctx, "Sales data file not found",
				slog.String("path", path))
		} else {
			a.logger.ErrorContext(ctx, "Failed to load sales data",
				slog.String("path", path),
				slog.String("error_type", string(apperrors.TypeOf(err))),
				slog.String("error", err.Error()))
		}
		return nil, nil, err
	}

	result := a.Analyze(records)

	a.logger.InfoContext(ctx, "Sales data analyzed",
		slog.String("path", path),
		slog.Int("records", result.RecordCount),
		slog.Int("categories", len(result.Categories)),
		slog.String("total_revenue", result.TotalRevenue.StringFixed(2)))

	return records, &result, nil
}
