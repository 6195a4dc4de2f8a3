package domain

import (
	"github.com/shopspring/decimal"
)

// Category is the product category of a sales record.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryApparel     Category = "Apparel"
	CategoryHomeGoods   Category = "Home Goods"
)

// GenerationOrder lists the categories in the order the generator partitions rows.
// The last category absorbs the remainder of the row count.
var GenerationOrder = []Category{
	CategoryElectronics,
	CategoryApparel,
	CategoryHomeGoods,
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range GenerationOrder {
		if c == known {
			return true
		}
	}
	return false
}

// CSV column names of the sales data file, in file order.
const (
	ColumnProductID    = "ProductID"
	ColumnCategory     = "Category"
	ColumnUnitsSold    = "UnitsSold"
	ColumnPricePerUnit = "PricePerUnit"
	ColumnRevenue      = "Revenue"
)

// RecordHeader is the header row of the sales data file.
var RecordHeader = []string{
	ColumnProductID,
	ColumnCategory,
	ColumnUnitsSold,
	ColumnPricePerUnit,
	ColumnRevenue,
}

// Record is one synthetic sales transaction row.
//
// Records are immutable once generated. Revenue is always UnitsSold × PricePerUnit;
// PricePerUnit carries two fraction digits so the product is exact.
type Record struct {
	// ProductID is "P" followed by a zero-padded 1-based sequence number, e.g. "P007"
	ProductID string `json:"product_id" csv:"ProductID" validate:"required,startswith=P"`

	Category Category `json:"category" csv:"Category" validate:"required,oneof=Electronics Apparel 'Home Goods'"`

	UnitsSold int64 `json:"units_sold" csv:"UnitsSold" validate:"gte=0"`

	PricePerUnit decimal.Decimal `json:"price_per_unit" csv:"PricePerUnit" validate:"gte=0"`

	Revenue decimal.Decimal `json:"revenue" csv:"Revenue" validate:"gte=0"`
}

// ExpectedRevenue returns UnitsSold × PricePerUnit
func (r Record) ExpectedRevenue() decimal.Decimal {
	return decimal.NewFromInt(r.UnitsSold).Mul(r.PricePerUnit)
}

// CategorySummary contains aggregated sales data for one category
type CategorySummary struct {
	Category       Category        `json:"category"`
	RecordCount    int             `json:"record_count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalUnitsSold int64           `json:"total_units_sold"`
	// AveragePrice is the plain mean of PricePerUnit over the group, not weighted by units
	AveragePrice decimal.Decimal `json:"average_price"`
}

// AnalysisResult holds the overall and per-category statistics of a sales dataset.
// Categories are ordered lexicographically by category name.
type AnalysisResult struct {
	RecordCount     int               `json:"record_count"`
	TotalRevenue    decimal.Decimal   `json:"total_revenue"`
	TotalUnitsSold  int64             `json:"total_units_sold"`
	AvgPricePerUnit decimal.Decimal   `json:"avg_price_per_unit"`
	Categories      []CategorySummary `json:"categories"`
}
