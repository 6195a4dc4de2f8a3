package report

import (
	"fmt"
	"time"

	"salesreport/internal/exporter"
	"salesreport/pkg/contracts/domain"
)

// Page geometry in millimetres
const (
	pageMargin      = 10.0
	pageBreakMargin = 15.0
)

// Layout defaults
const (
	DefaultSampleRows    = 10
	DefaultColumnPadding = 6.0
	DefaultAuthor        = "Automated Sales Analytics"
	fontFamily           = "Helvetica"
	lineHeight           = 8.0
	tableRowHeight       = 8.0
	sampleRowHeight      = 6.0
)

const introText = "This report provides an overview of sales performance across product " +
	"categories for the current period. It summarizes overall revenue and unit volume, " +
	"breaks the results down by category, and closes with a sample of the underlying " +
	"transaction records used to compute these figures."

// categoryColumns are the fixed columns of the category table
var categoryColumns = []Column{
	{Header: "Category", Width: 50, Align: AlignLeft},
	{Header: "Total Revenue", Width: 45, Align: AlignRight},
	{Header: "Total Units Sold", Width: 45, Align: AlignRight},
	{Header: "Average Price", Width: 45, Align: AlignRight},
}

// LayoutOptions controls the content of the document plan.
// SampleRows may shrink the raw data table but never grows it past DefaultSampleRows.
type LayoutOptions struct {
	Author        string
	Creator       string
	SampleRows    int
	ColumnPadding float64
}

func (o LayoutOptions) withDefaults() LayoutOptions {
	if o.SampleRows <= 0 || o.SampleRows > DefaultSampleRows {
		o.SampleRows = DefaultSampleRows
	}
	if o.ColumnPadding <= 0 {
		o.ColumnPadding = DefaultColumnPadding
	}
	if o.Author == "" {
		o.Author = DefaultAuthor
	}
	return o
}

// Title returns the report title for the given date
func Title(now time.Time) string {
	return "Sales Performance Report - " + now.Format("2006-01-02")
}

// BuildDocument lays out the report for the given data as of now
func BuildDocument(records []domain.Record, result *domain.AnalysisResult, now time.Time, opts LayoutOptions) *Document {
	opts = opts.withDefaults()
	if result == nil {
		result = &domain.AnalysisResult{}
	}

	regular := Font{Family: fontFamily, Size: 11}
	heading := Font{Family: fontFamily, Style: "B", Size: 12}
	italic := Font{Family: fontFamily, Style: "I", Size: 10}

	title := Title(now)
	doc := &Document{
		Title:       title,
		Subject:     "Sales performance summary",
		Author:      opts.Author,
		Creator:     opts.Creator,
		CreatedAt:   now,
		Orientation: "P",
		Unit:        "mm",
		PageSize:    "A4",
		Margins: Margins{
			Left:   pageMargin,
			Top:    pageMargin,
			Right:  pageMargin,
			Bottom: pageBreakMargin,
		},
	}

	section := func(text string) {
		doc.Elements = append(doc.Elements,
			Element{Kind: KindSpacer, Height: 4},
			Element{Kind: KindHeading, Text: text, Align: AlignLeft, Font: heading, Height: lineHeight},
		)
	}

	doc.Elements = append(doc.Elements,
		Element{Kind: KindHeading, Text: title, Align: AlignCenter,
			Font: Font{Family: fontFamily, Style: "B", Size: 16}, Height: 10},
		Element{Kind: KindLine, Text: "Prepared by: " + opts.Author, Align: AlignCenter, Font: italic, Height: 6},
		Element{Kind: KindLine, Text: "Date: " + now.Format("January 2, 2006"), Align: AlignCenter, Font: italic, Height: 6},
	)

	section("Introduction")
	doc.Elements = append(doc.Elements,
		Element{Kind: KindParagraph, Text: introText, Align: AlignLeft, Font: regular, Height: 6})

	section("Executive Summary")
	for _, line := range []string{
		"Total Revenue: " + exporter.FormatCurrency(result.TotalRevenue),
		"Total Units Sold: " + exporter.FormatCount(result.TotalUnitsSold),
		"Average Price per Unit: " + exporter.FormatCurrency(result.AvgPricePerUnit),
	} {
		doc.Elements = append(doc.Elements,
			Element{Kind: KindLine, Text: line, Align: AlignLeft, Font: regular, Height: lineHeight})
	}

	section("Sales by Category")
	doc.Elements = append(doc.Elements, categoryTable(result.Categories))

	section(fmt.Sprintf("Raw Data Sample (first %d rows)", opts.SampleRows))
	doc.Elements = append(doc.Elements, sampleTable(records, opts))

	doc.Elements = append(doc.Elements,
		Element{Kind: KindSpacer, Height: 10},
		Element{Kind: KindLine, Text: "End of Report", Align: AlignCenter, Font: italic, Height: lineHeight},
	)

	return doc
}

func categoryTable(categories []domain.CategorySummary) Element {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.Category.String(),
			exporter.FormatCurrency(c.TotalRevenue),
			exporter.FormatCount(c.TotalUnitsSold),
			exporter.FormatCurrency(c.AveragePrice),
		})
	}

	columns := make([]Column, len(categoryColumns))
	copy(columns, categoryColumns)

	return Element{
		Kind:       KindTable,
		Columns:    columns,
		Rows:       rows,
		HeaderFont: Font{Family: fontFamily, Style: "B", Size: 10},
		Font:       Font{Family: fontFamily, Size: 10},
		Height:     tableRowHeight,
	}
}

func sampleTable(records []domain.Record, opts LayoutOptions) Element {
	sample := SampleRows(records, opts.SampleRows)

	rows := make([][]string, 0, len(sample))
	for _, r := range sample {
		rows = append(rows, []string{
			r.ProductID,
			r.Category.String(),
			exporter.FormatInt(r.UnitsSold),
			exporter.FormatDecimal(r.PricePerUnit),
			exporter.FormatDecimal(r.Revenue),
		})
	}

	columns := make([]Column, len(domain.RecordHeader))
	for i, h := range domain.RecordHeader {
		columns[i] = Column{Header: h, Align: AlignCenter}
	}

	return Element{
		Kind:         KindTable,
		Columns:      columns,
		Rows:         rows,
		HeaderFont:   Font{Family: fontFamily, Style: "B", Size: 10},
		Font:         Font{Family: fontFamily, Size: 8},
		Height:       sampleRowHeight,
		FitToHeaders: true,
		Padding:      opts.ColumnPadding,
	}
}

// SampleRows returns at most limit records from the start of records
func SampleRows(records []domain.Record, limit int) []domain.Record {
	if limit < 0 {
		limit = 0
	}
	if len(records) > limit {
		return records[:limit]
	}
	return records
}

// FitColumnWidths sizes each column to its header width plus padding. When the
// total exceeds printable, every width is scaled by printable/total so the
// table spans exactly the printable width.
func FitColumnWidths(headers []string, measure func(string) float64, padding, printable float64) []float64 {
	widths := make([]float64, len(headers))
	total := 0.0
	for i, h := range headers {
		widths[i] = measure(h) + padding
		total += widths[i]
	}

	if total > printable && total > 0 {
		scale := printable / total
		for i := range widths {
			widths[i] *= scale
		}
	}

	return widths
}
