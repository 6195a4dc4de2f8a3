// Package exporter provides the file writers of the sales report pipeline.
//
// This package contains three main components:
//
// CSVWriter: Streams rows to a CSV file behind a header, resolving relative
// paths against the configured base directory.
//
// WorkbookExporter: Writes the companion .xlsx workbook with Summary, Categories
// and Data sheets.
//
// Formatting helpers: FormatCurrency and FormatCount render money and counts the
// way the PDF report displays them; FormatDecimal and FormatInt give the plain
// file representation.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths, logger)
//	stream, err := writer.CreateStreamWriter("sample_sales_data.csv", domain.RecordHeader)
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//
//	wb := exporter.NewWorkbookExporter(logger)
//	err = wb.Export("Sales_Performance_Report.xlsx", records, result)
package exporter
