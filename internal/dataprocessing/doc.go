// Package dataprocessing loads the sales CSV and computes the statistics the
// report is built from.
//
// Loading is strict: header columns are located by name, every row is parsed
// into a domain.Record and validated, and any failure aborts the load. There
// are no partial results.
//
// Aggregation keeps the historical definitions:
//   - AvgPricePerUnit and CategorySummary.AveragePrice are plain means of
//     PricePerUnit, not weighted by units sold
//   - categories are ordered lexicographically by name
//   - an empty dataset yields zero totals, a zero average and no categories
package dataprocessing
