// Package generator produces the synthetic sales dataset and persists it as CSV.
//
// Row contents are drawn from an explicitly passed *rand.Rand so a fixed seed
// reproduces the same dataset:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	gen := generator.New(rng, exporter.NewCSVWriter(paths, logger), logger)
//	records, err := gen.GenerateToFile(ctx, 50, paths.DataCSV)
//
// Category partition sizes depend only on the row count: n/3 Electronics,
// n/3 Apparel, and the remainder Home Goods, in that order.
package generator
