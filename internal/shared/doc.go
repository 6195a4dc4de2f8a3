// Package shared holds code used across packages that belongs to no single
// layer of the pipeline.
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler and NewTestLogger for asserting on log output
//   - sales record fixtures and CSV file helpers
//
// Nothing here may import a pipeline package; domain types come from
// pkg/contracts/domain only.
package shared
