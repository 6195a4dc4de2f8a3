// Package config provides centralized configuration management for the sales
// report pipeline.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. salesreport.yaml in the working directory or configs/
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SALES_<SECTION>_<FIELD>:
//
//	SALES_LOGGING_LEVEL=debug
//	SALES_LOGGING_FORMAT=text
//	SALES_LOGGING_OUTPUT=both
//	SALES_TELEMETRY_TRACE_EXPORTER=stdout
//	SALES_TELEMETRY_METRIC_EXPORTER=prometheus
//
// Pipeline parameters (row count, file names, author line) are fixed and are
// not read from either the environment or the config file.
//
// # Path Management
//
// Paths resolves every file the pipeline touches relative to the working
// directory:
//
//	paths, err := config.GetPaths(cfg)
//	csvPath := paths.DataCSV
//	pdfPath := paths.ReportPDF
package config
