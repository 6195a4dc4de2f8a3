package config

// Application constants - fixed parameters of the sales report pipeline
const (
	// Application Info
	AppName = "Sales Report"

	// Environment variable prefix, e.g. SALES_LOGGING_LEVEL
	EnvPrefix = "SALES"

	// Pipeline defaults
	DefaultRowCount     = 50
	DefaultDataFile     = "sample_sales_data.csv"
	DefaultReportFile   = "Sales_Performance_Report.pdf"
	DefaultWorkbookFile = "Sales_Performance_Report.xlsx"
	DefaultReportAuthor = "Automated Sales Analytics"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLogOutput = "console"
	DefaultLogFile   = "logs/salesreport.log"

	// Telemetry Settings
	DefaultTraceExporter  = "none"
	DefaultMetricExporter = "none"
	DefaultTraceFile      = "logs/traces.json"
	DefaultMetricsFile    = "logs/salesreport.prom"
	DefaultSampleRatio    = 1.0
)
