package contracts

const (
	// Version is the current version of the application
	Version = "1.0.0"

	// DataFormatVersion is the version of the sales data CSV layout
	DataFormatVersion = "v1"
)

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// Producer returns the string stamped into generated documents
func Producer() string {
	return "salesreport " + Version
}
