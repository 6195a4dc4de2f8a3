// Command sales-report generates a synthetic sales dataset, analyzes it and
// renders Sales_Performance_Report.pdf in the working directory.
//
// The process exits 0 once the pipeline has run, whether or not every step
// succeeded; step failures are reported in the log. It exits 1 only when the
// application cannot be set up.
package main

import (
	"context"
	"fmt"
	"os"

	"salesreport/internal/app"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	application, err := app.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sales-report: %v\n", err)
		return 1
	}
	defer application.Stop(ctx)

	// step failures are already logged by the pipeline
	_, _ = application.Run(ctx)
	return 0
}
