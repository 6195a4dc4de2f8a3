// Package app provides application initialization and lifecycle management
// for the sales report command.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, salesreport.yaml and SALES_* variables
//  2. Initialize logging and telemetry
//  3. Resolve data and report paths against the working directory
//  4. Wire the generate, analyze and render steps into a pipeline
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    // setup failed
//	}
//	defer application.Stop(ctx)
//	state, err := application.Run(ctx)
//
// Setup errors are returned to the caller. The app never calls os.Exit, so
// the main function keeps control of the exit code.
package app
