// Package operations runs the sales report pipeline.
//
// A run executes the registered steps in order: generate, analyze, render.
// Each step is gated on the previous one; when a step fails, the remaining
// steps are marked skipped with a reason and the run still completes. Step
// failures are captured in the OperationState rather than returned, so
// callers inspect the state or its RunSummary to learn what happened.
//
// The run also tracks its phase, which only moves forward:
//
//	INIT → GENERATED → ANALYZED → RENDERED
//
// Every run and step gets a span and step metrics through OperationTracer.
package operations
