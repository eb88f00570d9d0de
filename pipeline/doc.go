// Package pipeline schedules a sequence of function-target passes over a
// set of functions, the way a real compiler's optimizer pipeline would.
// It is the function-target pipeline driver that a dead-store-elimination
// pass runs under: dse.Pass is just one Processor a Pipeline can run.
//
// A Pipeline runs its processors in registration order; within one
// processor, independent functions may be processed concurrently.
package pipeline
