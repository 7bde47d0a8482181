// Package stepper provides the pacing and recording glue between a running
// search and whatever observes it.
//
// A search suspends after every settled cell and waits for its StepSink to
// resume it. Pacers decide when that happens:
//
//   - Immediate resumes at once (batch runs, tests).
//   - Fixed resumes after a fixed real-time delay (animation).
//   - Manual resumes only when Resume is called (single-step UIs).
//
// Recorder and Funcs turn a Pacer into a search.StepSink.
package stepper
