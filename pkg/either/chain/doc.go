// Package chain provides a fluent wrapper around either.Either[T, E] for
// building synchronous chains of fallible steps.
//
// Every Chain carries a context, an id and a step counter. Each step is
// logged on the zerolog logger found in the context (zerolog.Ctx), so a chain
// run with a request-scoped logger leaves a trace of where it turned Left.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then: bind a step returning Either[U, E]
// - Map: transform the Right value; panics become Left
// - Ensure: side effects on Right only
// - Times/RepeatUntil: repeat a step, stopping at the first Left
// - WithDefault/CaseOf: collapse the chain into a value
package chain
