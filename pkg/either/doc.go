// Package either contains a closed two-variant type, Either[T, E], for
// computations that either succeeded with a value (Right) or failed with an
// error (Left), plus the combinators that build, transform and consume it.
//
// Highlights:
// - Right/Left: construct Either[T, E]
// - TryCatch/Try/FromError: lift panicking or (value, error) code into Either
// - IsRight/IsLeft: introspection
// - WithDefault/CaseOf/Fold/Get/ToError: reduce to a concrete value
// - Map/MapLeft: transform one side; panics inside Map become Left
// - AndThen: monadic bind, short-circuits on the first Left
// - Tee: side effects on Right only
//
// Validation policy is strict. The zero value of Either was not produced by
// Right, Left or a combinator and is not a valid Either: every consuming
// combinator panics with *NotAnEitherError when handed one. Use Of to check
// an arbitrary value and Validate to check a typed one without panicking.
package either
