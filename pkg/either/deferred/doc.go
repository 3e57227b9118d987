// Package deferred adapts either.CaseOf for callers that expect a
// promise-like result. The case analysis itself stays synchronous: CaseOf
// runs the selected handler once, at call time, and the returned Promise is
// already settled with its output (fulfilled for Right, rejected for Left).
package deferred
