// Package solo contains context-first combinators over rop.Result that may
// change the payload type, which methods on rop.Result cannot do.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - OnSuccess/OnFailure: switch on the terminal state
// - Map/Try: transform the payload, Try converting an error into a failure
// - Match/MatchAsync: run exactly one of two handlers
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/failure handlers
package solo
