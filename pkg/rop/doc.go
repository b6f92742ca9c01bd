// Package rop contains the Maybe and Result value types and the combinators
// that chain them without panicking mid-chain.
//
// Highlights:
// - Some/None/New/NewOr: construct Maybe[T]
// - Success/Failure/FailureOf/Void: construct Result[T] in a terminal state
// - FromValue/FromError/FromMaybe/FromResult/FromTuple/Of: normalize inputs
// - OnSuccess/OnFailure/Match: chain, converting panics into rejections
// - Wrap/WrapResult: bridge panicking or (T, error) code into a Result
// - AsyncResult/WrapAsync/MatchAsync: the same for operations that block
//
// Only ValueUnsafe, EnforceValue, EnforceError and Maybe.MustValue panic, so
// a caller decides where an accumulated failure turns into a panic.
//
// Results and Maybes are immutable once built and safe for concurrent reads.
package rop
