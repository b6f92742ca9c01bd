package rop

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/is"
)

type Status string

const (
	Fulfilled Status = "fulfilled"
	Rejected  Status = "rejected"
)

// Result is the settled outcome of an operation: fulfilled with an optional
// value, or rejected with a reason. A rejected Result never carries a value.
// The zero value is a fulfilled Result without a value.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     Maybe[T]
	reason    error
}

func Success[T any](value T) Result[T] {
	return Result[T]{
		value:     Some(value),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a rejected Result. A nil err is replaced by ErrNilReason so
// that a rejection always has a reason.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilReason
	}
	return Result[T]{
		reason:    err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureOf builds a rejected Result from any reason. A string becomes an
// error with exactly that message; see AsError.
func FailureOf[T any](reason any) Result[T] {
	return Failure[T](AsError(reason))
}

// Failuref formats the reason like fmt.Errorf. Use FailureOf for a message
// that must be kept verbatim.
func Failuref[T any](format string, args ...any) Result[T] {
	return Failure[T](fmt.Errorf(format, args...))
}

// Void builds a fulfilled Result that carries no value.
func Void[T any]() Result[T] {
	return Result[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// rejectedFrom re-types a rejected Result, keeping its identity.
func rejectedFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		reason:    from.reason,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// RejectedFrom re-types the rejection of from. It must only be called on a
// rejected Result.
func RejectedFrom[In, Out any](from Result[In]) Result[Out] {
	if from.OK() {
		return Failure[Out](fmt.Errorf("%w: re-typing a fulfilled result", ErrTypeMismatch))
	}
	return rejectedFrom[In, Out](from)
}

func (r Result[T]) Status() Status {
	if r.reason != nil {
		return Rejected
	}
	return Fulfilled
}

func (r Result[T]) OK() bool {
	return r.reason == nil
}

func (r Result[T]) Reason() error {
	return r.reason
}

func (r Result[T]) Value() Maybe[T] {
	return r.value
}

// ValueUnsafe reads straight through to the payload and panics with
// ErrNoneAccess when there is none.
func (r Result[T]) ValueUnsafe() T {
	return r.value.MustValue()
}

// EnforceValue returns the payload of a fulfilled Result. It panics with the
// stored reason as is when r is rejected.
func (r Result[T]) EnforceValue() T {
	if r.reason != nil {
		panic(r.reason)
	}
	return r.value.MustValue()
}

// EnforceError returns the reason of a rejected Result and panics with
// ErrTypeMismatch when r is fulfilled.
func (r Result[T]) EnforceError() error {
	if r.reason == nil {
		panic(fmt.Errorf("%w: expected result to have a failure reason but actually was a success", ErrTypeMismatch))
	}
	return r.reason
}

// Unwrap is the non-panicking form of EnforceValue.
func (r Result[T]) Unwrap() (T, error) {
	if r.reason != nil {
		var zero T
		return zero, r.reason
	}
	return r.value.Value()
}

// Cancelled reports whether r was rejected by context cancellation.
func (r Result[T]) Cancelled() bool {
	return r.reason != nil && is.Cancellation(r.reason)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	return "[object Result: " + strings.ToUpper(string(r.Status())) + "]"
}
