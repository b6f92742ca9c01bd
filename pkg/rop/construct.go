package rop

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/rop/is"
)

// FromValue is a fulfilled Result wrapping value. An absent value gives a
// fulfilled Result without a payload.
func FromValue[T any](value T) Result[T] {
	return Success(value)
}

func FromError[T any](err error) Result[T] {
	return Failure[T](err)
}

func FromMaybe[T any](m Maybe[T]) Result[T] {
	return m.ToResult()
}

// FromResult returns r unchanged.
func FromResult[T any](r Result[T]) Result[T] {
	return r
}

// FromTuple converts a (value, error) pair.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// Of normalizes x into a Result[T] by its dynamic type: a Result[T] or
// Maybe[T] is converted, an error is rejected, a T or nil is fulfilled. Any other
// type is rejected with ErrTypeMismatch.
func Of[T any](x any) Result[T] {
	switch v := x.(type) {
	case nil:
		return Void[T]()
	case Result[T]:
		return FromResult(v)
	case Maybe[T]:
		return FromMaybe(v)
	case error:
		if is.Nothing(v) {
			return Void[T]()
		}
		return FromError[T](v)
	case T:
		return FromValue(v)
	default:
		return Failure[T](fmt.Errorf("%w: cannot normalize %T into %T", ErrTypeMismatch, x, *new(T)))
	}
}
