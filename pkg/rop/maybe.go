package rop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ib-77/outcome/pkg/rop/is"
)

// Maybe holds a value of type T or nothing. The zero value is None.
type Maybe[T any] struct {
	value T
	ok    bool
}

// New wraps value, producing None when value is absent (see is.Nothing).
func New[T any](value T) Maybe[T] {
	if is.Nothing(value) {
		return Maybe[T]{}
	}
	return Maybe[T]{value: value, ok: true}
}

// NewOr is New with fallback substituted for an absent value. A fallback that
// is itself absent still yields None.
func NewOr[T any](value T, fallback T) Maybe[T] {
	if is.Nothing(value) {
		return New(fallback)
	}
	return New(value)
}

func Some[T any](value T) Maybe[T] {
	return New(value)
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

func (m Maybe[T]) HasValue() bool {
	return m.ok
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Value returns the stored value or ErrNoneAccess.
func (m Maybe[T]) Value() (T, error) {
	if !m.ok {
		var zero T
		return zero, ErrNoneAccess
	}
	return m.value, nil
}

// MustValue returns the stored value and panics with ErrNoneAccess on None.
func (m Maybe[T]) MustValue() T {
	if !m.ok {
		panic(ErrNoneAccess)
	}
	return m.value
}

func (m Maybe[T]) ValueOrDefault(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// Map applies fn to the stored value. None is returned as is and fn is not
// called.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	return MaybeMap(m, fn)
}

// Match calls exactly one of the handlers and wraps what it returns.
func (m Maybe[T]) Match(onSome func(T) T, onNone func() T) Maybe[T] {
	return MaybeMatch(m, onSome, onNone)
}

// ToResult converts m into a fulfilled Result, or a rejected one carrying
// ErrNoneResult when m is None.
func (m Maybe[T]) ToResult() Result[T] {
	return m.ToResultWith(nil)
}

// ToResultWith is ToResult with a caller supplied rejection reason, either
// an error or a message. A nil reason falls back to ErrNoneResult.
func (m Maybe[T]) ToResultWith(reason any) Result[T] {
	if m.ok {
		return Success(m.value)
	}
	if reason == nil {
		return Failure[T](ErrNoneResult)
	}
	return FailureOf[T](reason)
}

func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "None"
}

func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*m = New(value)
	return nil
}

// MaybeMap is Map across types.
func MaybeMap[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return New(fn(m.value))
}

// MaybeMatch is Match across types.
func MaybeMatch[T, U any](m Maybe[T], onSome func(T) U, onNone func() U) Maybe[U] {
	if !m.ok {
		return New(onNone())
	}
	return New(onSome(m.value))
}
