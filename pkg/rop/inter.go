package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the part of a Result that does not depend on its payload type,
// so results of different types can be inspected side by side.
type Outcome interface {
	// Status is Fulfilled or Rejected
	Status() Status
	// OK is true exactly when Status is Fulfilled
	OK() bool
	// Reason is nil for a fulfilled outcome
	Reason() error
	// ID identifies the outcome across re-typed rejections
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	String() string
}

// ValueProvider extends Outcome with access to the payload.
type ValueProvider[T any] interface {
	Outcome
	Value() Maybe[T]
	ValueUnsafe() T
}

var (
	_ Outcome            = Result[int]{}
	_ ValueProvider[int] = Result[int]{}
)

