package promise

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

// Promise settles exactly once with a value or a rejection reason.
type Promise[T any] struct {
	done   chan struct{}
	value  T
	reason error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Go runs fn on a new goroutine. A returned error or a panic rejects the
// promise; a panic value that is not an error is converted with rop.AsError.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := newPromise[T]()

	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.reason = rop.AsError(r)
			}
		}()

		value, err := fn()
		if err != nil {
			p.reason = err
			return
		}
		p.value = value
	}()

	return p
}

func Resolve[T any](value T) *Promise[T] {
	p := newPromise[T]()
	p.value = value
	close(p.done)
	return p
}

// Reject builds a rejected promise. reason need not be an error.
func Reject[T any](reason any) *Promise[T] {
	p := newPromise[T]()
	p.reason = rop.AsError(reason)
	close(p.done)
	return p
}

// FromChan settles with the first value received from ch. A channel closed
// before sending rejects with ErrClosed.
func FromChan[T any](ch <-chan T) *Promise[T] {
	return Go(func() (T, error) {
		v, ok := <-ch
		if !ok {
			var zero T
			return zero, ErrClosed
		}
		return v, nil
	})
}

func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until p settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.reason
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

var _ rop.Awaitable[int] = (*Promise[int])(nil)
