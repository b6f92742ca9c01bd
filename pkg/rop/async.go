package rop

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop/core"
)

// Awaitable is a one-shot asynchronous operation.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

// AwaitFunc lets a plain function be awaited.
type AwaitFunc[T any] func(ctx context.Context) (T, error)

func (f AwaitFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// settle runs fn on its own goroutine and waits for it. fn is never
// interrupted. By default the wait also outlives ctx: fn sees a context
// without cancellation. With core.WithAwaitCompletion(ctx, false) a done ctx
// abandons the wait with a rejection carrying ctx.Err().
func settle[T any](ctx context.Context, fn func(ctx context.Context) Result[T]) Result[T] {
	if core.IsAwaitCompletionEnabled(ctx, true) {
		ctx = context.WithoutCancel(ctx)
	}

	ch := make(chan Result[T], 1)

	go func() {
		ch <- capture(func() Result[T] {
			return fn(ctx)
		})
	}()

	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		return Failure[T](ctx.Err())
	}
}

// AsyncResult waits for op and always produces a Result: fulfilled with the
// awaited value or rejected with the awaited error.
func AsyncResult[T any](ctx context.Context, op Awaitable[T]) Result[T] {
	return settle(ctx, func(ctx context.Context) Result[T] {
		value, err := op.Await(ctx)
		if err != nil {
			return Failure[T](err)
		}
		return Success(value)
	})
}

// WrapAsync is Wrap for an asynchronous operation. Both a promise and an
// AwaitFunc are accepted.
func WrapAsync[T any](ctx context.Context, op Awaitable[T]) Result[T] {
	return settle(ctx, func(ctx context.Context) Result[T] {
		return FromTuple(op.Await(ctx))
	})
}

// WrapAsyncResult is WrapAsync for operations that already produce a Result.
func WrapAsyncResult[T any](ctx context.Context, fn func(ctx context.Context) Result[T]) Result[T] {
	return settle(ctx, fn)
}

// MatchAsync is Match with handlers that may block. Exactly one handler runs.
func (r Result[T]) MatchAsync(ctx context.Context,
	onSuccess func(ctx context.Context, m Maybe[T]) Result[T],
	onFailure func(ctx context.Context, err error) Result[T]) Result[T] {

	return WrapAsyncResult(ctx, func(ctx context.Context) Result[T] {
		if r.reason != nil {
			return onFailure(ctx, r.reason)
		}
		return onSuccess(ctx, r.value)
	})
}
