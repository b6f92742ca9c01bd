package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Failure[T](err)
}

// OnSuccess switches a fulfilled Result[In] to whatever onSuccess produces.
// A rejection is carried over with its reason and identity.
func OnSuccess[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, m rop.Maybe[In]) rop.Result[Out]) rop.Result[Out] {

	if !input.OK() {
		return rop.RejectedFrom[In, Out](input)
	}

	return rop.WrapResult(func() rop.Result[Out] {
		return onSuccess(ctx, input.Value())
	})
}

func OnFailure[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	return input.OnFailure(func(err error) rop.Result[T] {
		return onFailure(ctx, err)
	})
}

// Map transforms the payload. A fulfilled Result without a payload stays
// that way and onSuccess is not called.
func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return OnSuccess(ctx, input, func(ctx context.Context, m rop.Maybe[In]) rop.Result[Out] {
		v, ok := m.Get()
		if !ok {
			return rop.Void[Out]()
		}
		return rop.FromValue(onSuccess(ctx, v))
	})
}

// Try is Map for functions returning (Out, error).
func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return OnSuccess(ctx, input, func(ctx context.Context, m rop.Maybe[In]) rop.Result[Out] {
		v, ok := m.Get()
		if !ok {
			return rop.Void[Out]()
		}
		return rop.FromTuple(onTryExecute(ctx, v))
	})
}

func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, m rop.Maybe[In]) rop.Result[Out],
	onFailure func(ctx context.Context, err error) rop.Result[Out]) rop.Result[Out] {

	return rop.WrapResult(func() rop.Result[Out] {
		if !input.OK() {
			return onFailure(ctx, input.Reason())
		}
		return onSuccess(ctx, input.Value())
	})
}

func MatchAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, m rop.Maybe[In]) rop.Result[Out],
	onFailure func(ctx context.Context, err error) rop.Result[Out]) rop.Result[Out] {

	return rop.WrapAsyncResult(ctx, func(ctx context.Context) rop.Result[Out] {
		if !input.OK() {
			return onFailure(ctx, input.Reason())
		}
		return onSuccess(ctx, input.Value())
	})
}

// Tee runs a side effect on a fulfilled Result and returns input unchanged.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.OK() {
		onSuccess(ctx, input)
	}

	return input
}

// Finally collapses input into a plain value. Handlers are not guarded.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, m rop.Maybe[In]) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.OK() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Reason())
}
