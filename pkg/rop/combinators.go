package rop

// capture runs fn and turns a panic into a rejected Result.
func capture[T any](fn func() Result[T]) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](AsError(r))
		}
	}()
	return fn()
}

// Wrap calls fn and captures both its error and any panic as a rejection.
func Wrap[T any](fn func() (T, error)) Result[T] {
	return capture(func() Result[T] {
		return FromTuple(fn())
	})
}

// WrapResult is Wrap for functions that already produce a Result.
func WrapResult[T any](fn func() Result[T]) Result[T] {
	return capture(fn)
}

// OnSuccess calls fn with the payload of a fulfilled Result and returns what
// it produces. A rejected Result is returned unchanged and fn is not called.
func (r Result[T]) OnSuccess(fn func(Maybe[T]) Result[T]) Result[T] {
	if r.reason != nil {
		return r
	}
	return capture(func() Result[T] {
		return fn(r.value)
	})
}

// OnFailure calls fn with the reason of a rejected Result. A fulfilled Result
// is returned unchanged and fn is not called.
func (r Result[T]) OnFailure(fn func(error) Result[T]) Result[T] {
	if r.reason == nil {
		return r
	}
	return capture(func() Result[T] {
		return fn(r.reason)
	})
}

// Match calls exactly one of the handlers. A panicking handler yields a
// rejected Result.
func (r Result[T]) Match(onSuccess func(Maybe[T]) Result[T], onFailure func(error) Result[T]) Result[T] {
	return WrapResult(func() Result[T] {
		if r.reason != nil {
			return onFailure(r.reason)
		}
		return onSuccess(r.value)
	})
}
