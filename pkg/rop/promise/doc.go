// Package promise provides Promise[T], a value that settles once from a
// goroutine. It implements rop.Awaitable, so rop.AsyncResult and
// rop.WrapAsync can consume it directly.
package promise

import "errors"

var ErrClosed = errors.New("promise: channel closed before a value was sent")
