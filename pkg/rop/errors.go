package rop

import (
	"errors"
	"fmt"
)

var (
	//nolint:staticcheck // message text is part of the public contract
	ErrNoneAccess = errors.New("Cannot reference value of None.")
	//nolint:staticcheck // message text is part of the public contract
	ErrNoneResult   = errors.New("None cannot be turned into a successful result.")
	ErrTypeMismatch = errors.New("rop: type mismatch")
	ErrNilReason    = errors.New("rop: nil failure reason")
)

// AsError turns a recovered panic value or a rejection reason into an error.
// Errors pass through untouched; anything else becomes a new error whose
// message is the value's default formatting.
func AsError(reason any) error {
	switch r := reason.(type) {
	case nil:
		return ErrNilReason
	case error:
		return r
	case string:
		return errors.New(r)
	default:
		return errors.New(fmt.Sprint(r))
	}
}
